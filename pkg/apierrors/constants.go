package apierrors

const (
	MsgNoSubjects         = "noSubjects"
	MsgNoSubjectSelected  = "noSubjectSelected"
	MsgTimerRunning       = "timerRunning"
	MsgTimerNotRunning    = "timerNotRunning"
	MsgEmptySession       = "emptySession"
	MsgNotFound           = "notFound"
	MsgInvalidPayload     = "invalidPayload"
	MsgInvalidTheme       = "invalidTheme"
	MsgInvalidCategory    = "invalidCategory"
	MsgInvalidMode        = "invalidMode"
	MsgProfileNameMissing = "profileNameMissing"
	MsgInternalError      = "internalError"
	MsgInsightError       = "insightError"
)
