package apierrors

import "studytime/internal/insight"

// InsightText localizes the insight fallback. Generated text passes through.
func InsightText(text, lang string) string {
	if text == insight.FallbackMessage {
		return GetTransErrorMsg(MsgInsightError, lang)
	}
	return text
}
