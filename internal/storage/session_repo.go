package storage

import "context"

const KeySessions = "sessions"

// SessionRepo persists the session ledger as one JSON array, in insertion order.
type SessionRepo struct {
	kv *KV
}

func NewSessionRepo(kv *KV) *SessionRepo {
	return &SessionRepo{kv: kv}
}

func (r *SessionRepo) ListAll(ctx context.Context) []StudySession {
	return Get(ctx, r.kv, KeySessions, []StudySession{})
}

func (r *SessionRepo) SaveAll(ctx context.Context, sessions []StudySession) {
	Set(ctx, r.kv, KeySessions, nonNil(sessions))
}

// SaveCascade writes subjects, tasks and sessions together after a subject delete.
func SaveCascade(ctx context.Context, kv *KV, subjects []Subject, tasks []Task, sessions []StudySession) {
	kv.SetMany(ctx, map[string]any{
		KeySubjects: nonNil(subjects),
		KeyTasks:    nonNil(tasks),
		KeySessions: nonNil(sessions),
	})
}
