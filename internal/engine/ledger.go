package engine

import (
	"time"

	"studytime/internal/storage"
)

// Ledger is the append-only record of completed study sessions.
// Order is insertion order. The only removal is the subject cascade.
type Ledger struct {
	sessions []storage.StudySession
}

func NewLedger(sessions []storage.StudySession) *Ledger {
	l := &Ledger{sessions: make([]storage.StudySession, 0, len(sessions))}
	l.sessions = append(l.sessions, sessions...)
	return l
}

func (l *Ledger) Append(s storage.StudySession) {
	l.sessions = append(l.sessions, s)
}

func (l *Ledger) Len() int { return len(l.sessions) }

// All returns a copy of every session.
func (l *Ledger) All() []storage.StudySession {
	out := make([]storage.StudySession, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// SessionsInWindow returns sessions whose start lies in [start, end).
// A zero end means no upper bound.
func (l *Ledger) SessionsInWindow(start, end time.Time) []storage.StudySession {
	return Window{Start: start, End: end}.Filter(l.sessions)
}

func (l *Ledger) SessionsForSubject(subjectID string) []storage.StudySession {
	var out []storage.StudySession
	for _, s := range l.sessions {
		if s.SubjectID == subjectID {
			out = append(out, s)
		}
	}
	return out
}

// UniqueSubjectsStudied returns subject ids in order of first appearance.
func (l *Ledger) UniqueSubjectsStudied() []string {
	return uniqueSubjects(l.sessions)
}

func (l *Ledger) removeSubject(subjectID string) int {
	kept := l.sessions[:0]
	removed := 0
	for _, s := range l.sessions {
		if s.SubjectID == subjectID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	l.sessions = kept
	return removed
}

// TotalDuration sums session durations in seconds.
func TotalDuration(sessions []storage.StudySession) int64 {
	var total int64
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

func uniqueSubjects(sessions []storage.StudySession) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range sessions {
		if seen[s.SubjectID] {
			continue
		}
		seen[s.SubjectID] = true
		out = append(out, s.SubjectID)
	}
	return out
}
