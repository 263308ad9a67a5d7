package engine

import (
	"context"
	"math"
	"time"

	"studytime/internal/storage"
)

// AddSessionInput records a study interval that was not timed live.
type AddSessionInput struct {
	SubjectID string
	Start     time.Time
	End       time.Time
}

func (s *Service) Sessions() []storage.StudySession {
	return s.ledger.All()
}

func (s *Service) AddSession(ctx context.Context, in AddSessionInput) (*storage.StudySession, error) {
	if _, ok := s.Subject(in.SubjectID); !ok {
		return nil, NotFoundError{Kind: "subject", ID: in.SubjectID}
	}
	start, end := in.Start.UnixMilli(), in.End.UnixMilli()
	duration := int64(math.Round(float64(end-start) / 1000))
	if duration <= 0 {
		return nil, ErrEmptySession
	}
	sess := s.appendSession(ctx, storage.StudySession{
		SubjectID: in.SubjectID,
		StartTime: start,
		EndTime:   end,
		Duration:  duration,
	})
	return &sess, nil
}

func (s *Service) appendSession(ctx context.Context, sess storage.StudySession) storage.StudySession {
	sess.ID = s.newID()
	s.ledger.Append(sess)
	s.sessionRepo.SaveAll(ctx, s.ledger.sessions)
	return sess
}
