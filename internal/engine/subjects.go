package engine

import (
	"context"
	"fmt"
	"strings"

	"studytime/internal/storage"
)

type AddSubjectInput struct {
	Name     string
	Color    string // optional, defaults to the next palette color
	Category string // optional
}

// UpdateSubjectInput changes only the non-nil fields.
type UpdateSubjectInput struct {
	Name     *string
	Color    *string
	Category *string
}

func (s *Service) Subjects() []storage.Subject {
	out := make([]storage.Subject, len(s.subjects))
	copy(out, s.subjects)
	return out
}

func (s *Service) Subject(id string) (storage.Subject, bool) {
	if id == "" {
		return storage.Subject{}, false
	}
	for _, subj := range s.subjects {
		if subj.ID == id {
			return subj, true
		}
	}
	return storage.Subject{}, false
}

// SubjectName returns the subject's name or UnknownSubjectName.
func (s *Service) SubjectName(id string) string {
	if subj, ok := s.Subject(id); ok {
		return subj.Name
	}
	return UnknownSubjectName
}

func (s *Service) AddSubject(ctx context.Context, in AddSubjectInput) (*storage.Subject, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	color := SubjectColors[len(s.subjects)%len(SubjectColors)]
	if strings.TrimSpace(in.Color) != "" {
		if color, err = normalizeColor(in.Color); err != nil {
			return nil, err
		}
	}
	category, err := ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}

	subj := storage.Subject{ID: s.newID(), Name: name, Color: color, Category: category}
	s.subjects = append(s.subjects, subj)
	s.subjectRepo.SaveAll(ctx, s.subjects)

	if s.timer.activeSubjectID == "" {
		s.timer.activeSubjectID = subj.ID
	}
	return &subj, nil
}

func (s *Service) UpdateSubject(ctx context.Context, id string, in UpdateSubjectInput) (*storage.Subject, error) {
	i := s.subjectIndex(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "subject", ID: id}
	}
	subj := s.subjects[i]
	if in.Name != nil {
		name, err := normalizeName(*in.Name)
		if err != nil {
			return nil, err
		}
		subj.Name = name
	}
	if in.Color != nil {
		color, err := normalizeColor(*in.Color)
		if err != nil {
			return nil, err
		}
		subj.Color = color
	}
	if in.Category != nil {
		category, err := ParseCategory(*in.Category)
		if err != nil {
			return nil, err
		}
		subj.Category = category
	}
	s.subjects[i] = subj
	s.subjectRepo.SaveAll(ctx, s.subjects)
	return &subj, nil
}

// DeleteSubject removes the subject with its tasks and sessions.
// If it was the timer's subject, a running interval is discarded and the
// first remaining subject becomes active.
func (s *Service) DeleteSubject(ctx context.Context, id string) error {
	i := s.subjectIndex(id)
	if i < 0 {
		return NotFoundError{Kind: "subject", ID: id}
	}
	s.subjects = append(s.subjects[:i], s.subjects[i+1:]...)

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.SubjectID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.ledger.removeSubject(id)

	storage.SaveCascade(ctx, s.kv, s.subjects, s.tasks, s.ledger.sessions)

	if s.timer.activeSubjectID == id {
		s.timer.discard()
		s.timer.activeSubjectID = ""
		if len(s.subjects) > 0 {
			s.timer.activeSubjectID = s.subjects[0].ID
		}
	}
	return nil
}

func (s *Service) subjectIndex(id string) int {
	for i := range s.subjects {
		if s.subjects[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return n, nil
}
