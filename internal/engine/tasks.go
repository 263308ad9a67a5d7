package engine

import (
	"context"

	"studytime/internal/storage"
)

type AddTaskInput struct {
	Title     string
	SubjectID string
	DueDate   string // YYYY-MM-DD
}

type UpdateTaskInput struct {
	Title     *string
	SubjectID *string
	DueDate   *string
	Completed *bool
}

func (s *Service) Tasks() []storage.Task {
	out := make([]storage.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Service) Task(id string) (storage.Task, bool) {
	if i := s.taskIndex(id); i >= 0 {
		return s.tasks[i], true
	}
	return storage.Task{}, false
}

func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*storage.Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if _, ok := s.Subject(in.SubjectID); !ok {
		return nil, NotFoundError{Kind: "subject", ID: in.SubjectID}
	}
	due, err := ParseDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	t := storage.Task{ID: s.newID(), Title: title, SubjectID: in.SubjectID, DueDate: due}
	s.tasks = append(s.tasks, t)
	s.taskRepo.SaveAll(ctx, s.tasks)
	return &t, nil
}

func (s *Service) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*storage.Task, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	t := s.tasks[i]
	if in.Title != nil {
		title, err := normalizeTitle(*in.Title)
		if err != nil {
			return nil, err
		}
		t.Title = title
	}
	if in.SubjectID != nil {
		if _, ok := s.Subject(*in.SubjectID); !ok {
			return nil, NotFoundError{Kind: "subject", ID: *in.SubjectID}
		}
		t.SubjectID = *in.SubjectID
	}
	if in.DueDate != nil {
		due, err := ParseDueDate(*in.DueDate)
		if err != nil {
			return nil, err
		}
		t.DueDate = due
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	s.tasks[i] = t
	s.taskRepo.SaveAll(ctx, s.tasks)
	return &t, nil
}

func (s *Service) ToggleTaskCompletion(ctx context.Context, id string) (*storage.Task, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]
	s.taskRepo.SaveAll(ctx, s.tasks)
	return &t, nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	i := s.taskIndex(id)
	if i < 0 {
		return NotFoundError{Kind: "task", ID: id}
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.taskRepo.SaveAll(ctx, s.tasks)
	return nil
}

// TasksForSubject returns the subject's tasks in insertion order.
func (s *Service) TasksForSubject(subjectID string) []storage.Task {
	var out []storage.Task
	for _, t := range s.tasks {
		if t.SubjectID == subjectID {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
