// Package insight asks an external text model for study advice.
//
// The service never fails: any error becomes FallbackMessage.
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

const FallbackMessage = "There was an error generating insights. Please try again later."

// Generator turns a prompt into free-form text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Input struct {
	Subjects []storage.Subject
	Tasks    []storage.Task
	Sessions []storage.StudySession
	Now      time.Time
}

// Summary is the data sent to the model.
type Summary struct {
	StudyTime string
	Tasks     string
}

// Summarize lists minutes per subject and the status of every task.
func Summarize(in Input) Summary {
	perSubject := make([]string, 0, len(in.Subjects))
	for _, s := range in.Subjects {
		var total int64
		for _, sess := range in.Sessions {
			if sess.SubjectID == s.ID {
				total += sess.Duration
			}
		}
		perSubject = append(perSubject, fmt.Sprintf("%s: %d minutes", s.Name, total/60))
	}

	names := make(map[string]string, len(in.Subjects))
	for _, s := range in.Subjects {
		names[s.ID] = s.Name
	}
	lines := make([]string, 0, len(in.Tasks))
	for _, t := range in.Tasks {
		name, ok := names[t.SubjectID]
		if !ok {
			name = engine.UnknownSubjectName
		}
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		overdue := ""
		if engine.IsOverdue(t, in.Now) {
			overdue = " (Overdue)"
		}
		lines = append(lines, fmt.Sprintf("- %s (%s): %s%s", t.Title, name, status, overdue))
	}

	return Summary{
		StudyTime: strings.Join(perSubject, ", "),
		Tasks:     strings.Join(lines, "\n"),
	}
}

func (s Summary) Prompt() string {
	var b strings.Builder
	b.WriteString("As a study coach, analyze the following student data and provide actionable insights and recommendations.\n")
	b.WriteString("Be encouraging and concise. Format the output in Markdown.\n\n")
	b.WriteString("**Study Time Summary:**\n")
	b.WriteString(s.StudyTime)
	b.WriteString("\n\n**Task List:**\n")
	b.WriteString(s.Tasks)
	b.WriteString("\n\nProvide insights on which subject needs more focus, suggest what to work on next, and offer some motivation.\n")
	return b.String()
}

// Service wraps a Generator with the fallback contract. Identical prompts
// that overlap in time share a single call.
type Service struct {
	gen     Generator
	timeout time.Duration
	group   singleflight.Group
}

func NewService(gen Generator, timeout time.Duration) *Service {
	return &Service{gen: gen, timeout: timeout}
}

// Insights returns the model's text or FallbackMessage. The shared call
// outlives any single caller; a caller whose ctx ends stops waiting.
func (s *Service) Insights(ctx context.Context, in Input) string {
	prompt := Summarize(in).Prompt()
	ch := s.group.DoChan(prompt, func() (any, error) {
		callCtx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(callCtx, s.timeout)
			defer cancel()
		}
		return s.gen.Generate(callCtx, prompt)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		zap.L().Warn("insight request abandoned", zap.Error(ctx.Err()))
		return FallbackMessage
	case res = <-ch:
	}
	if res.Err != nil {
		zap.L().Error("insight generation failed", zap.Bool("shared", res.Shared), zap.Error(res.Err))
		return FallbackMessage
	}
	text := strings.TrimSpace(res.Val.(string))
	if text == "" {
		zap.L().Error("insight generation returned no text")
		return FallbackMessage
	}
	return text
}
