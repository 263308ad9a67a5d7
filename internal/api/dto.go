package api

import (
	"studytime/internal/engine"
	"studytime/internal/storage"
)

type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Color    string `json:"color" binding:"omitempty,hexcolor"`
	Category string `json:"category"`
}

type UpdateSubjectRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Color    *string `json:"color" binding:"omitempty,hexcolor"`
	Category *string `json:"category"`
}

type CreateTaskRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	SubjectID string `json:"subjectId" binding:"required"`
	DueDate   string `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	SubjectID *string `json:"subjectId"`
	DueDate   *string `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Completed *bool   `json:"completed"`
}

// CreateSessionRequest takes unix milliseconds, like the stored sessions.
type CreateSessionRequest struct {
	SubjectID string `json:"subjectId" binding:"required"`
	StartTime int64  `json:"startTime" binding:"required,gt=0"`
	EndTime   int64  `json:"endTime" binding:"required,gt=0"`
}

type ModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type SubjectRequest struct {
	SubjectID string `json:"subjectId"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

type ProfileRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// TimerResponse is the timer state plus the session a stop produced.
type TimerResponse struct {
	engine.TimerSnapshot
	Session *storage.StudySession `json:"session,omitempty"`
}

type InsightsResponse struct {
	Insights string `json:"insights"`
}

type PreferencesResponse struct {
	Theme            storage.Theme       `json:"theme"`
	Profile          storage.UserProfile `json:"userProfile"`
	SidebarCollapsed bool                `json:"sidebarCollapsed"`
}
