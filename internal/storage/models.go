package storage

import "time"

// Persisted documents. Field names follow the JSON written under each key.

type Subject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category,omitempty"`
}

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	SubjectID string `json:"subjectId"`
	DueDate   string `json:"dueDate"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}

// StudySession is a closed study interval. StartTime and EndTime are unix milliseconds.
type StudySession struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
	Duration  int64  `json:"duration"` // seconds
}

func (s StudySession) Start() time.Time { return time.UnixMilli(s.StartTime) }
func (s StudySession) End() time.Time   { return time.UnixMilli(s.EndTime) }

type UserProfile struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

func DefaultProfile() UserProfile {
	return UserProfile{Name: "Alex Starr", Title: "Pro Member"}
}
