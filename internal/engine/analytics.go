package engine

import (
	"math"
	"sort"
	"time"

	"studytime/internal/storage"
)

// Window selects sessions by start time in [Start, End). Zero bounds are open.
type Window struct {
	Start time.Time
	End   time.Time
}

func AllTime() Window { return Window{} }

// Today covers the local calendar day of now.
func Today(now time.Time) Window {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// LastDays starts exactly n days before now and has no upper bound.
func LastDays(now time.Time, n int) Window {
	return Window{Start: now.AddDate(0, 0, -n)}
}

func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

func (w Window) Filter(sessions []storage.StudySession) []storage.StudySession {
	var out []storage.StudySession
	for _, s := range sessions {
		if w.Contains(s.Start()) {
			out = append(out, s)
		}
	}
	return out
}

type SubjectTime struct {
	SubjectID string `json:"subjectId"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Seconds   int64  `json:"seconds"`
}

// Minutes rounds to the nearest minute for charts.
func (s SubjectTime) Minutes() int64 { return roundMinutes(s.Seconds) }

type CategoryTime struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Seconds  int64  `json:"seconds"`
}

func (c CategoryTime) Minutes() int64 { return roundMinutes(c.Seconds) }

func roundMinutes(seconds int64) int64 {
	return int64(math.Round(float64(seconds) / 60))
}

// TimeBySubject sums session time per subject within w, in order of first
// appearance. Sessions of unknown subjects are skipped.
func TimeBySubject(sessions []storage.StudySession, subjects []storage.Subject, w Window) []SubjectTime {
	byID := indexSubjects(subjects)
	pos := map[string]int{}
	var out []SubjectTime
	for _, s := range w.Filter(sessions) {
		subj, ok := byID[s.SubjectID]
		if !ok {
			continue
		}
		i, seen := pos[subj.ID]
		if !seen {
			i = len(out)
			pos[subj.ID] = i
			out = append(out, SubjectTime{SubjectID: subj.ID, Name: subj.Name, Color: subj.Color})
		}
		out[i].Seconds += s.Duration
	}
	return out
}

// TimeByCategory sums all-time session time per subject category.
func TimeByCategory(sessions []storage.StudySession, subjects []storage.Subject) []CategoryTime {
	byID := indexSubjects(subjects)
	pos := map[string]int{}
	var out []CategoryTime
	for _, s := range sessions {
		subj, ok := byID[s.SubjectID]
		if !ok {
			continue
		}
		cat := subj.Category
		if cat == "" {
			cat = CategoryOther
		}
		i, seen := pos[cat]
		if !seen {
			i = len(out)
			pos[cat] = i
			out = append(out, CategoryTime{Category: cat, Color: CategoryColor(cat)})
		}
		out[i].Seconds += s.Duration
	}
	return out
}

// FocusScore is the rounded percentage of completed tasks, 0 with no tasks.
func FocusScore(tasks []storage.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

type FocusBand string

const (
	FocusHigh   FocusBand = "high"
	FocusMedium FocusBand = "medium"
	FocusLow    FocusBand = "low"
)

func BandFor(score int) FocusBand {
	switch {
	case score >= 75:
		return FocusHigh
	case score >= 40:
		return FocusMedium
	default:
		return FocusLow
	}
}

// IsOverdue reports an incomplete task due before today's date.
func IsOverdue(t storage.Task, now time.Time) bool {
	if t.Completed {
		return false
	}
	due, err := time.ParseInLocation(DateLayout, t.DueDate, now.Location())
	if err != nil {
		return false
	}
	return due.Before(Today(now).Start)
}

// IsDueToday reports a task due on now's calendar day.
func IsDueToday(t storage.Task, now time.Time) bool {
	return t.DueDate == now.Format(DateLayout)
}

// RecentSessions returns up to n sessions, newest start first.
func RecentSessions(sessions []storage.StudySession, n int) []storage.StudySession {
	out := make([]storage.StudySession, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime > out[j].StartTime })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// UpcomingTasks returns up to n incomplete tasks, earliest due date first.
func UpcomingTasks(tasks []storage.Task, n int) []storage.Task {
	var out []storage.Task
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SortTasks orders incomplete tasks first, each group by due date.
func SortTasks(tasks []storage.Task) []storage.Task {
	out := make([]storage.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

// Dashboard gathers every rollup shown on the overview screen.
type Dashboard struct {
	TodaySeconds   int64                  `json:"todaySeconds"`
	TodaySessions  int                    `json:"todaySessions"`
	PendingTasks   int                    `json:"pendingTasks"`
	FocusScore     int                    `json:"focusScore"`
	FocusBand      FocusBand              `json:"focusBand"`
	LastSevenDays  []SubjectTime          `json:"lastSevenDays"`
	AllTime        []SubjectTime          `json:"allTime"`
	ByCategory     []CategoryTime         `json:"byCategory"`
	Recent         []storage.StudySession `json:"recent"`
	Upcoming       []storage.Task         `json:"upcoming"`
	CurrentStreak  int                    `json:"currentStreak"`
	LongestStreak  int                    `json:"longestStreak"`
	Achievements   []Achievement          `json:"achievements"`
	EarnedCount    int                    `json:"earnedCount"`
	TotalSeconds   int64                  `json:"totalSeconds"`
	SessionCount   int                    `json:"sessionCount"`
	CompletedTasks int                    `json:"completedTasks"`
}

const dashboardListSize = 5

func BuildDashboard(sessions []storage.StudySession, tasks []storage.Task, subjects []storage.Subject, now time.Time) Dashboard {
	today := Today(now).Filter(sessions)
	pending := 0
	for _, t := range tasks {
		if !t.Completed {
			pending++
		}
	}
	score := FocusScore(tasks)
	checker := NewAchievementChecker(sessions, tasks, subjects).In(now.Location())
	achievements := checker.GetAchievements()
	earned := 0
	for _, a := range achievements {
		if a.Earned {
			earned++
		}
	}
	return Dashboard{
		TodaySeconds:   TotalDuration(today),
		TodaySessions:  len(today),
		PendingTasks:   pending,
		FocusScore:     score,
		FocusBand:      BandFor(score),
		LastSevenDays:  TimeBySubject(sessions, subjects, LastDays(now, 7)),
		AllTime:        TimeBySubject(sessions, subjects, AllTime()),
		ByCategory:     TimeByCategory(sessions, subjects),
		Recent:         RecentSessions(sessions, dashboardListSize),
		Upcoming:       UpcomingTasks(tasks, dashboardListSize),
		CurrentStreak:  CurrentStreak(sessions, now),
		LongestStreak:  LongestStreak(sessions, now.Location()),
		Achievements:   achievements,
		EarnedCount:    earned,
		TotalSeconds:   TotalDuration(sessions),
		SessionCount:   len(sessions),
		CompletedTasks: len(tasks) - pending,
	}
}

func indexSubjects(subjects []storage.Subject) map[string]storage.Subject {
	m := make(map[string]storage.Subject, len(subjects))
	for _, s := range subjects {
		m[s.ID] = s
	}
	return m
}
