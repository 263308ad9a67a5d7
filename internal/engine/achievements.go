package engine

import (
	"sort"
	"time"

	"studytime/internal/storage"
)

type AchievementID string

const (
	AchievementFirstSession AchievementID = "first_session"
	AchievementFiveSessions AchievementID = "five_sessions"
	AchievementTenTasks     AchievementID = "ten_tasks"
	AchievementMarathoner   AchievementID = "marathoner"
	AchievementSpecialist   AchievementID = "specialist"
	AchievementWellRounded  AchievementID = "well_rounded"
	AchievementStreak3Days  AchievementID = "streak_3_days"
)

const (
	marathonSeconds   = 3600
	specialistSeconds = 5 * 3600
)

// Achievement is a badge with its current earned status.
type Achievement struct {
	ID          AchievementID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Earned      bool          `json:"earned"`
}

// AchievementSet holds the ids whose predicate currently holds.
type AchievementSet map[AchievementID]bool

func (s AchievementSet) Has(id AchievementID) bool { return s[id] }

// AchievementChecker evaluates every achievement against present data.
// Nothing is remembered between calls: deleting data can un-earn a badge.
type AchievementChecker struct {
	sessions []storage.StudySession
	tasks    []storage.Task
	subjects []storage.Subject
	loc      *time.Location
}

func NewAchievementChecker(sessions []storage.StudySession, tasks []storage.Task, subjects []storage.Subject) *AchievementChecker {
	return &AchievementChecker{
		sessions: sessions,
		tasks:    tasks,
		subjects: subjects,
		loc:      time.Local,
	}
}

// In sets the location whose calendar days define streaks.
func (c *AchievementChecker) In(loc *time.Location) *AchievementChecker {
	if loc != nil {
		c.loc = loc
	}
	return c
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		c.sessionCountAchievement(AchievementFirstSession, "First Step", "Complete your first study session.", "🚀", 1),
		c.sessionCountAchievement(AchievementFiveSessions, "Study Bug", "Complete 5 study sessions.", "🐞", 5),
		c.taskCountAchievement(AchievementTenTasks, "Taskmaster", "Complete 10 tasks.", "✅", 10),
		c.longSessionAchievement(AchievementMarathoner, "Marathoner", "Complete a study session longer than 1 hour.", "🏃", marathonSeconds),
		c.subjectTotalAchievement(AchievementSpecialist, "Specialist", "Study one subject for more than 5 hours in total.", "🎓", specialistSeconds),
		c.distinctSubjectsAchievement(AchievementWellRounded, "Well-Rounded", "Study at least 3 different subjects.", "🌍", 3),
		c.streakAchievement(AchievementStreak3Days, "On Fire!", "Maintain a 3-day study streak.", "🔥", 3),
	}
}

// Evaluate returns the set of earned achievement ids.
func (c *AchievementChecker) Evaluate() AchievementSet {
	set := AchievementSet{}
	for _, a := range c.GetAchievements() {
		if a.Earned {
			set[a.ID] = true
		}
	}
	return set
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	return len(c.Evaluate())
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

// Evaluate is the pure form: which achievements hold for the given data.
func Evaluate(sessions []storage.StudySession, tasks []storage.Task, subjects []storage.Subject) AchievementSet {
	return NewAchievementChecker(sessions, tasks, subjects).Evaluate()
}

func (c *AchievementChecker) sessionCountAchievement(id AchievementID, name, desc, icon string, count int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: len(c.sessions) >= count}
}

func (c *AchievementChecker) taskCountAchievement(id AchievementID, name, desc, icon string, count int) Achievement {
	done := 0
	for _, t := range c.tasks {
		if t.Completed {
			done++
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: done >= count}
}

func (c *AchievementChecker) longSessionAchievement(id AchievementID, name, desc, icon string, seconds int64) Achievement {
	earned := false
	for _, s := range c.sessions {
		if s.Duration >= seconds {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) subjectTotalAchievement(id AchievementID, name, desc, icon string, seconds int64) Achievement {
	perSubject := map[string]int64{}
	earned := false
	for _, s := range c.sessions {
		perSubject[s.SubjectID] += s.Duration
		if perSubject[s.SubjectID] >= seconds {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) distinctSubjectsAchievement(id AchievementID, name, desc, icon string, count int) Achievement {
	earned := len(uniqueSubjects(c.sessions)) >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id AchievementID, name, desc, icon string, days int) Achievement {
	earned := LongestStreak(c.sessions, c.loc) >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// studyDays returns the distinct calendar days (as day numbers) with at
// least one session, ascending.
func studyDays(sessions []storage.StudySession, loc *time.Location) []int64 {
	if loc == nil {
		loc = time.Local
	}
	seen := map[int64]bool{}
	var days []int64
	for _, s := range sessions {
		d := dayNumber(s.Start(), loc)
		if seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// dayNumber counts calendar days since the epoch for t's date in loc.
// Computed on the civil date so DST shifts never produce a 23h "day".
func dayNumber(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// LongestStreak is the longest run of consecutive calendar days that each
// hold at least one session.
func LongestStreak(sessions []storage.StudySession, loc *time.Location) int {
	days := studyDays(sessions, loc)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// CurrentStreak is the run of consecutive study days ending today, or
// ending yesterday when nothing has been studied yet today.
func CurrentStreak(sessions []storage.StudySession, now time.Time) int {
	days := studyDays(sessions, now.Location())
	if len(days) == 0 {
		return 0
	}
	today := dayNumber(now, now.Location())
	last := days[len(days)-1]
	if last != today && last != today-1 {
		return 0
	}
	run := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i]-days[i-1] != 1 {
			break
		}
		run++
	}
	return run
}
