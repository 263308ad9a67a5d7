package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytime/internal/storage"
)

func sessionOn(subjectID string, day time.Time, seconds int64) storage.StudySession {
	start := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	return storage.StudySession{
		SubjectID: subjectID,
		StartTime: start.UnixMilli(),
		EndTime:   start.Add(time.Duration(seconds) * time.Second).UnixMilli(),
		Duration:  seconds,
	}
}

func daysFrom(base time.Time, offsets ...int) []storage.StudySession {
	var out []storage.StudySession
	for _, o := range offsets {
		out = append(out, sessionOn("s1", base.AddDate(0, 0, o), 60))
	}
	return out
}

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestLongestStreak(t *testing.T) {
	cases := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"none", nil, 0},
		{"single", []int{0}, 1},
		{"three consecutive", []int{0, 1, 2}, 3},
		{"gap", []int{0, 2}, 1},
		{"longest run later", []int{0, 1, 3, 4, 5}, 3},
		{"duplicates same day", []int{0, 0, 1, 1, 2}, 3},
		{"unsorted input", []int{5, 3, 4, 0}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LongestStreak(daysFrom(day0, tc.offsets...), time.UTC)
			if got != tc.want {
				t.Fatalf("LongestStreak=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	base := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 3, LongestStreak(daysFrom(base, 0, 1, 2), time.UTC)) // Feb 28, Feb 29, Mar 1
}

func TestStreakAchievement(t *testing.T) {
	loc := time.UTC
	earned := NewAchievementChecker(daysFrom(day0, 0, 1, 2), nil, nil).In(loc).Evaluate()
	assert.True(t, earned.Has(AchievementStreak3Days))

	earned = NewAchievementChecker(daysFrom(day0, 0, 2), nil, nil).In(loc).Evaluate()
	assert.False(t, earned.Has(AchievementStreak3Days))
}

func TestWellRoundedIgnoresDates(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	sessions := []storage.StudySession{
		sessionOn("a", jan1, 60),
		sessionOn("b", jan3, 60),
	}
	got := NewAchievementChecker(sessions, nil, nil).In(time.UTC).Evaluate()
	assert.False(t, got.Has(AchievementStreak3Days))
	assert.False(t, got.Has(AchievementWellRounded))

	sessions = append(sessions, sessionOn("c", jan3, 60))
	got = NewAchievementChecker(sessions, nil, nil).In(time.UTC).Evaluate()
	assert.False(t, got.Has(AchievementStreak3Days))
	assert.True(t, got.Has(AchievementWellRounded))
}

func TestAchievementThresholds(t *testing.T) {
	var sessions []storage.StudySession
	for i := 0; i < 4; i++ {
		sessions = append(sessions, sessionOn("a", day0, 3599))
	}
	got := Evaluate(sessions, nil, nil)
	assert.True(t, got.Has(AchievementFirstSession))
	assert.False(t, got.Has(AchievementFiveSessions))
	assert.False(t, got.Has(AchievementMarathoner))
	assert.False(t, got.Has(AchievementSpecialist)) // 4 * 3599 < 18000

	sessions = append(sessions, sessionOn("a", day0, 3604))
	got = Evaluate(sessions, nil, nil)
	assert.True(t, got.Has(AchievementFiveSessions))
	assert.True(t, got.Has(AchievementMarathoner))
	assert.True(t, got.Has(AchievementSpecialist)) // 4*3599 + 3604 = 18000

	var tasks []storage.Task
	for i := 0; i < 10; i++ {
		tasks = append(tasks, storage.Task{Completed: i != 0})
	}
	assert.False(t, Evaluate(nil, tasks, nil).Has(AchievementTenTasks))
	tasks[0].Completed = true
	assert.True(t, Evaluate(nil, tasks, nil).Has(AchievementTenTasks))
}

func TestSpecialistNeedsOneSubject(t *testing.T) {
	sessions := []storage.StudySession{
		sessionOn("a", day0, 10000),
		sessionOn("b", day0, 10000),
	}
	assert.False(t, Evaluate(sessions, nil, nil).Has(AchievementSpecialist))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	sessions := daysFrom(day0, 0, 1, 2, 5)
	tasks := []storage.Task{{Completed: true}, {Completed: false}}
	first := Evaluate(sessions, tasks, nil)
	second := Evaluate(sessions, tasks, nil)
	require.Equal(t, first, second)
}

func TestAchievementsCanBeLostWhenDataIsDeleted(t *testing.T) {
	f := newFixture(t, "default")
	math := f.addSubject("Math", "")
	f.study(math.ID, testStart, 60)
	require.True(t, earnedIn(f.svc.Achievements(), AchievementFirstSession))

	require.NoError(t, f.svc.DeleteSubject(f.ctx, math.ID))
	require.False(t, earnedIn(f.svc.Achievements(), AchievementFirstSession))
}

func earnedIn(list []Achievement, id AchievementID) bool {
	for _, a := range list {
		if a.ID == id {
			return a.Earned
		}
	}
	return false
}

func TestCatalog(t *testing.T) {
	c := NewAchievementChecker(nil, nil, nil)
	require.Equal(t, 7, c.CountTotal())
	require.Equal(t, 0, c.CountEarned())
	list := c.GetAchievements()
	require.Equal(t, "On Fire!", list[6].Name)
	require.Equal(t, "🔥", list[6].Icon)
}

func TestCurrentStreak(t *testing.T) {
	now := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	require.Equal(t, 3, CurrentStreak(daysFrom(day0, 6, 7, 8), now)) // through yesterday
	require.Equal(t, 2, CurrentStreak(daysFrom(day0, 6, 8, 9), now))
	require.Equal(t, 0, CurrentStreak(daysFrom(day0, 5, 6, 7), now))
	require.Equal(t, 4, CurrentStreak(daysFrom(day0, 6, 7, 8, 9), now))
}
