package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"studytime/internal/notify"
	"studytime/internal/storage"
)

func TestPomodoroRunsToCompletion(t *testing.T) {
	f := newFixture(t, notify.PermissionGranted)
	f.addSubject("Math", "")
	f.notifier.On("Notify", notify.PomodoroComplete("Math")).Return(nil).Once()

	var completed *storage.StudySession
	f.svc.Timer().OnComplete(func(s *storage.StudySession) { completed = s })

	timer := f.svc.Timer()
	require.Equal(t, ModePomodoro, timer.Mode())
	require.Equal(t, 1500, timer.Seconds())
	require.NoError(t, timer.Start(f.ctx))
	require.Equal(t, TimerRunning, timer.State())

	f.tick(1499)
	require.Equal(t, 1, timer.Seconds())
	require.Empty(t, f.svc.Sessions())

	f.tick(1)
	sessions := f.svc.Sessions()
	require.Len(t, sessions, 1)
	require.Equal(t, int64(1500), sessions[0].Duration)
	require.Equal(t, sessions[0].EndTime-sessions[0].StartTime, int64(1500*1000))
	require.Equal(t, 1500, timer.Seconds())
	require.False(t, timer.Running())
	require.Equal(t, TimerIdle, timer.State())
	require.Equal(t, 0, f.sched.Active())
	require.NotNil(t, completed)
	require.Equal(t, sessions[0].ID, completed.ID)
	f.notifier.AssertExpectations(t)
}

func TestStartWithoutSubjects(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	err := f.svc.Timer().Start(f.ctx)
	require.ErrorIs(t, err, ErrNoSubjects)
	require.False(t, f.svc.Timer().Running())
	require.Empty(t, f.svc.Sessions())
	require.Equal(t, 0, f.sched.Active())
}

func TestStartWithoutSelection(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")
	require.NoError(t, f.svc.Timer().SetActiveSubject(""))

	err := f.svc.Timer().Start(f.ctx)
	require.ErrorIs(t, err, ErrNoSubjectSelected)
	require.False(t, f.svc.Timer().Running())
}

func TestStartWithoutScheduler(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	db, err := storage.Open(f.ctx, f.dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(db, WithClock(f.clock))
	svc.Load(f.ctx)
	_, err = svc.AddSubject(f.ctx, AddSubjectInput{Name: "Math"})
	require.NoError(t, err)

	err = svc.Timer().Start(f.ctx)
	require.ErrorIs(t, err, ErrNoScheduler)
	require.False(t, svc.Timer().Running())
	require.Equal(t, ModePomodoro.InitialSeconds(), svc.Timer().Seconds())
}

func TestStopwatchStopAndSave(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")
	timer := f.svc.Timer()
	require.NoError(t, timer.SetMode(ModeStopwatch))
	require.Equal(t, 0, timer.Seconds())

	require.NoError(t, timer.Start(f.ctx))
	f.tick(42)
	require.Equal(t, 42, timer.Seconds())

	s, err := timer.StopAndSave(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, int64(42), s.Duration)
	require.Len(t, f.svc.Sessions(), 1)
	require.Equal(t, 0, timer.Seconds())
	require.False(t, timer.Running())
	require.Equal(t, 0, f.sched.Active())
}

func TestZeroDurationStopIsDiscarded(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")
	timer := f.svc.Timer()

	require.NoError(t, timer.Start(f.ctx))
	f.clock.Advance(300 * time.Millisecond)
	s, err := timer.StopAndSave(f.ctx)
	require.NoError(t, err)
	require.Nil(t, s)
	require.Empty(t, f.svc.Sessions())
	require.False(t, timer.Running())
}

func TestDurationRoundsToNearestSecond(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")
	timer := f.svc.Timer()

	require.NoError(t, timer.Start(f.ctx))
	f.clock.Advance(2500 * time.Millisecond)
	s, err := timer.StopAndSave(f.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), s.Duration)
}

func TestStopWhenNotRunning(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")
	_, err := f.svc.Timer().StopAndSave(f.ctx)
	require.ErrorIs(t, err, ErrTimerNotRunning)
}

func TestStartTogglesPause(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")
	timer := f.svc.Timer()

	require.NoError(t, timer.Start(f.ctx))
	start := timer.Snapshot().SessionStart
	f.tick(10)

	require.NoError(t, timer.Start(f.ctx))
	require.False(t, timer.Running())
	require.Equal(t, TimerPaused, timer.State())
	require.Equal(t, start, timer.Snapshot().SessionStart)
	require.Equal(t, 0, f.sched.Active())
	require.Equal(t, 1490, timer.Seconds())

	// Ticks after pausing change nothing.
	f.clock.Advance(time.Minute)
	timer.Tick()
	require.Equal(t, 1490, timer.Seconds())

	require.NoError(t, timer.Start(f.ctx))
	require.True(t, timer.Running())
	require.Equal(t, f.clock.Now().UnixMilli(), timer.Snapshot().SessionStart)
	require.Equal(t, 1, f.sched.Active())
}

func TestModeAndSubjectLockedWhileRunning(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	math := f.addSubject("Math", "")
	art := f.addSubject("Art", "")
	timer := f.svc.Timer()

	require.NoError(t, timer.Start(f.ctx))
	require.ErrorIs(t, timer.SetMode(ModeStopwatch), ErrTimerRunning)
	require.ErrorIs(t, timer.SetActiveSubject(art.ID), ErrTimerRunning)
	require.Equal(t, ModePomodoro, timer.Mode())
	require.Equal(t, math.ID, timer.ActiveSubjectID())

	timer.Pause()
	require.NoError(t, timer.SetActiveSubject(art.ID))
	require.NoError(t, timer.SetMode(ModeStopwatch))
	require.Equal(t, 0, timer.Seconds())
	require.Equal(t, TimerIdle, timer.State())

	require.True(t, IsNotFound(timer.SetActiveSubject("missing")))
}

func TestCompletionFallsBackToAlertWhenDenied(t *testing.T) {
	f := newFixture(t, notify.PermissionDenied)
	f.addSubject("Math", "")
	f.notifier.On("Alert", notify.AlertMessage).Return(nil).Once()

	require.NoError(t, f.svc.Timer().Start(f.ctx))
	f.tick(PomodoroSeconds)

	require.Len(t, f.svc.Sessions(), 1)
	f.notifier.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "Notify", notify.PomodoroComplete("Math"))
}

func TestCompletionSilentWhenPermissionUndecided(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.addSubject("Math", "")

	require.NoError(t, f.svc.Timer().Start(f.ctx))
	f.tick(PomodoroSeconds)

	require.Len(t, f.svc.Sessions(), 1)
	f.notifier.AssertNotCalled(t, "Alert", notify.AlertMessage)
}

func TestPermissionResultIsPostedBack(t *testing.T) {
	f := newFixture(t, notify.PermissionDefault)
	f.notifier.On("RequestPermission").Return(notify.PermissionGranted, nil).Once()

	posted := make(chan func(), 1)
	f.svc.RequestNotificationPermission(f.notifier, PosterFunc(func(fn func()) bool {
		posted <- fn
		return true
	}))

	select {
	case fn := <-posted:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatalf("permission result never posted")
	}
	require.Equal(t, notify.PermissionGranted, f.svc.Timer().permission)
}
