package engine

import (
	"context"
	"math"

	"go.uber.org/zap"

	"studytime/internal/notify"
	"studytime/internal/storage"
)

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
)

// TimerSnapshot is a read-only view of the timer.
type TimerSnapshot struct {
	Mode            Mode       `json:"mode"`
	State           TimerState `json:"state"`
	Running         bool       `json:"running"`
	Seconds         int        `json:"seconds"`
	ActiveSubjectID string     `json:"activeSubjectId,omitempty"`
	SessionStart    int64      `json:"sessionStart,omitempty"` // unix ms, 0 when unset
}

// Timer is the single study timer of a Service.
//
// While running it holds exactly one scheduler registration and drops it on
// every transition out of running. All methods must be called from the
// thread that owns the Service.
type Timer struct {
	svc      *Service
	sched    Scheduler
	clock    Clock
	notifier notify.Notifier

	permission notify.Permission

	mode            Mode
	running         bool
	seconds         int
	activeSubjectID string
	sessionStart    int64 // unix ms, 0 when unset
	cancel          CancelFunc

	// ctx is the context of the Start call that armed the tick; saves
	// triggered by a completing countdown persist with it.
	ctx context.Context

	onComplete func(*storage.StudySession)
}

func newTimer(svc *Service, sched Scheduler, clock Clock, n notify.Notifier) *Timer {
	return &Timer{
		svc:        svc,
		sched:      sched,
		clock:      clock,
		notifier:   n,
		permission: n.Permission(),
		mode:       ModePomodoro,
		seconds:    ModePomodoro.InitialSeconds(),
	}
}

func (t *Timer) Mode() Mode              { return t.mode }
func (t *Timer) Running() bool           { return t.running }
func (t *Timer) Seconds() int            { return t.seconds }
func (t *Timer) ActiveSubjectID() string { return t.activeSubjectID }

func (t *Timer) State() TimerState {
	switch {
	case t.running:
		return TimerRunning
	case t.sessionStart != 0:
		return TimerPaused
	default:
		return TimerIdle
	}
}

func (t *Timer) Snapshot() TimerSnapshot {
	return TimerSnapshot{
		Mode:            t.mode,
		State:           t.State(),
		Running:         t.running,
		Seconds:         t.seconds,
		ActiveSubjectID: t.activeSubjectID,
		SessionStart:    t.sessionStart,
	}
}

// OnComplete registers fn to run after a countdown finishes on its own.
// fn receives the saved session, or nil if nothing was recorded.
func (t *Timer) OnComplete(fn func(*storage.StudySession)) {
	t.onComplete = fn
}

// SetMode switches between Pomodoro and Stopwatch and resets the display.
func (t *Timer) SetMode(m Mode) error {
	if !m.IsValid() {
		return errInvalidMode(m)
	}
	if t.running {
		return ErrTimerRunning
	}
	t.mode = m
	t.seconds = m.InitialSeconds()
	t.sessionStart = 0
	return nil
}

// SetActiveSubject selects the subject time is attributed to. An empty id
// clears the selection.
func (t *Timer) SetActiveSubject(id string) error {
	if t.running {
		return ErrTimerRunning
	}
	if id != "" {
		if _, ok := t.svc.Subject(id); !ok {
			return NotFoundError{Kind: "subject", ID: id}
		}
	}
	t.activeSubjectID = id
	return nil
}

// Start begins a session, or pauses when already running.
func (t *Timer) Start(ctx context.Context) error {
	if len(t.svc.subjects) == 0 {
		return ErrNoSubjects
	}
	if _, ok := t.svc.Subject(t.activeSubjectID); !ok {
		return ErrNoSubjectSelected
	}
	if t.running {
		t.Pause()
		return nil
	}
	if t.sched == nil {
		return ErrNoScheduler
	}
	t.ctx = ctx
	t.sessionStart = t.clock.Now().UnixMilli()
	t.running = true
	t.cancel = t.sched.SchedulePeriodic(TickInterval, t.Tick)
	return nil
}

// Pause stops the tick and keeps the session start. No-op when not running.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.running = false
	t.stopTicking()
}

// Tick advances a running timer by one second.
func (t *Timer) Tick() {
	if !t.running {
		return
	}
	if t.mode == ModeStopwatch {
		t.seconds++
		return
	}
	t.seconds--
	if t.seconds > 0 {
		return
	}
	t.seconds = 0
	t.notifyCompletion()
	ctx := t.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := t.StopAndSave(ctx)
	if err != nil {
		zap.L().Warn("save completed pomodoro", zap.Error(err))
	}
	if t.onComplete != nil {
		t.onComplete(s)
	}
}

// StopAndSave ends the running interval and records it in the ledger.
// Intervals shorter than half a second round to zero and are discarded,
// in which case the returned session is nil.
func (t *Timer) StopAndSave(ctx context.Context) (*storage.StudySession, error) {
	if !t.running {
		return nil, ErrTimerNotRunning
	}
	start := t.sessionStart
	end := t.clock.Now().UnixMilli()
	subjectID := t.activeSubjectID
	t.reset()

	duration := int64(math.Round(float64(end-start) / 1000))
	if duration <= 0 {
		return nil, nil
	}
	s := t.svc.appendSession(ctx, storage.StudySession{
		SubjectID: subjectID,
		StartTime: start,
		EndTime:   end,
		Duration:  duration,
	})
	return &s, nil
}

// Close drops any pending tick without saving.
func (t *Timer) Close() {
	t.stopTicking()
}

// discard abandons the current interval and returns to idle.
func (t *Timer) discard() {
	t.reset()
}

func (t *Timer) reset() {
	t.running = false
	t.stopTicking()
	t.sessionStart = 0
	t.seconds = t.mode.InitialSeconds()
	t.ctx = nil
}

func (t *Timer) stopTicking() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Timer) setPermission(p notify.Permission) {
	t.permission = p
}

func (t *Timer) notifyCompletion() {
	name := UnknownSubjectName
	if s, ok := t.svc.Subject(t.activeSubjectID); ok {
		name = s.Name
	}

	var err error
	switch t.permission {
	case notify.PermissionGranted:
		n := notify.PomodoroComplete(name)
		if t.mode == ModeStopwatch {
			n = notify.StopwatchComplete(name, t.seconds)
		}
		err = t.notifier.Notify(n)
	case notify.PermissionDenied:
		err = t.notifier.Alert(notify.AlertMessage)
	}
	if err != nil {
		zap.L().Warn("timer notification failed", zap.Error(err))
	}
}
