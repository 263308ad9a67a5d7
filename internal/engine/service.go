package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studytime/internal/notify"
	"studytime/internal/storage"
)

// Service is the application state: subjects, tasks, the session ledger,
// preferences and the timer. In-memory state is authoritative; every
// mutation is written through to the store before returning.
//
// A Service is not safe for concurrent use. Callers that touch it from more
// than one goroutine funnel every call through a Loop.
type Service struct {
	db *sql.DB
	kv *storage.KV

	subjectRepo *storage.SubjectRepo
	taskRepo    *storage.TaskRepo
	sessionRepo *storage.SessionRepo
	prefsRepo   *storage.PrefsRepo

	clock Clock
	newID func() string

	subjects []storage.Subject
	tasks    []storage.Task
	ledger   *Ledger
	prefs    storage.Preferences

	timer *Timer
}

type options struct {
	namespace string
	clock     Clock
	scheduler Scheduler
	notifier  notify.Notifier
	newID     func() string
}

type Option func(*options)

func WithNamespace(ns string) Option        { return func(o *options) { o.namespace = ns } }
func WithClock(c Clock) Option              { return func(o *options) { o.clock = c } }
func WithScheduler(s Scheduler) Option      { return func(o *options) { o.scheduler = s } }
func WithNotifier(n notify.Notifier) Option { return func(o *options) { o.notifier = n } }
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

// NewService builds a Service over db. Call Load before use.
//
// The timer only starts when a Scheduler is given with WithScheduler; its
// ticks must be delivered on the goroutine that owns the Service.
func NewService(db *sql.DB, opts ...Option) *Service {
	o := options{
		namespace: storage.DefaultNamespace,
		clock:     SystemClock,
		notifier:  notify.Nop{},
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	kv := storage.NewKV(db, o.namespace)
	s := &Service{
		db:          db,
		kv:          kv,
		subjectRepo: storage.NewSubjectRepo(kv),
		taskRepo:    storage.NewTaskRepo(kv),
		sessionRepo: storage.NewSessionRepo(kv),
		prefsRepo:   storage.NewPrefsRepo(kv),
		clock:       o.clock,
		newID:       o.newID,
		ledger:      NewLedger(nil),
		prefs: storage.Preferences{
			Theme:   storage.ThemeLight,
			Profile: storage.DefaultProfile(),
		},
	}
	s.timer = newTimer(s, o.scheduler, o.clock, o.notifier)
	return s
}

// Load reads persisted state. Missing or corrupted keys load as defaults.
func (s *Service) Load(ctx context.Context) {
	if v := s.prefsRepo.EnsureSchemaVersion(ctx); v > storage.SchemaVersion {
		zap.L().Warn("store written by a newer version", zap.Int("found", v), zap.Int("supported", storage.SchemaVersion))
	}
	s.subjects = s.subjectRepo.ListAll(ctx)
	s.tasks = s.taskRepo.ListAll(ctx)
	s.ledger = NewLedger(s.sessionRepo.ListAll(ctx))
	s.prefs = s.prefsRepo.Load(ctx)

	if len(s.subjects) > 0 && s.timer.activeSubjectID == "" {
		s.timer.activeSubjectID = s.subjects[0].ID
	}
}

func (s *Service) DB() *sql.DB        { return s.db }
func (s *Service) Store() *storage.KV { return s.kv }
func (s *Service) Timer() *Timer      { return s.timer }
func (s *Service) Ledger() *Ledger    { return s.ledger }
func (s *Service) Clock() Clock       { return s.clock }

// Close stops the timer tick. Unsaved time is dropped.
func (s *Service) Close() {
	s.timer.Close()
}

// RequestNotificationPermission asks the notifier for permission off the
// calling thread when it has not been decided yet, and posts the answer back
// through p.
func (s *Service) RequestNotificationPermission(n notify.Notifier, p Poster) {
	if n.Permission() != notify.PermissionDefault {
		s.timer.setPermission(n.Permission())
		return
	}
	go func() {
		perm, err := n.RequestPermission()
		if err != nil {
			zap.L().Warn("notification permission request failed", zap.Error(err))
			return
		}
		p.Post(func() { s.timer.setPermission(perm) })
	}()
}

// Achievements evaluates every badge over the current data.
func (s *Service) Achievements() []Achievement {
	return NewAchievementChecker(s.ledger.All(), s.Tasks(), s.Subjects()).In(s.clock.Now().Location()).GetAchievements()
}

func (s *Service) Dashboard() Dashboard {
	return BuildDashboard(s.ledger.All(), s.Tasks(), s.Subjects(), s.clock.Now())
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return t, nil
}
