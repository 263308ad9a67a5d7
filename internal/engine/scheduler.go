package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// CancelFunc stops a periodic schedule. Calling it more than once is safe.
type CancelFunc func()

type Scheduler interface {
	SchedulePeriodic(interval time.Duration, fn func()) CancelFunc
}

// TickerScheduler fires fn every interval by posting it to a Poster, so the
// callback runs on the poster's thread. A cancelled schedule never runs fn
// again, even if a tick was already queued.
type TickerScheduler struct {
	poster Poster
}

func NewTickerScheduler(p Poster) *TickerScheduler {
	return &TickerScheduler{poster: p}
}

func (s *TickerScheduler) SchedulePeriodic(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	var cancelled atomic.Bool
	var once sync.Once

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.poster.Post(func() {
					if !cancelled.Load() {
						fn()
					}
				})
			}
		}
	}()

	return func() {
		once.Do(func() {
			cancelled.Store(true)
			close(stop)
		})
	}
}

// ManualScheduler fires callbacks only when Fire is called.
type ManualScheduler struct {
	mu     sync.Mutex
	nextID int
	active map[int]func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{active: map[int]func(){}}
}

func (s *ManualScheduler) SchedulePeriodic(_ time.Duration, fn func()) CancelFunc {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.active[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.active, id)
		s.mu.Unlock()
	}
}

// Active reports how many schedules are live.
func (s *ManualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Fire runs every live callback once.
func (s *ManualScheduler) Fire() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.active))
	for _, fn := range s.active {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
