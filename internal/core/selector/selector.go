// Package selector picks the campaigns shown in an ad rotation slot.
package selector

import (
	"math/rand/v2"
	"sync"
	"time"

	"portal-ads/internal/core/domain"
)

// ExclusionObserver receives a signal for every campaign dropped by Select.
// Implementations must not block.
type ExclusionObserver interface {
	Excluded(domain.Exclusion)
}

// ObserverFunc adapts a function to ExclusionObserver.
type ObserverFunc func(domain.Exclusion)

func (f ObserverFunc) Excluded(e domain.Exclusion) { f(e) }

// Selector filters a campaign roster down to the live campaigns of a slot
// and returns them in uniformly shuffled order. It holds no state besides
// its options and is safe for concurrent use.
type Selector struct {
	observer ExclusionObserver
	loc      *time.Location

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Selector)

// WithObserver sets the receiver of exclusion signals.
func WithObserver(o ExclusionObserver) Option {
	return func(s *Selector) { s.observer = o }
}

// WithLocation sets the time zone used to turn "now" into a calendar date.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Selector) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithRand makes shuffling deterministic. Intended for tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) { s.rng = r }
}

func New(opts ...Option) *Selector {
	s := &Selector{loc: time.UTC}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns the campaigns that are live for slot at now, shuffled.
// The input slice and its elements are left untouched.
func (s *Selector) Select(campaigns []domain.Campaign, slot domain.PlanTier, now time.Time) []domain.Campaign {
	eligible := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		reason, ok := Eligibility(c, slot, now.In(s.loc))
		if ok {
			eligible = append(eligible, c)
			continue
		}
		if s.observer != nil {
			s.observer.Excluded(domain.Exclusion{
				CampaignID: c.ID,
				Name:       c.Name,
				Reason:     reason,
				EndDate:    c.EndDate,
				At:         now,
			})
		}
	}
	s.shuffle(eligible)
	return eligible
}

// Eligibility reports whether c is live for slot at now. When it is not,
// the first failing check is returned: inactive, expired, not started,
// then wrong slot. Dates are compared as calendar days in now's location.
func Eligibility(c domain.Campaign, slot domain.PlanTier, now time.Time) (domain.ExclusionReason, bool) {
	if !c.IsActive {
		return domain.ReasonInactive, false
	}
	today := civilDay(now)
	if !c.EndDate.IsZero() && civilDay(c.EndDate) < today {
		return domain.ReasonExpired, false
	}
	if !c.StartDate.IsZero() && civilDay(c.StartDate) > today {
		return domain.ReasonNotStarted, false
	}
	if c.Plan != slot {
		return domain.ReasonWrongSlot, false
	}
	return "", true
}

// Live is Eligibility against the campaign's own plan, i.e. only the
// activation flag and the date window are checked.
func Live(c domain.Campaign, now time.Time) bool {
	_, ok := Eligibility(c, c.Plan, now)
	return ok
}

// civilDay encodes the calendar date of t as yyyymmdd.
func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// shuffle is a Fisher-Yates shuffle over the seeded source when one was
// given, or the runtime's concurrency-safe global source otherwise.
func (s *Selector) shuffle(c []domain.Campaign) {
	swap := func(i, j int) { c[i], c[j] = c[j], c[i] }
	if s.rng == nil {
		rand.Shuffle(len(c), swap)
		return
	}
	s.mu.Lock()
	s.rng.Shuffle(len(c), swap)
	s.mu.Unlock()
}
