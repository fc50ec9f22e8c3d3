package host

import "time"

// TimeUnits is a bit set of calendar units
type TimeUnits uint8

const (
	SecondUnit TimeUnits = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit
)

// TickHandler receives tick events
type TickHandler func(t time.Time, changed TimeUnits)

// Subscription is returned by Subscribe and ends delivery when cancelled
type Subscription interface {
	Unsubscribe()
}

// TickTimerService delivers tick events to subscribers
type TickTimerService interface {
	Subscribe(unit TimeUnits, handler TickHandler) Subscription
}

// TickService is the host's tick timer. The event loop calls Fire;
// handlers run synchronously on the caller's goroutine.
type TickService struct {
	subs   []*tickSubscription
	nextID int
}

type tickSubscription struct {
	id      int
	unit    TimeUnits
	handler TickHandler
	svc     *TickService
}

// NewTickService creates a tick service with no subscribers
func NewTickService() *TickService {
	return &TickService{}
}

// Subscribe registers handler for ticks that change unit (or any coarser unit)
func (s *TickService) Subscribe(unit TimeUnits, handler TickHandler) Subscription {
	s.nextID++
	sub := &tickSubscription{id: s.nextID, unit: unit, handler: handler, svc: s}
	s.subs = append(s.subs, sub)
	return sub
}

func (sub *tickSubscription) Unsubscribe() {
	s := sub.svc
	if s == nil {
		return
	}
	for i, other := range s.subs {
		if other.id == sub.id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	sub.svc = nil
}

// Fire delivers a tick to every subscriber whose unit is covered by changed
func (s *TickService) Fire(t time.Time, changed TimeUnits) {
	for _, sub := range append([]*tickSubscription(nil), s.subs...) {
		if covers(changed, sub.unit) {
			sub.handler(t, changed)
		}
	}
}

// Subscribers returns the number of active subscriptions
func (s *TickService) Subscribers() int { return len(s.subs) }

// covers reports whether a change set includes unit or anything coarser.
// A new hour is also a new minute.
func covers(changed, unit TimeUnits) bool {
	return changed&^(unit-1) != 0
}

// ChangedUnits returns the units that differ between prev and now
func ChangedUnits(prev, now time.Time) TimeUnits {
	var c TimeUnits
	if prev.Second() != now.Second() {
		c |= SecondUnit
	}
	if !prev.Truncate(time.Minute).Equal(now.Truncate(time.Minute)) {
		c |= MinuteUnit
	}
	if prev.Hour() != now.Hour() || !sameDay(prev, now) {
		c |= HourUnit
	}
	if !sameDay(prev, now) {
		c |= DayUnit
	}
	if prev.Month() != now.Month() || prev.Year() != now.Year() {
		c |= MonthUnit
	}
	if prev.Year() != now.Year() {
		c |= YearUnit
	}
	return c
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
