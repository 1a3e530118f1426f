package class

import (
	"errors"
	"time"
)

var (
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrPastStartTime    = errors.New("start time cannot be in the past")
	ErrInvalidDuration  = errors.New("duration must be positive")
)

// Money is a minor-unit amount (cents). Single-currency by design; the
// currency code rides alongside in config, not per class.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

type Capacity struct {
	seats int32
}

func NewCapacity(seats int32) (Capacity, error) {
	if seats < 0 {
		return Capacity{}, ErrNegativeCapacity
	}
	return Capacity{seats: seats}, nil
}

func (c Capacity) Seats() int32 {
	return c.seats
}

// Schedule is the class's start instant plus duration.
type Schedule struct {
	startTime time.Time
	duration  time.Duration
}

func NewSchedule(startTime time.Time, duration time.Duration, now time.Time) (Schedule, error) {
	if startTime.Before(now) {
		return Schedule{}, ErrPastStartTime
	}
	if duration <= 0 {
		return Schedule{}, ErrInvalidDuration
	}
	return Schedule{startTime: startTime, duration: duration}, nil
}

func ReconstructSchedule(startTime time.Time, duration time.Duration) Schedule {
	return Schedule{startTime: startTime, duration: duration}
}

func (s Schedule) StartTime() time.Time   { return s.startTime }
func (s Schedule) Duration() time.Duration { return s.duration }
func (s Schedule) EndTime() time.Time     { return s.startTime.Add(s.duration) }
