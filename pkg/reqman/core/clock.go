package core

import "time"

// Clock abstracts time so that deferred payment completion and session
// expiry can be driven by a fake clock in tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

type RealClock struct{}

func NewRealClock() Clock { return RealClock{} }

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (RealClock) Sleep(d time.Duration)                  { time.Sleep(d) }

// DisplayDate renders a timestamp the way request and workflow records
// carry their submitted/modified dates.
func DisplayDate(t time.Time) string {
	return t.Format("2006-01-02")
}
