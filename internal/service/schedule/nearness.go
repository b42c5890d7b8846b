package schedule

import (
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

const (
	DefaultLiveBeforeStart = 5 * time.Minute
	DefaultLiveAfterStart  = 10 * time.Minute
)

// LiveWindow is the span around a scheduled start during which a show
// counts as running. The window is asymmetric to absorb feed latency.
type LiveWindow struct {
	BeforeStart time.Duration
	AfterStart  time.Duration
}

func DefaultLiveWindow() LiveWindow {
	return LiveWindow{
		BeforeStart: DefaultLiveBeforeStart,
		AfterStart:  DefaultLiveAfterStart,
	}
}

type Calculator struct {
	window LiveWindow
}

func NewCalculator(window LiveWindow) *Calculator {
	return &Calculator{window: window}
}

// NextOccurrence returns the soonest start strictly after now.
// Minutes are truncated toward zero. With no future start the result has
// Found=false and IsLive=false.
func (c *Calculator) NextOccurrence(times []domain.ShowTime, now time.Time) domain.Occurrence {
	var (
		best  time.Time
		found bool
	)
	for _, st := range times {
		if !st.Start.After(now) {
			continue
		}
		if !found || st.Start.Before(best) {
			best = st.Start
			found = true
		}
	}

	if !found {
		return domain.Occurrence{}
	}

	minutes := wholeMinutes(best.Sub(now))
	return domain.Occurrence{
		Start:        best,
		MinutesUntil: minutes,
		Found:        true,
		IsLive:       c.isLive(minutes),
	}
}

// NearestOccurrence works on a raw schedule that may still contain past
// starts. Starts older than the window's AfterStart grace are ignored, so
// a show that began a few minutes ago is reported with a negative
// MinutesUntil and IsLive=true.
func (c *Calculator) NearestOccurrence(times []domain.ShowTime, now time.Time) domain.Occurrence {
	earliest := now.Add(-c.window.AfterStart)

	var (
		best  time.Time
		found bool
	)
	for _, st := range times {
		if st.Start.Before(earliest) {
			continue
		}
		if !found || st.Start.Before(best) {
			best = st.Start
			found = true
		}
	}

	if !found {
		return domain.Occurrence{}
	}

	minutes := wholeMinutes(best.Sub(now))
	return domain.Occurrence{
		Start:        best,
		MinutesUntil: minutes,
		Found:        true,
		IsLive:       c.isLive(minutes) && minutes >= -wholeMinutes(c.window.AfterStart),
	}
}

// Upcoming returns the starts strictly after now, in schedule order.
func Upcoming(times []domain.ShowTime, now time.Time) []domain.ShowTime {
	var out []domain.ShowTime
	for _, st := range times {
		if st.Start.After(now) {
			out = append(out, st)
		}
	}
	return out
}

func (c *Calculator) isLive(minutes int) bool {
	return minutes <= wholeMinutes(c.window.BeforeStart)
}

func wholeMinutes(d time.Duration) int {
	return int(d / time.Minute)
}
