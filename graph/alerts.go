package graph

import "time"

type (
	// Alerts is a small queue of transient messages for the view to pop up:
	// expression errors, limit notifications and the like. The view calls
	// Update with the elapsed time every frame it shows alerts; FadeLevel
	// animates 0..1 on appearance and back before removal.
	Alerts struct {
		list []Alert
	}

	Alert struct {
		Message   string
		Priority  AlertPriority
		FadeLevel float64

		remaining time.Duration
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	alertDuration = 3 * time.Second
	alertFadeTime = 150 * time.Millisecond
)

// Add queues a message. A message identical to one already queued just
// restarts that alert's timer instead of stacking a duplicate.
func (a *Alerts) Add(message string, priority AlertPriority) {
	for i := range a.list {
		if a.list[i].Message == message && a.list[i].Priority == priority {
			a.list[i].remaining = alertDuration
			return
		}
	}
	a.list = append(a.list, Alert{
		Message:   message,
		Priority:  priority,
		remaining: alertDuration,
	})
}

// Update advances timers and fade animations by d and drops fully faded-out
// alerts. It returns true while anything is still animating or visible, so
// the view knows to keep invalidating frames.
func (a *Alerts) Update(d time.Duration) bool {
	delta := float64(d) / float64(alertFadeTime)
	n := 0
	for i := range a.list {
		al := a.list[i]
		al.remaining -= d
		if al.remaining > 0 {
			al.FadeLevel = min(al.FadeLevel+delta, 1)
		} else {
			al.FadeLevel -= delta
		}
		if al.FadeLevel > 0 {
			a.list[n] = al
			n++
		}
	}
	a.list = a.list[:n]
	return len(a.list) > 0
}

// Iterate is a range-over-func iterator over the visible alerts.
func (a *Alerts) Iterate(yield func(Alert) bool) {
	for _, al := range a.list {
		if !yield(al) {
			return
		}
	}
}
