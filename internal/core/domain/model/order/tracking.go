package order

import (
	"fmt"
	"time"

	"dragonpath/internal/pkg/errs"
)

// Milestone is one timestamped lifecycle checkpoint of an order's tracking record.
type Milestone struct {
	status    Status
	timestamp time.Time
}

// NewMilestone creates a milestone for a valid status.
func NewMilestone(status Status, timestamp time.Time) (Milestone, error) {
	if err := status.Validate(); err != nil {
		return Milestone{}, err
	}
	return Milestone{status: status, timestamp: timestamp}, nil
}

// Status returns the lifecycle status the milestone records.
func (m Milestone) Status() Status {
	return m.status
}

// Timestamp returns when the milestone was reached.
func (m Milestone) Timestamp() time.Time {
	return m.timestamp
}

// Tracking is the append-only sequence of milestones of one order.
// Milestones are never reordered or removed; each new timestamp must not
// precede the previous one.
type Tracking struct {
	milestones []Milestone
}

// RestoreTracking rebuilds a tracking record from persistence.
// The milestones must already be in recorded order.
func RestoreTracking(milestones []Milestone) Tracking {
	return Tracking{milestones: milestones}
}

// Milestones returns a copy of the milestone sequence in recorded order.
func (t Tracking) Milestones() []Milestone {
	out := make([]Milestone, len(t.milestones))
	copy(out, t.milestones)
	return out
}

// HasMilestone reports whether a milestone with the given status was recorded.
func (t Tracking) HasMilestone(status Status) bool {
	for _, m := range t.milestones {
		if m.status == status {
			return true
		}
	}
	return false
}

// append adds a milestone, enforcing timestamp monotonicity.
func (t *Tracking) append(m Milestone) error {
	if n := len(t.milestones); n > 0 {
		last := t.milestones[n-1]
		if m.timestamp.Before(last.timestamp) {
			return errs.NewValueIsInvalidErrorWithCause(
				"milestone timestamp",
				fmt.Errorf("%s precedes previous milestone at %s",
					m.timestamp.Format(time.RFC3339), last.timestamp.Format(time.RFC3339)),
			)
		}
	}

	t.milestones = append(t.milestones, m)
	return nil
}
