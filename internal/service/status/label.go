package status

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// Label is the label rule on its own. A nil result means no badge.
func (c *Classifier) Label(rec domain.MergedRecord, now time.Time) *string {
	return c.Classify(rec, now).Label
}

func (c *Classifier) label(rec domain.MergedRecord, next *domain.Occurrence) *string {
	switch rec.Status {
	case domain.StatusClosed, domain.StatusDown:
		return ptr(LabelClosed)
	case domain.StatusRefurbishment:
		return ptr(LabelRefurbishment)
	case domain.StatusOperating:
	default:
		return ptr(LabelUnknown)
	}

	switch rec.EntityType {
	case domain.EntityTypeAttraction:
		return c.attractionLabel(rec)
	case domain.EntityTypeShow:
		return c.showLabel(next)
	default:
		return nil
	}
}

func (c *Classifier) attractionLabel(rec domain.MergedRecord) *string {
	if fixed, ok := c.opts.FixedLabels[rec.Name]; ok {
		return ptr(fixed)
	}

	wait := rec.Queue.StandbyWait()
	if wait != nil && *wait < 0 {
		// negative waits carry no information for the badge
		wait = nil
	}

	if c.isReservationOnly(rec.Name) && (wait == nil || *wait == 0) {
		return ptr(LabelReservation)
	}
	if wait != nil && *wait > 0 {
		return ptr(fmt.Sprintf("%d min", *wait))
	}

	// Standby is absent or zero from here on.
	if paid := rec.Queue.PaidReturnTime; paid.IsAvailable() && paid.Price != nil {
		return ptr("PA " + formatAmount(paid.Price))
	}
	if wait != nil && *wait == 0 && c.opts.ShowZeroWait {
		return ptr("0 min")
	}
	return nil
}

func (c *Classifier) showLabel(next *domain.Occurrence) *string {
	if next == nil || !next.Found {
		return ptr(LabelNoMoreShows)
	}
	if next.IsLive {
		return ptr(LabelLive)
	}
	return ptr(next.Start.In(c.opts.Location).Format("15:04"))
}

func ptr(s string) *string {
	return &s
}
