package status

import (
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/service/schedule"
	"github.com/KasumiMercury/park-live-board/internal/service/threshold"
)

type Classifier struct {
	thresholds  threshold.Table
	calc        *schedule.Calculator
	opts        Options
	reservation map[string]struct{}
}

func NewClassifier(thresholds threshold.Table, opts Options) *Classifier {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if len(opts.Scheme.Breakpoints) == 0 {
		opts.Scheme = schedule.ExtendedScheme()
	}

	reservation := make(map[string]struct{}, len(opts.ReservationOnly))
	for _, name := range opts.ReservationOnly {
		reservation[name] = struct{}{}
	}

	return &Classifier{
		thresholds:  thresholds,
		calc:        schedule.NewCalculator(opts.LiveWindow),
		opts:        opts,
		reservation: reservation,
	}
}

// Classify derives tier, label and detail for one record. now is only
// consulted for shows.
func (c *Classifier) Classify(rec domain.MergedRecord, now time.Time) domain.ClassificationResult {
	var next *domain.Occurrence
	if rec.EntityType == domain.EntityTypeShow {
		occ := c.calc.NextOccurrence(rec.Schedule, now)
		next = &occ
	}

	return domain.ClassificationResult{
		Tier:     c.tier(rec, next),
		Label:    c.label(rec, next),
		Detail:   c.detail(rec, next, now),
		NextShow: next,
	}
}

// Tier is the tier rule on its own.
func (c *Classifier) Tier(rec domain.MergedRecord, now time.Time) domain.Tier {
	return c.Classify(rec, now).Tier
}

func (c *Classifier) tier(rec domain.MergedRecord, next *domain.Occurrence) domain.Tier {
	switch rec.Status {
	case domain.StatusClosed, domain.StatusDown:
		return domain.TierClosed
	case domain.StatusRefurbishment:
		return domain.TierRefurbishment
	case domain.StatusOperating:
	default:
		return domain.TierUnknown
	}

	switch {
	case rec.EntityType == domain.EntityTypeAttraction:
		return c.attractionTier(rec)
	case rec.EntityType == domain.EntityTypeShow:
		if next == nil || !next.Found {
			// Ended for the day shares the closed bucket.
			return domain.TierClosed
		}
		return c.opts.Scheme.Tier(*next)
	default:
		return domain.TierOpen
	}
}

func (c *Classifier) attractionTier(rec domain.MergedRecord) domain.Tier {
	wait := rec.Queue.StandbyWait()

	if c.isReservationOnly(rec.Name) && (wait == nil || *wait == 0) {
		return domain.TierReservation
	}
	if _, ok := c.opts.FixedLabels[rec.Name]; ok {
		return domain.TierOpen
	}
	if wait == nil {
		return domain.TierOpenNoData
	}
	return c.thresholds.ClassifyWait(rec.Name, wait)
}

func (c *Classifier) isReservationOnly(name string) bool {
	_, ok := c.reservation[name]
	return ok
}
