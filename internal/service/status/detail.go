package status

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/service/schedule"
)

func (c *Classifier) detail(rec domain.MergedRecord, next *domain.Occurrence, now time.Time) domain.Detail {
	var d domain.Detail

	if rec.EntityType == domain.EntityTypeShow {
		c.appendShowDetail(&d, rec, next, now)
	}
	c.appendQueueDetail(&d, rec.Queue)

	if len(d.Lines) == 0 {
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailNoData, Text: "No data"})
	}
	return d
}

// appendQueueDetail adds one line per reported sub-queue in fixed order:
// standby, paid return, single rider, virtual queue.
func (c *Classifier) appendQueueDetail(d *domain.Detail, q domain.Queue) {
	if wait := q.StandbyWait(); wait != nil && *wait >= 0 {
		d.Lines = append(d.Lines, domain.DetailLine{
			Kind: domain.DetailStandby,
			Text: fmt.Sprintf("Standby: %d min", *wait),
		})
	}

	switch paid := q.PaidReturnTime; {
	case paid.IsAvailable():
		pr := &domain.PaidReturnDetail{
			Price:       displayPrice(paid.Price),
			ReturnStart: clock(paid.ReturnStart),
			ReturnEnd:   clock(paid.ReturnEnd),
		}
		text := "Premier Access"
		if pr.Price != "" {
			text += ": " + pr.Price
		}
		if pr.ReturnStart != "" {
			text += " (" + pr.ReturnStart + ")"
		}
		d.PaidReturn = pr
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailPaidReturn, Text: text})
	case paid.IsSoldOut():
		d.PaidReturn = &domain.PaidReturnDetail{SoldOut: true}
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailPaidReturn, Text: "Premier Access: Sold out"})
	}

	// Zero means the single rider line is closed, not a walk-on.
	if wait := q.SingleRiderWait(); wait != nil && *wait >= 0 {
		text := fmt.Sprintf("Single Rider: %d min", *wait)
		if *wait == 0 {
			text = "Single Rider: Closed"
		}
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailSingleRider, Text: text})
	}

	if q.VirtualQueue.IsAvailable() {
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailVirtualQueue, Text: "Virtual Queue: Available"})
	}
}

func (c *Classifier) appendShowDetail(d *domain.Detail, rec domain.MergedRecord, next *domain.Occurrence, now time.Time) {
	if rec.Status != domain.StatusOperating {
		return
	}

	// A show that started moments ago is still worth walking to.
	if nearest := c.calc.NearestOccurrence(rec.Schedule, now); nearest.IsLive && nearest.MinutesUntil < 0 {
		d.Lines = append(d.Lines, domain.DetailLine{
			Kind: domain.DetailCountdown,
			Text: fmt.Sprintf("Now playing, started %s ago", schedule.FormatMinutes(-nearest.MinutesUntil)),
		})
	}

	switch {
	case next == nil || !next.Found:
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailCountdown, Text: LabelNoMoreShows})
		return
	case next.IsLive:
		d.Lines = append(d.Lines, domain.DetailLine{Kind: domain.DetailCountdown, Text: "Starting now"})
	default:
		d.Lines = append(d.Lines, domain.DetailLine{
			Kind: domain.DetailCountdown,
			Text: "Next show in " + schedule.FormatMinutes(next.MinutesUntil),
		})
	}

	for _, st := range schedule.Upcoming(rec.Schedule, now) {
		d.Upcoming = append(d.Upcoming, domain.UpcomingShow{
			Start: st.Start,
			Label: st.Start.In(c.opts.Location).Format("15:04"),
			Tier:  c.opts.Scheme.TierForMinutes(int(st.Start.Sub(now) / time.Minute)),
		})
	}
}

// clock renders a return time in the offset it was reported with.
func clock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
