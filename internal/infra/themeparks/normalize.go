package themeparks

import (
	"math"
	"strings"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

// ToDomain normalises the feed entities. Both schedule shapes collapse into
// one []domain.ShowTime and unparseable items are dropped.
func ToDomain(entities []LiveEntity) []domain.LiveEntity {
	out := make([]domain.LiveEntity, 0, len(entities))
	for _, e := range entities {
		out = append(out, toDomainEntity(e))
	}
	return out
}

func toDomainEntity(e LiveEntity) domain.LiveEntity {
	entity := domain.LiveEntity{
		ID:         e.ID,
		Name:       e.Name,
		EntityType: domain.EntityType(strings.ToUpper(strings.TrimSpace(e.EntityType))),
		Status:     normalizeStatus(e.Status),
		ParkID:     e.ParkID,
		ExternalID: e.ExternalID,
		AreaName:   e.AreaName,
		Queue:      toDomainQueue(e.Queue),
		Schedule:   toShowTimes(e),
	}
	if t, ok := parseTime(e.LastUpdated); ok {
		entity.LastUpdated = t
	}
	return entity
}

func normalizeStatus(s string) domain.Status {
	switch status := domain.Status(strings.ToUpper(strings.TrimSpace(s))); status {
	case domain.StatusOperating, domain.StatusClosed, domain.StatusDown, domain.StatusRefurbishment:
		return status
	default:
		return domain.StatusUnknown
	}
}

// toShowTimes prefers the top-level showtimes list whenever the feed sent
// one, even an empty one.
func toShowTimes(e LiveEntity) []domain.ShowTime {
	var items []ShowtimeItem
	switch {
	case e.Showtimes != nil:
		items = *e.Showtimes
	case e.Schedule != nil:
		items = e.Schedule.Schedule
	}

	var out []domain.ShowTime
	for _, item := range items {
		if !item.Valid {
			continue
		}
		out = append(out, domain.ShowTime{Start: item.Start, End: item.End})
	}
	return out
}

func toDomainQueue(q *Queue) domain.Queue {
	if q == nil {
		return domain.Queue{}
	}

	var out domain.Queue
	if q.Standby != nil {
		out.Standby = &domain.WaitQueue{WaitTime: minutes(q.Standby.WaitTime)}
	}
	if q.SingleRider != nil {
		out.SingleRider = &domain.WaitQueue{WaitTime: minutes(q.SingleRider.WaitTime)}
	}
	if q.PaidReturnTime != nil {
		out.PaidReturnTime = toPaidReturn(q.PaidReturnTime)
	}

	virtual := q.VirtualQueue
	if virtual == nil {
		virtual = q.ReturnTime
	}
	if virtual != nil {
		out.VirtualQueue = &domain.VirtualQueue{State: queueState(virtual.State)}
	}
	return out
}

func toPaidReturn(p *PaidReturnQueue) *domain.PaidReturnQueue {
	out := &domain.PaidReturnQueue{State: queueState(p.State)}
	if p.Price != nil && p.Price.Amount.Value != nil {
		out.Price = &domain.Price{
			Amount:    int64(math.Round(*p.Price.Amount.Value)),
			Currency:  p.Price.Currency,
			Formatted: p.Price.Formatted,
		}
	}
	if t, ok := parseTime(p.ReturnStart); ok {
		out.ReturnStart = &t
	}
	if t, ok := parseTime(p.ReturnEnd); ok {
		out.ReturnEnd = &t
	}
	return out
}

func queueState(s string) domain.QueueState {
	return domain.QueueState(strings.ToUpper(strings.TrimSpace(s)))
}

func minutes(n Number) *int {
	if n.Value == nil || math.IsNaN(*n.Value) || math.IsInf(*n.Value, 0) {
		return nil
	}
	v := int(math.Round(*n.Value))
	return &v
}
