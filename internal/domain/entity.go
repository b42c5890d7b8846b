package domain

import "time"

// EntityType is the kind of point of interest reported by the live feed or the catalog.
type EntityType string

const (
	EntityTypeAttraction EntityType = "ATTRACTION"
	EntityTypeShow       EntityType = "SHOW"
	EntityTypeRestaurant EntityType = "RESTAURANT"
	EntityTypeDining     EntityType = "DINING"
	EntityTypeShop       EntityType = "SHOP"
)

func (t EntityType) String() string {
	return string(t)
}

// IsVenue reports whether the entity has no wait-time concept (dining and retail).
func (t EntityType) IsVenue() bool {
	return t == EntityTypeRestaurant || t == EntityTypeDining || t == EntityTypeShop
}

// Status is the operational state of an entity.
type Status string

const (
	StatusOperating     Status = "OPERATING"
	StatusClosed        Status = "CLOSED"
	StatusDown          Status = "DOWN"
	StatusRefurbishment Status = "REFURBISHMENT"
	StatusUnknown       Status = "UNKNOWN"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsOperating() bool {
	return s == StatusOperating
}

// QueueState is the availability state of a paid-return or virtual queue.
type QueueState string

const (
	QueueStateAvailable QueueState = "AVAILABLE"
	QueueStateSoldOut   QueueState = "SOLD_OUT"
	QueueStateTempFull  QueueState = "TEMP_FULL"
	QueueStateFinished  QueueState = "FINISHED"
)

// LiveEntity is one entry of the upstream live feed after normalisation.
type LiveEntity struct {
	ID          string
	Name        string
	EntityType  EntityType
	Status      Status
	ParkID      string
	ExternalID  string
	AreaName    string
	Queue       Queue
	Schedule    []ShowTime
	LastUpdated time.Time
}

// Queue holds the optional sub-queues of an entity. A nil field means the
// feed did not report that queue kind.
type Queue struct {
	Standby        *WaitQueue
	SingleRider    *WaitQueue
	PaidReturnTime *PaidReturnQueue
	VirtualQueue   *VirtualQueue
}

// IsEmpty reports whether no sub-queue is present.
func (q Queue) IsEmpty() bool {
	return q.Standby == nil && q.SingleRider == nil && q.PaidReturnTime == nil && q.VirtualQueue == nil
}

// StandbyWait returns the standby wait in minutes, or nil when absent.
func (q Queue) StandbyWait() *int {
	if q.Standby == nil {
		return nil
	}
	return q.Standby.WaitTime
}

// SingleRiderWait returns the single rider wait in minutes, or nil when absent.
func (q Queue) SingleRiderWait() *int {
	if q.SingleRider == nil {
		return nil
	}
	return q.SingleRider.WaitTime
}

type WaitQueue struct {
	WaitTime *int
}

type PaidReturnQueue struct {
	State       QueueState
	Price       *Price
	ReturnStart *time.Time
	ReturnEnd   *time.Time
}

func (p *PaidReturnQueue) IsAvailable() bool {
	return p != nil && p.State == QueueStateAvailable
}

func (p *PaidReturnQueue) IsSoldOut() bool {
	return p != nil && p.State == QueueStateSoldOut
}

// Price is expressed in minor currency units (cents).
type Price struct {
	Amount    int64
	Currency  string
	Formatted string
}

type VirtualQueue struct {
	State QueueState
}

func (v *VirtualQueue) IsAvailable() bool {
	return v != nil && v.State == QueueStateAvailable
}

// ShowTime is a scheduled occurrence. End is nil when the feed only
// reported a bare timestamp.
type ShowTime struct {
	Start time.Time
	End   *time.Time
}
