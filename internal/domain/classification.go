package domain

import "time"

// Tier is the display bucket driving colour and severity. It is distinct
// from the text label shown to the user.
type Tier string

const (
	TierDefault Tier = "time-default"
	TierGold    Tier = "time-gold"
	TierGreen   Tier = "time-green"
	TierOrange  Tier = "time-orange"
	TierRed     Tier = "time-red"

	TierOpen          Tier = "status-opened"
	TierOpenNoData    Tier = "status-open-no-data"
	TierReservation   Tier = "status-reservation"
	TierClosed        Tier = "status-closed"
	TierRefurbishment Tier = "status-refurbishment"
	TierUnknown       Tier = "status-unknown"

	TierShowLive   Tier = "show-live"
	TierShowGold   Tier = "show-gold"
	TierShowRed    Tier = "show-red"
	TierShowOrange Tier = "show-orange"
	TierShowGreen  Tier = "show-green"
	TierShowFar    Tier = "show-far"
)

var waitSeverity = map[Tier]int{
	TierDefault: 0,
	TierGold:    1,
	TierGreen:   2,
	TierOrange:  3,
	TierRed:     4,
}

var urgencySeverity = map[Tier]int{
	TierShowFar:    0,
	TierShowGreen:  1,
	TierShowOrange: 2,
	TierShowRed:    3,
	TierShowGold:   4,
	TierShowLive:   5,
}

func (t Tier) String() string {
	return string(t)
}

// WaitSeverity orders wait-time tiers from shortest to longest wait.
// Tiers outside the wait scale return -1.
func (t Tier) WaitSeverity() int {
	if s, ok := waitSeverity[t]; ok {
		return s
	}
	return -1
}

// Urgency orders show tiers by how soon the guest has to act.
// Tiers outside the show scale return -1.
func (t Tier) Urgency() int {
	if s, ok := urgencySeverity[t]; ok {
		return s
	}
	return -1
}

// Occurrence is the nearest scheduled start relative to a reference time.
// Found=false stands for "no next occurrence" (an infinite wait).
type Occurrence struct {
	Start        time.Time `json:"start,omitempty"`
	MinutesUntil int       `json:"minutes_until"`
	Found        bool      `json:"found"`
	IsLive       bool      `json:"is_live"`
}

// Infinite reports whether there is no upcoming occurrence.
func (o Occurrence) Infinite() bool {
	return !o.Found
}

type DetailKind string

const (
	DetailStandby      DetailKind = "standby"
	DetailPaidReturn   DetailKind = "paid_return"
	DetailSingleRider  DetailKind = "single_rider"
	DetailVirtualQueue DetailKind = "virtual_queue"
	DetailCountdown    DetailKind = "countdown"
	DetailNoData       DetailKind = "no_data"
)

type DetailLine struct {
	Kind DetailKind `json:"kind"`
	Text string     `json:"text"`
}

type PaidReturnDetail struct {
	SoldOut     bool   `json:"sold_out"`
	Price       string `json:"price,omitempty"`
	ReturnStart string `json:"return_start,omitempty"`
	ReturnEnd   string `json:"return_end,omitempty"`
}

type UpcomingShow struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"`
	Tier  Tier      `json:"tier"`
}

// Detail is the long-form payload of a classification.
type Detail struct {
	Lines      []DetailLine      `json:"lines"`
	PaidReturn *PaidReturnDetail `json:"paid_return,omitempty"`
	Upcoming   []UpcomingShow    `json:"upcoming,omitempty"`
}

// ClassificationResult is the output of the status classifier. Tier and
// Label come from separate rules; a nil Label means "no badge".
type ClassificationResult struct {
	Tier     Tier        `json:"tier"`
	Label    *string     `json:"label"`
	Detail   Detail      `json:"detail"`
	NextShow *Occurrence `json:"next_show,omitempty"`
}
