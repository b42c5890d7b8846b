package feedstub

// SeedRequest replaces the live feed of one destination.
type SeedRequest struct {
	Entities []SeedEntity `json:"entities"`
}

// SeedEntity describes one live entry. Show times are given as minute
// offsets from the moment the feed is read, so a seeded destination stays
// realistic however long the stub runs.
type SeedEntity struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	EntityType      string         `json:"entity_type"`
	Status          string         `json:"status"`
	ParkID          string         `json:"park_id"`
	ExternalID      string         `json:"external_id"`
	AreaName        string         `json:"area_name"`
	StandbyWait     *int           `json:"standby_wait,omitempty"`
	SingleRiderWait *int           `json:"single_rider_wait,omitempty"`
	PaidReturnPrice *int64         `json:"paid_return_price,omitempty"`
	Showtimes       []SeedShowtime `json:"showtimes,omitempty"`
}

type SeedShowtime struct {
	OffsetMinutes   int `json:"offset_minutes"`
	DurationMinutes int `json:"duration_minutes"`
}

// FailRequest makes the next Count live reads answer with Status.
type FailRequest struct {
	Count  int `json:"count"`
	Status int `json:"status"`
}

type liveResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	LiveData []liveEntity `json:"liveData"`
}

type liveEntity struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	EntityType  string         `json:"entityType"`
	Status      string         `json:"status"`
	ParkID      string         `json:"parkId"`
	ExternalID  string         `json:"externalId,omitempty"`
	AreaName    string         `json:"areaName,omitempty"`
	LastUpdated string         `json:"lastUpdated"`
	Queue       *liveQueue     `json:"queue,omitempty"`
	Showtimes   []liveShowtime `json:"showtimes,omitempty"`
}

type liveQueue struct {
	Standby        *waitQueue       `json:"STANDBY,omitempty"`
	SingleRider    *waitQueue       `json:"SINGLE_RIDER,omitempty"`
	PaidReturnTime *paidReturnQueue `json:"PAID_RETURN_TIME,omitempty"`
}

type waitQueue struct {
	WaitTime int `json:"waitTime"`
}

type paidReturnQueue struct {
	State string `json:"state"`
	Price price  `json:"price"`
}

type price struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type liveShowtime struct {
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
}
