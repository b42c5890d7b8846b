package themeparks

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

type LiveResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	LiveData []LiveEntity `json:"liveData"`
}

type LiveEntity struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	EntityType  string          `json:"entityType"`
	Status      string          `json:"status"`
	ParkID      string          `json:"parkId"`
	ExternalID  string          `json:"externalId"`
	AreaName    string          `json:"areaName"`
	LastUpdated string          `json:"lastUpdated"`
	Queue       *Queue          `json:"queue"`
	Showtimes   *[]ShowtimeItem `json:"showtimes"`
	Schedule    *Schedule       `json:"schedule"`
}

type Schedule struct {
	Schedule []ShowtimeItem `json:"schedule"`
}

type Queue struct {
	Standby        *WaitQueue       `json:"STANDBY"`
	SingleRider    *WaitQueue       `json:"SINGLE_RIDER"`
	PaidReturnTime *PaidReturnQueue `json:"PAID_RETURN_TIME"`
	VirtualQueue   *StateQueue      `json:"VIRTUAL_QUEUE"`
	ReturnTime     *StateQueue      `json:"RETURN_TIME"`
}

type WaitQueue struct {
	WaitTime Number `json:"waitTime"`
}

type PaidReturnQueue struct {
	State       string `json:"state"`
	Price       *Price `json:"price"`
	ReturnStart string `json:"returnStart"`
	ReturnEnd   string `json:"returnEnd"`
}

type Price struct {
	Amount    Number `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type StateQueue struct {
	State string `json:"state"`
}

// Number accepts a JSON number, a numeric string or null. Anything else
// decodes to "no value" instead of failing the whole payload.
type Number struct {
	Value *float64
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.Value = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value = &f
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			n.Value = &parsed
		}
	}
	return nil
}

// ShowtimeItem is either a bare ISO-8601 string or an object with
// startTime and endTime. Valid is false when no timestamp could be parsed.
type ShowtimeItem struct {
	Start time.Time
	End   *time.Time
	Valid bool
}

type showtimeObject struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Type      string `json:"type"`
}

func (s *ShowtimeItem) UnmarshalJSON(data []byte) error {
	*s = ShowtimeItem{}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if t, ok := parseTime(raw); ok {
			s.Start = t
			s.Valid = true
		}
		return nil
	}

	var obj showtimeObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}

	start, hasStart := parseTime(obj.StartTime)
	end, hasEnd := parseTime(obj.EndTime)

	switch {
	case hasStart:
		s.Start = start
		s.Valid = true
		if hasEnd {
			s.End = &end
		}
	case hasEnd:
		// Only an end time was reported; it stands in for the start.
		s.Start = end
		s.Valid = true
	}
	return nil
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
