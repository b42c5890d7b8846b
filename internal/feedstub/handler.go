package feedstub

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const paidReturnCurrency = "EUR"

type Handler struct {
	storage *Storage
	now     func() time.Time
}

func NewHandler(storage *Storage) *Handler {
	return &Handler{storage: storage, now: time.Now}
}

// Register mounts the live feed route next to the seeding routes.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/entity/:destination/live", h.HandleLive)
	r.DELETE("/stub", h.HandleResetAll)

	stub := r.Group("/stub/:destination")
	stub.POST("/seed", h.HandleSeed)
	stub.POST("/reset", h.HandleReset)
	stub.POST("/fail", h.HandleFail)
}

func (h *Handler) HandleReset(c *gin.Context) {
	destination := c.Param("destination")

	h.storage.Reset(destination)

	slog.Info("reset feed", slog.String("destination", destination))

	c.JSON(http.StatusOK, gin.H{
		"status":      "reset complete",
		"destination": destination,
	})
}

func (h *Handler) HandleResetAll(c *gin.Context) {
	h.storage.ResetAll()

	slog.Info("reset all feeds")

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleSeed(c *gin.Context) {
	destination := c.Param("destination")

	var req SeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, e := range req.Entities {
		if e.ID == "" || e.EntityType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id and entity_type are required"})
			return
		}
	}

	h.storage.Seed(destination, req.Entities)

	slog.Info("seeded feed",
		slog.String("destination", destination),
		slog.Int("entity_count", len(req.Entities)),
	)

	c.JSON(http.StatusOK, gin.H{
		"status":       "seeded",
		"destination":  destination,
		"entity_count": len(req.Entities),
	})
}

func (h *Handler) HandleFail(c *gin.Context) {
	destination := c.Param("destination")

	var req FailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == 0 {
		req.Status = http.StatusServiceUnavailable
	}
	if req.Status < 400 || req.Status > 599 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be an HTTP error code"})
		return
	}

	h.storage.FailNext(destination, req.Count, req.Status)

	slog.Info("failure injected",
		slog.String("destination", destination),
		slog.Int("count", req.Count),
		slog.Int("status", req.Status),
	)

	c.Status(http.StatusNoContent)
}

// GET /entity/:destination/live
func (h *Handler) HandleLive(c *gin.Context) {
	destination := c.Param("destination")

	if status, ok := h.storage.takeFailure(destination); ok {
		slog.Debug("serving injected failure",
			slog.String("destination", destination),
			slog.Int("status", status),
		)
		c.JSON(status, gin.H{"error": http.StatusText(status)})
		return
	}

	entities, ok := h.storage.Entities(destination)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "destination not seeded"})
		return
	}

	now := h.now().UTC()
	resp := liveResponse{
		ID:       destination,
		Name:     destination,
		LiveData: make([]liveEntity, 0, len(entities)),
	}
	for _, e := range entities {
		resp.LiveData = append(resp.LiveData, toLiveEntity(e, now))
	}

	slog.Debug("get live feed",
		slog.String("destination", destination),
		slog.Int("count", len(resp.LiveData)),
	)

	c.JSON(http.StatusOK, resp)
}

func toLiveEntity(e SeedEntity, now time.Time) liveEntity {
	status := e.Status
	if status == "" {
		status = "OPERATING"
	}

	out := liveEntity{
		ID:          e.ID,
		Name:        e.Name,
		EntityType:  e.EntityType,
		Status:      status,
		ParkID:      e.ParkID,
		ExternalID:  e.ExternalID,
		AreaName:    e.AreaName,
		LastUpdated: now.Format(time.RFC3339),
	}

	var q liveQueue
	hasQueue := false
	if e.StandbyWait != nil {
		q.Standby = &waitQueue{WaitTime: *e.StandbyWait}
		hasQueue = true
	}
	if e.SingleRiderWait != nil {
		q.SingleRider = &waitQueue{WaitTime: *e.SingleRiderWait}
		hasQueue = true
	}
	if e.PaidReturnPrice != nil {
		q.PaidReturnTime = &paidReturnQueue{
			State: "AVAILABLE",
			Price: price{
				Amount:    *e.PaidReturnPrice,
				Currency:  paidReturnCurrency,
				Formatted: "€" + decimal.New(*e.PaidReturnPrice, -2).StringFixed(2),
			},
		}
		hasQueue = true
	}
	if hasQueue {
		out.Queue = &q
	}

	for _, st := range e.Showtimes {
		start := now.Add(time.Duration(st.OffsetMinutes) * time.Minute)
		item := liveShowtime{
			Type:      "Performance Time",
			StartTime: start.Format(time.RFC3339),
		}
		if st.DurationMinutes > 0 {
			item.EndTime = start.Add(time.Duration(st.DurationMinutes) * time.Minute).Format(time.RFC3339)
		}
		out.Showtimes = append(out.Showtimes, item)
	}

	return out
}
