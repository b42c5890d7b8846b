package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/KasumiMercury/park-live-board/internal/domain"
	"github.com/KasumiMercury/park-live-board/internal/observability/metrics"
	"github.com/KasumiMercury/park-live-board/internal/presentation"
)

const (
	errSnapshotNotReady = "snapshot not ready"
	errUnknownView      = "unknown view"

	streamWriteTimeout = 10 * time.Second
	streamPingInterval = 30 * time.Second
)

// SnapshotStore is the read side of the refreshed snapshots.
type SnapshotStore interface {
	Get(view domain.View) (*domain.Snapshot, bool)
	Subscribe(view domain.View) (<-chan *domain.Snapshot, func())
}

type BoardHandler struct {
	store        SnapshotStore
	presenter    *presentation.Presenter
	snapshotRepo domain.SnapshotRepository
	httpMetrics  *metrics.HTTPMetrics
	upgrader     websocket.Upgrader
	// now is the reference time for rendering show boards.
	now func() time.Time

	closeOnce sync.Once
	closing   chan struct{}
}

func NewBoardHandler(
	store SnapshotStore,
	presenter *presentation.Presenter,
	snapshotRepo domain.SnapshotRepository,
	httpMetrics *metrics.HTTPMetrics,
) *BoardHandler {
	return &BoardHandler{
		store:        store,
		presenter:    presenter,
		snapshotRepo: snapshotRepo,
		httpMetrics:  httpMetrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		now:     time.Now,
		closing: make(chan struct{}),
	}
}

// Register mounts the board routes on r.
func (h *BoardHandler) Register(r gin.IRouter) {
	r.GET("/map", h.viewHandler(domain.ViewMap))
	r.GET("/attractions", h.viewHandler(domain.ViewAttractions))
	r.GET("/shows", h.viewHandler(domain.ViewShows))
	r.GET("/records/:view", h.HandleRecords)
	r.GET("/stream/:view", h.HandleStream)
}

// Close ends every open stream. Hijacked connections are not tracked by
// http.Server.Shutdown.
func (h *BoardHandler) Close() {
	h.closeOnce.Do(func() {
		close(h.closing)
	})
}

func (h *BoardHandler) viewHandler(view domain.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := h.store.Get(view)
		if !ok {
			respondError(c, http.StatusServiceUnavailable, errSnapshotNotReady)
			return
		}

		c.JSON(http.StatusOK, h.presenter.Render(snap, h.now()))
	}
}

type recordsResponse struct {
	View        domain.View               `json:"view"`
	SnapshotID  uuid.UUID                 `json:"snapshot_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	CycleCount  *int                      `json:"cycle_count,omitempty"`
	Records     []domain.ClassifiedRecord `json:"records"`
}

// HandleRecords serves the raw classified records of a view.
func (h *BoardHandler) HandleRecords(c *gin.Context) {
	ctx := c.Request.Context()

	view, ok := parseView(c)
	if !ok {
		return
	}

	snap, ok := h.store.Get(view)
	if !ok {
		respondError(c, http.StatusServiceUnavailable, errSnapshotNotReady)
		return
	}

	resp := recordsResponse{
		View:        snap.View,
		SnapshotID:  snap.ID,
		GeneratedAt: snap.GeneratedAt,
		Records:     snap.Records,
	}

	if h.snapshotRepo != nil {
		count, err := h.snapshotRepo.CycleCount(ctx, view)
		if err != nil {
			slog.WarnContext(ctx, "failed to read cycle count",
				slog.String("view", view.String()),
				slog.String("error", err.Error()),
			)
		} else {
			resp.CycleCount = &count
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleStream upgrades to a WebSocket and pushes the rendered view on
// connect and after every snapshot swap.
func (h *BoardHandler) HandleStream(c *gin.Context) {
	ctx := c.Request.Context()

	view, ok := parseView(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "websocket upgrade failed",
			slog.String("view", view.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	defer conn.Close()

	updates, unsubscribe := h.store.Subscribe(view)
	defer unsubscribe()

	if h.httpMetrics != nil {
		h.httpMetrics.StreamConnected(ctx, view.String())
		defer h.httpMetrics.StreamDisconnected(ctx, view.String())
	}

	slog.InfoContext(ctx, "stream opened",
		slog.String("view", view.String()),
	)

	// the read loop only detects the peer going away
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var lastSent uuid.UUID
	send := func(snap *domain.Snapshot) error {
		if snap.ID == lastSent {
			return nil
		}
		if err := conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout)); err != nil {
			return err
		}
		if err := conn.WriteJSON(h.presenter.Render(snap, h.now())); err != nil {
			return err
		}
		lastSent = snap.ID
		return nil
	}

	if snap, ok := h.store.Get(view); ok {
		if err := send(snap); err != nil {
			logStreamClosed(c, view, err)
			return
		}
	}

	ping := time.NewTicker(streamPingInterval)
	defer ping.Stop()

	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return
			}
			if err := send(snap); err != nil {
				logStreamClosed(c, view, err)
				return
			}
		case <-ping.C:
			deadline := time.Now().Add(streamWriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				logStreamClosed(c, view, err)
				return
			}
		case <-readDone:
			logStreamClosed(c, view, nil)
			return
		case <-h.closing:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second),
			)
			return
		case <-ctx.Done():
			return
		}
	}
}

func logStreamClosed(c *gin.Context, view domain.View, err error) {
	attrs := []any{slog.String("view", view.String())}
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !errors.Is(err, websocket.ErrCloseSent) {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.InfoContext(c.Request.Context(), "stream closed", attrs...)
}

func parseView(c *gin.Context) (domain.View, bool) {
	view := domain.View(c.Param("view"))
	if !view.IsValid() {
		respondError(c, http.StatusNotFound, errUnknownView)
		return "", false
	}
	return view, true
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
