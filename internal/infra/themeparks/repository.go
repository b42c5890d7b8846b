package themeparks

import (
	"context"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mock.go -package=themeparks

type LiveFeedRepository interface {
	GetLiveData(ctx context.Context) ([]domain.LiveEntity, error)
}
