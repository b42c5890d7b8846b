package catalog

import (
	"context"

	"github.com/KasumiMercury/park-live-board/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mock.go -package=catalog

type Source interface {
	Load(ctx context.Context) ([]domain.StaticPoint, error)
}
