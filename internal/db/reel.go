package db

import (
	"context"

	"github.com/sidereusnuntius/reelapp/internal/domain"
)

type Reels interface {
	InsertReel(ctx context.Context, reel domain.Reel) error
	GetReel(ctx context.Context, id string) (domain.Reel, error)
	// DeleteReel removes the reel row. It does not check ownership; that is the
	// service's job, which must read the reel first.
	DeleteReel(ctx context.Context, id string) error
	// ListReels returns every reel, most recent first.
	ListReels(ctx context.Context) ([]domain.Reel, error)
	ListReelsByUploader(ctx context.Context, uploaderID int64) ([]domain.Reel, error)
}
