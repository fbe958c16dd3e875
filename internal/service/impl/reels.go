package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/reelapp/internal/domain"
	"github.com/sidereusnuntius/reelapp/internal/service"
)

func (s *AppService) UploadReel(ctx context.Context, content []byte) (domain.Reel, error) {
	uploader, ok := s.Session.Current()
	if !ok {
		// The shell never offers the upload control to an anonymous session; if the
		// call arrives anyway it must be ignored, not crash the engine.
		log.Debug().Msg("ignoring upload from anonymous session")
		return domain.Reel{}, nil
	}

	handle, err := s.Media.Acquire(content)
	if err != nil {
		return domain.Reel{}, err
	}

	reel := domain.Reel{
		// Ids are random; uploading the same clip twice in the same instant still
		// yields two distinct reels.
		ID:               uuid.NewString(),
		MediaHandle:      handle,
		UploaderID:       uploader.ID,
		UploaderUsername: uploader.Username,
	}

	if err = s.DB.InsertReel(ctx, reel); err != nil {
		// The reel was never stored, so the handle must not outlive this call.
		if relErr := s.Media.Release(handle); relErr != nil {
			log.Error().Err(relErr).Str("handle", handle).Msg("failed to release handle after insert failure")
		}
		return domain.Reel{}, err
	}

	log.Debug().Str("reel", reel.ID).Int64("uploader", uploader.ID).Msg("reel uploaded")
	return reel, nil
}

func (s *AppService) DeleteReel(ctx context.Context, reelID string) error {
	actor, ok := s.Session.Current()
	if !ok {
		return service.ErrAnonymous
	}

	reel, err := s.DB.GetReel(ctx, reelID)
	if err != nil {
		return err
	}
	if reel.UploaderID != actor.ID {
		return service.ErrNotOwner
	}

	if err = s.DB.DeleteReel(ctx, reelID); err != nil {
		// Removal failed, so the reel still owns its handle; do not release it.
		return err
	}

	// The row is gone and nothing else references the handle, so this is the one
	// and only release.
	if err = s.Media.Release(reel.MediaHandle); err != nil {
		log.Error().Err(err).Str("handle", reel.MediaHandle).Msg("media handle release failed")
	}

	log.Debug().Str("reel", reelID).Msg("reel deleted")
	return nil
}

func (s *AppService) Reels(ctx context.Context, p domain.Projection) ([]domain.Reel, error) {
	switch p {
	case domain.Mine:
		actor, ok := s.Session.Current()
		if !ok {
			return nil, service.ErrAnonymous
		}
		return s.DB.ListReelsByUploader(ctx, actor.ID)
	default:
		return s.DB.ListReels(ctx)
	}
}
