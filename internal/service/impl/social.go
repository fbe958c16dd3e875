package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/reelapp/internal/service"
)

func (s *AppService) ToggleFollow(ctx context.Context, targetID int64) error {
	actor, ok := s.Session.Current()
	if !ok {
		return service.ErrAnonymous
	}
	if actor.ID == targetID {
		return service.ErrSelfFollow
	}

	// Resolving the target first keeps edges to nonexistent accounts out of the
	// graph; the toggle itself would not notice them.
	if _, err := s.DB.GetAccountByID(ctx, targetID); err != nil {
		return err
	}

	following, err := s.DB.ToggleFollow(ctx, actor.ID, targetID)
	if err != nil {
		return err
	}

	// The session holds a copy of the actor; resync it with the store so the shell
	// never renders a stale edge set.
	refreshed, err := s.DB.GetAccountByID(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("refreshing session account: %w", err)
	}
	s.Session.Refresh(refreshed)

	log.Debug().Int64("actor", actor.ID).Int64("target", targetID).Bool("following", following).Msg("follow toggled")
	return nil
}

func (s *AppService) FollowerNames(ctx context.Context) ([]string, error) {
	actor, ok := s.Session.Current()
	if !ok {
		return nil, service.ErrAnonymous
	}

	accounts, err := s.DB.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	usernames := map[int64]string{}
	for _, a := range accounts {
		usernames[a.ID] = a.Username
	}

	names := make([]string, len(actor.Followers))
	for i, id := range actor.Followers {
		name, ok := usernames[id]
		if !ok {
			name = service.UnknownUsername
		}
		names[i] = name
	}
	return names, nil
}
