package db

import (
	"context"

	"github.com/sidereusnuntius/reelapp/internal/domain"
)

type Accounts interface {
	// CreateAccount inserts a new account and returns it with its assigned id. Ids
	// are monotonic and never reused. Fails with ErrUsernameTaken or ErrEmailTaken;
	// when both apply, the username error wins.
	CreateAccount(ctx context.Context, username, email, passwordHash string) (domain.Account, error)
	// GetAccountByID returns the account with its follower and following sets loaded.
	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)
	GetAuthDataByUsername(ctx context.Context, username string) (domain.AuthData, error)
	// ListAccounts returns every account in insertion order, with edge sets loaded.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type Graph interface {
	// ToggleFollow removes the follow edge from actor to target if it exists,
	// otherwise creates it. Both directions change together or not at all; the edge
	// row is the single source of truth for both accounts' sets. Reports whether
	// the actor follows the target afterwards.
	ToggleFollow(ctx context.Context, actorID, targetID int64) (following bool, err error)
}
