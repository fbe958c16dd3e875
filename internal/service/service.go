package service

import (
	"context"
	"errors"

	"github.com/sidereusnuntius/reelapp/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid")
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrNotOwner     = errors.New("only the uploader can delete a reel")
	ErrAnonymous    = errors.New("not signed in")
)

// UnknownUsername is reported for follower ids that cannot be resolved to an
// account. Under the graph invariant this should never happen.
const UnknownUsername = "Unknown"

// Service is the command and query surface of the state engine. Every command is
// all-or-nothing: it either fully applies or leaves the state untouched and
// returns the reason as an error value.
type Service interface {
	// Register validates the signup form, creates the account and signs it in, as
	// one step: a failed insert leaves the session untouched, and a stored account
	// is always followed by the session transition.
	Register(ctx context.Context, username, email, password, confirm string) (domain.Account, error)
	// AuthenticateUser verifies the credentials and, if they are correct, signs the
	// account in. Wrong credentials give authenticated == false with a nil error; a
	// non nil error indicates an internal, unexpected failure.
	AuthenticateUser(ctx context.Context, username, password string) (a domain.Account, authenticated bool, err error)
	// Logout returns the session to anonymous. Always succeeds.
	Logout()

	// ToggleFollow follows the target if the current account does not follow it
	// yet, and unfollows it otherwise. Both accounts' edge sets change together,
	// and the session's account copy is refreshed to the new state.
	ToggleFollow(ctx context.Context, targetID int64) error
	// FollowerNames resolves the current account's follower ids to usernames, in
	// set order, substituting UnknownUsername for ids that do not resolve.
	FollowerNames(ctx context.Context) ([]string, error)

	// UploadReel stores the content and records a reel owned by the current
	// account. With an anonymous session the call is silently ignored; the shell
	// is expected to prevent it, and the engine must tolerate it.
	UploadReel(ctx context.Context, content []byte) (domain.Reel, error)
	// DeleteReel removes a reel and releases its media handle, exactly once and
	// only after the removal succeeded. Fails with db.ErrNotFound or ErrNotOwner.
	DeleteReel(ctx context.Context, reelID string) error

	Reels(ctx context.Context, p domain.Projection) ([]domain.Reel, error)
	Accounts(ctx context.Context) ([]domain.Account, error)
	CurrentAccount() (domain.Account, bool)
}
