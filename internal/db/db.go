package db

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("an account with this email already exists")
	ErrInternal      = errors.New("internal error")
)

// DB is the full surface of the state engine's store. Implementations keep every
// row in process memory; nothing survives a restart.
type DB interface {
	Accounts
	Graph
	Reels
}
