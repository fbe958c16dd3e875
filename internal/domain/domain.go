package domain

import "errors"

var ErrUnknownView = errors.New("unknown view")

// View identifies one of the screens the shell can present.
type View string

const (
	ViewLogin   View = "login"
	ViewHome    View = "home"
	ViewReels   View = "reels"
	ViewMyReels View = "myReels"
	ViewUsers   View = "users"
)

func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewLogin, ViewHome, ViewReels, ViewMyReels, ViewUsers:
		return View(s), nil
	}
	return "", ErrUnknownView
}

// Projection selects a derived, read-only view over the stored reels.
type Projection int

const (
	// Discover is every reel on the instance, most recent first.
	Discover Projection = iota
	// Mine is the subset of Discover uploaded by the current account.
	Mine
)
