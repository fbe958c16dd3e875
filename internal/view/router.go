// Package view selects which read-only projection of the application state the
// shell currently presents.
package view

import (
	"github.com/sidereusnuntius/reelapp/internal/domain"
	"github.com/sidereusnuntius/reelapp/internal/session"
)

type Router struct {
	session *session.Manager
	current domain.View
}

func NewRouter(s *session.Manager) *Router {
	return &Router{
		session: s,
		current: domain.ViewHome,
	}
}

// Current returns the view to present. An anonymous session always lands on the
// login view, regardless of what was selected before.
func (r *Router) Current() domain.View {
	if _, ok := r.session.Current(); !ok {
		return domain.ViewLogin
	}
	return r.current
}

// Navigate selects a view. The selection survives only as long as the session; see
// Current.
func (r *Router) Navigate(v domain.View) error {
	if _, err := domain.ParseView(string(v)); err != nil {
		return err
	}
	r.current = v
	return nil
}

// Reset returns the router to the home view, as after a fresh login.
func (r *Router) Reset() {
	r.current = domain.ViewHome
}
