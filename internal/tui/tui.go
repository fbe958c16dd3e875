// Package tui is the terminal shell around the state engine. It is a pure
// consumer: every mutation goes through the service, every frame is rendered from
// a fresh state snapshot.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sidereusnuntius/reelapp/internal/config"
	"github.com/sidereusnuntius/reelapp/internal/service"
	"github.com/sidereusnuntius/reelapp/internal/view"
)

type Shell struct {
	Config  config.Configuration
	service service.Service
	router  *view.Router
}

func New(cfg config.Configuration, svc service.Service, router *view.Router) *Shell {
	return &Shell{
		Config:  cfg,
		service: svc,
		router:  router,
	}
}

// Run drives the shell until the user quits. An anonymous session always lands on
// the authentication screen; a signed-in one gets the app shell until logout or
// quit.
func (s *Shell) Run(ctx context.Context) error {
	dark := s.Config.Theme == config.ThemeDark

	for {
		if _, ok := s.service.CurrentAccount(); !ok {
			quit, err := s.authScreen(ctx)
			if err != nil || quit {
				return err
			}
			s.router.Reset()
			continue
		}

		m, err := newShellModel(ctx, s, dark)
		if err != nil {
			return err
		}

		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		sm, ok := final.(shellModel)
		if !ok {
			return errors.New("unexpected model type from shell program")
		}
		dark = sm.dark
		if sm.quitting {
			return nil
		}
		// Logged out; back to the authentication screen.
	}
}
