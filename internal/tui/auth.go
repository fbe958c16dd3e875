package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/sidereusnuntius/reelapp/internal/validate"
)

const (
	choiceLogin  = "login"
	choiceSignup = "signup"
	choiceQuit   = "quit"
)

// authScreen runs the login and signup forms until a session exists or the user
// quits. It reports quit = true when the user chose to leave.
func (s *Shell) authScreen(ctx context.Context) (quit bool, err error) {
	for {
		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Welcome to " + s.Config.Name).
					Options(
						huh.NewOption("Sign in to continue", choiceLogin),
						huh.NewOption("Create an account to get started", choiceSignup),
						huh.NewOption("Quit", choiceQuit),
					).
					Value(&choice),
			),
		)
		if err = form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return true, nil
			}
			return false, err
		}

		switch choice {
		case choiceQuit:
			return true, nil
		case choiceLogin:
			if err = s.loginForm(ctx); err != nil {
				return false, err
			}
		case choiceSignup:
			if err = s.signupForm(ctx); err != nil {
				return false, err
			}
		}

		if _, ok := s.service.CurrentAccount(); ok {
			return false, nil
		}
	}
}

func (s *Shell) loginForm(ctx context.Context) error {
	var username, password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(&username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	_, authenticated, err := s.service.AuthenticateUser(ctx, username, password)
	if err != nil {
		return err
	}
	if !authenticated {
		return message("Invalid username or password.")
	}
	return nil
}

func (s *Shell) signupForm(ctx context.Context) error {
	var username, email, password, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Validate(validate.Username).Value(&username),
			huh.NewInput().Title("Email Address").Validate(validate.Email).Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Validate(validate.Password).Value(&password),
			huh.NewInput().Title("Confirm Password").EchoMode(huh.EchoModePassword).Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	if _, err := s.service.Register(ctx, username, email, password, confirm); err != nil {
		return message(fmt.Sprintf("Signup failed: %s.", err))
	}
	return nil
}

// message shows a note to the user and swallows it; the caller loops back to the
// menu afterwards.
func message(text string) error {
	var ack bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(text).Affirmative("OK").Negative("").Value(&ack),
		),
	)
	if err := form.Run(); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return err
	}
	return nil
}
