package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/reelapp/internal/db"
	"github.com/sidereusnuntius/reelapp/internal/domain"
	"github.com/sidereusnuntius/reelapp/internal/service"
	"github.com/sidereusnuntius/reelapp/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

func (s *AppService) Register(ctx context.Context, username, email, password, confirm string) (domain.Account, error) {
	// Usernames and emails are exact: no case folding, only whitespace trimming.
	// "CaseCheck_User" and "casecheck_user" are two different accounts.
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	err := validate.SignUpForm(username, email, password, confirm)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.DB.CreateAccount(ctx, username, email, string(hash))
	if err != nil {
		// Nothing was stored, so the session stays as it was.
		return domain.Account{}, err
	}

	// The account is in; finish the signup by signing it in.
	s.Session.Authenticate(account)
	log.Debug().Int64("id", account.ID).Str("username", username).Msg("account registered")
	return account, nil
}

// AuthenticateUser confirms the user's identity and, if their credentials are
// correct, signs them in and returns the account backing the session.
func (s *AppService) AuthenticateUser(ctx context.Context, username, password string) (a domain.Account, authenticated bool, err error) {
	username = strings.TrimSpace(username)

	if validate.Username(username) != nil || validate.Password(password) != nil {
		return
	}

	u, err := s.DB.GetAuthDataByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			err = nil
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return
	}

	a, err = s.DB.GetAccountByID(ctx, u.ID)
	if err != nil {
		return domain.Account{}, false, err
	}

	s.Session.Authenticate(a)
	log.Debug().Int64("id", a.ID).Msg("signed in")
	return a, true, nil
}

func (s *AppService) Logout() {
	s.Session.Clear()
	log.Debug().Msg("signed out")
}

func (s *AppService) Accounts(ctx context.Context) ([]domain.Account, error) {
	return s.DB.ListAccounts(ctx)
}

func (s *AppService) CurrentAccount() (domain.Account, bool) {
	return s.Session.Current()
}
