package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

const (
	MinPasswordLen = 6
	MaxPasswordLen = 72
	MinUsernameLen = 3
	MaxUsernameLen = 64
)

// SignUpForm validates every field of the signup form at once, so the caller can
// present all problems instead of just the first one.
func SignUpForm(username, email, password, confirm string) error {
	var errs = []error{}

	errs = append(errs, Username(username))

	errs = append(errs, Email(email))

	errs = append(errs, Password(password))

	if password != confirm {
		errs = append(errs, errors.New("passwords do not match"))
	}

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l < MinPasswordLen:
		return fmt.Errorf("password too short; min %d characters", MinPasswordLen)
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Email(email string) error {
	if len(email) == 0 {
		return errors.New("empty email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return err
	}

	// ParseAddress accepts bare hosts like user@localhost; require a dotted domain.
	at := strings.LastIndex(addr.Address, "@")
	if !strings.Contains(addr.Address[at+1:], ".") {
		return errors.New("email domain must contain a dot")
	}
	return nil
}

func Username(username string) error {
	switch l := len(strings.TrimSpace(username)); {
	case l == 0:
		return errors.New("empty username")
	case l < MinUsernameLen:
		return fmt.Errorf("username too short; min %d characters", MinUsernameLen)
	case l > MaxUsernameLen:
		return fmt.Errorf("username too long; max %d characters", MaxUsernameLen)
	}
	return nil
}
