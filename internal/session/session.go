// Package session tracks the single account, if any, that is currently signed in.
// There is exactly one session per process and it does not survive restarts.
package session

import "github.com/sidereusnuntius/reelapp/internal/domain"

// Manager holds the session state. It is written from the shell's event loop only,
// so no locking is needed.
type Manager struct {
	account *domain.Account
}

func New() *Manager {
	return &Manager{}
}

// Current returns the signed-in account and true, or the zero account and false
// when the session is anonymous.
func (m *Manager) Current() (domain.Account, bool) {
	if m.account == nil {
		return domain.Account{}, false
	}
	return *m.account, true
}

// Authenticate transitions the session to the given account.
func (m *Manager) Authenticate(a domain.Account) {
	m.account = &a
}

// Refresh replaces the stored account with a newer copy, keeping the session in
// sync after a follow toggle mutates the account's edge sets. It is ignored when
// the session is anonymous or belongs to a different account.
func (m *Manager) Refresh(a domain.Account) {
	if m.account == nil || m.account.ID != a.ID {
		return
	}
	m.account = &a
}

// Clear transitions the session back to anonymous. Safe to call at any time.
func (m *Manager) Clear() {
	m.account = nil
}
