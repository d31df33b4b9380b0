// Package session binds authenticated accounts to short-lived teller
// sessions. A session exists only between a successful authentication and
// logout (or expiry); failed attempts leave no state behind and may be
// retried without bound.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okapibank/teller/internal/account"
	"github.com/okapibank/teller/internal/card"
)

// Session is the ephemeral binding between an authenticated account and
// the active interaction. It holds a non-owning account reference.
type Session struct {
	Token     string
	Account   *account.Account
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Manager authenticates identifiers against the directory and tracks live
// sessions. It is an explicitly owned value, so independent simulated
// tellers can coexist in tests.
type Manager struct {
	directory *account.Directory
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager builds a session manager over the given directory.
func NewManager(directory *account.Directory, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Manager{
		directory: directory,
		ttl:       ttl,
		sessions:  make(map[string]*Session),
	}
}

// Authenticate validates the identifier shape, resolves it in the
// directory, and checks the credential. Identifiers are either six digit
// account numbers (PIN check) or sixteen digit card numbers (card and PIN
// check). Failures are account.ErrBadFormat, account.ErrNotFound, or
// account.ErrBadCredential; none of them consume an attempt budget.
func (m *Manager) Authenticate(identifier, pin string) (*Session, error) {
	identifier = strings.TrimSpace(identifier)
	pin = strings.TrimSpace(pin)

	byCard := card.ValidCardNumber(identifier)
	if !byCard && !card.ValidAccountNumber(identifier) {
		return nil, account.ErrBadFormat
	}
	if !card.ValidPIN(pin) {
		return nil, account.ErrBadFormat
	}

	acc, err := m.directory.Lookup(identifier)
	if err != nil {
		return nil, err
	}

	cred := acc.Credential()
	if byCard {
		if !cred.VerifyCard(identifier, pin) {
			return nil, account.ErrBadCredential
		}
	} else if !cred.Verify(pin) {
		return nil, account.ErrBadCredential
	}

	now := time.Now().UTC()
	sess := &Session{
		Token:     uuid.NewString(),
		Account:   acc,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()

	return sess, nil
}

// Lookup resolves a token to its live session. Expired sessions are
// removed and reported as not found.
func (m *Manager) Lookup(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[token]
	if !ok {
		return nil, account.ErrNotFound
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		delete(m.sessions, token)
		return nil, account.ErrNotFound
	}
	return sess, nil
}

// Logout unconditionally clears the session binding. Unknown tokens are a
// no-op so logout is idempotent.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Active reports the number of live sessions, counting expired ones out.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	n := 0
	for _, sess := range m.sessions {
		if !now.After(sess.ExpiresAt) {
			n++
		}
	}
	return n
}
