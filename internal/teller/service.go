// Package teller exposes the operations available at the teller window:
// authenticate, deposit, withdraw, balance inquiry, transaction history,
// and logout. All state lives in the directory and session manager it is
// constructed with.
package teller

import (
	"context"

	"github.com/okapibank/teller/internal/account"
	"github.com/okapibank/teller/internal/money"
	"github.com/okapibank/teller/internal/receipt"
	"github.com/okapibank/teller/internal/session"
)

// Service orchestrates sessions, accounts, and receipts.
type Service struct {
	sessions *session.Manager
	printer  receipt.Printer
}

// NewService builds a teller service. The printer may be nil, in which
// case no receipts are emitted.
func NewService(sessions *session.Manager, printer receipt.Printer) *Service {
	return &Service{sessions: sessions, printer: printer}
}

// Authenticate opens a session for the identifier/PIN pair.
func (s *Service) Authenticate(_ context.Context, identifier, pin string) (*session.Session, error) {
	return s.sessions.Authenticate(identifier, pin)
}

// Deposit credits the session's account and emits a receipt.
func (s *Service) Deposit(ctx context.Context, token string, amount money.Amount) (account.Entry, error) {
	sess, err := s.sessions.Lookup(token)
	if err != nil {
		return account.Entry{}, err
	}
	entry, err := sess.Account.Deposit(amount)
	if err != nil {
		return account.Entry{}, err
	}
	s.print(ctx, sess.Account, entry)
	return entry, nil
}

// Withdraw debits the session's account and emits a receipt.
func (s *Service) Withdraw(ctx context.Context, token string, amount money.Amount) (account.Entry, error) {
	sess, err := s.sessions.Lookup(token)
	if err != nil {
		return account.Entry{}, err
	}
	entry, err := sess.Account.Withdraw(amount)
	if err != nil {
		return account.Entry{}, err
	}
	s.print(ctx, sess.Account, entry)
	return entry, nil
}

// Balance returns the session's current balance.
func (s *Service) Balance(_ context.Context, token string) (money.Amount, error) {
	sess, err := s.sessions.Lookup(token)
	if err != nil {
		return 0, err
	}
	return sess.Account.Balance(), nil
}

// History returns up to max ledger entries, most recent first.
func (s *Service) History(_ context.Context, token string, max int) ([]account.Entry, error) {
	sess, err := s.sessions.Lookup(token)
	if err != nil {
		return nil, err
	}
	return sess.Account.History(max), nil
}

// MaskedIdentifier returns the display-safe identifier for the session's
// account.
func (s *Service) MaskedIdentifier(_ context.Context, token string) (string, error) {
	sess, err := s.sessions.Lookup(token)
	if err != nil {
		return "", err
	}
	return sess.Account.MaskedIdentifier(), nil
}

// Logout ends the session. Unknown tokens are a no-op.
func (s *Service) Logout(_ context.Context, token string) error {
	s.sessions.Logout(token)
	return nil
}

func (s *Service) print(ctx context.Context, acc *account.Account, entry account.Entry) {
	if s.printer == nil {
		return
	}
	_ = s.printer.Print(ctx, receipt.New(acc, entry))
}
