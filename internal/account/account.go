// Package account implements the teller core: accounts, credentials, the
// append-only per-account ledger, and the directory that resolves teller
// identifiers to accounts.
package account

import (
	"sync"
	"time"

	"github.com/okapibank/teller/internal/card"
	"github.com/okapibank/teller/internal/money"
)

// Account pairs a balance with its credential and ledger. The balance never
// goes negative, and every balance change appends exactly one ledger entry
// carrying the post-change balance. A per-account mutex serializes
// deposit/withdraw/append so concurrent sessions cannot pass the
// sufficiency check against a stale balance.
type Account struct {
	id     string
	holder string
	cred   Credential

	mu      sync.Mutex
	balance money.Amount
	entries []Entry
}

// New creates an account with the given opening balance. The opening
// balance is not a ledger event; the ledger records mutations only.
func New(id, holder string, cred Credential, opening money.Amount) *Account {
	if opening < 0 {
		opening = 0
	}
	return &Account{id: id, holder: holder, cred: cred, balance: opening}
}

// ID returns the stable account number assigned at creation.
func (a *Account) ID() string { return a.id }

// HolderName returns the display name of the account holder.
func (a *Account) HolderName() string { return a.holder }

// Credential exposes the account's credential for authentication.
func (a *Account) Credential() Credential { return a.cred }

// Deposit credits amount and appends a DEPOSIT entry. The balance change
// and the append happen together or not at all.
func (a *Account) Deposit(amount money.Amount) (Entry, error) {
	if amount <= 0 {
		return Entry{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance += amount
	entry := Entry{
		Kind:         Deposit,
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
		BalanceAfter: a.balance,
	}
	a.entries = append(a.entries, entry)
	return entry, nil
}

// Withdraw debits amount and appends a WITHDRAWAL entry. Withdrawing the
// exact balance is allowed and leaves the balance at zero.
func (a *Account) Withdraw(amount money.Amount) (Entry, error) {
	if amount <= 0 {
		return Entry{}, ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return Entry{}, ErrInsufficientFunds
	}

	a.balance -= amount
	entry := Entry{
		Kind:         Withdrawal,
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
		BalanceAfter: a.balance,
	}
	a.entries = append(a.entries, entry)
	return entry, nil
}

// Balance returns the current balance.
func (a *Account) Balance() money.Amount {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns up to max ledger entries, most recent first. The result
// is a copy; repeated calls over unchanged state return equal sequences.
func (a *Account) History(max int) []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := len(a.entries)
	if max < 0 {
		max = 0
	}
	if max > n {
		max = n
	}
	out := make([]Entry, 0, max)
	for i := n - 1; i >= n-max; i-- {
		out = append(out, a.entries[i])
	}
	return out
}

// EntryCount reports the ledger length.
func (a *Account) EntryCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// MaskedIdentifier returns the display-safe form of the card number when
// one is bound, otherwise of the account number.
func (a *Account) MaskedIdentifier() string {
	if n := a.cred.CardNumber(); n != "" {
		return card.Mask(n)
	}
	return card.Mask(a.id)
}
