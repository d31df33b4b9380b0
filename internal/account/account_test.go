package account

import (
	"fmt"
	"sync"
	"testing"

	"github.com/okapibank/teller/internal/money"
)

func newTestAccount(t *testing.T, opening money.Amount) *Account {
	t.Helper()
	cred, err := NewPinCredential("1234")
	if err != nil {
		t.Fatalf("credential: %v", err)
	}
	return New("123456", "Asha Rao", cred, opening)
}

func TestDepositAppendsEntry(t *testing.T) {
	acc := newTestAccount(t, 7_500_000) // ₹75,000.00

	entry, err := acc.Deposit(75_050) // ₹750.50
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if acc.Balance() != 7_575_050 {
		t.Fatalf("expected balance 7575050, got %d", acc.Balance())
	}
	if entry.Kind != Deposit {
		t.Fatalf("expected DEPOSIT entry, got %s", entry.Kind)
	}
	if entry.BalanceAfter != acc.Balance() {
		t.Fatalf("entry balance %d does not match account balance %d", entry.BalanceAfter, acc.Balance())
	}
	if acc.EntryCount() != 1 {
		t.Fatalf("expected one ledger entry, got %d", acc.EntryCount())
	}
}

func TestWithdrawInsufficientFundsLeavesStateUntouched(t *testing.T) {
	acc := newTestAccount(t, 7_500_000)
	if _, err := acc.Deposit(75_050); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	before := acc.Balance()
	entries := acc.EntryCount()

	if _, err := acc.Withdraw(10_000_000); err != ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if acc.Balance() != before {
		t.Fatalf("balance changed on rejected withdrawal: %d -> %d", before, acc.Balance())
	}
	if acc.EntryCount() != entries {
		t.Fatalf("ledger grew on rejected withdrawal")
	}
}

func TestInvalidAmountsAreRejectedWithoutEffect(t *testing.T) {
	acc := newTestAccount(t, 10_000)

	for _, amt := range []money.Amount{0, -500} {
		if _, err := acc.Deposit(amt); err != ErrInvalidAmount {
			t.Fatalf("deposit %d: expected ErrInvalidAmount, got %v", amt, err)
		}
		if _, err := acc.Withdraw(amt); err != ErrInvalidAmount {
			t.Fatalf("withdraw %d: expected ErrInvalidAmount, got %v", amt, err)
		}
	}

	if acc.Balance() != 10_000 || acc.EntryCount() != 0 {
		t.Fatalf("rejected operations mutated state: balance=%d entries=%d", acc.Balance(), acc.EntryCount())
	}
}

func TestWithdrawExactBalanceBoundary(t *testing.T) {
	acc := newTestAccount(t, 10_000)

	if _, err := acc.Withdraw(10_001); err != ErrInsufficientFunds {
		t.Fatalf("one paisa over balance must be rejected, got %v", err)
	}

	entry, err := acc.Withdraw(10_000)
	if err != nil {
		t.Fatalf("withdrawing exact balance: %v", err)
	}
	if acc.Balance() != 0 || entry.BalanceAfter != 0 {
		t.Fatalf("expected zero balance, got %d (entry %d)", acc.Balance(), entry.BalanceAfter)
	}
}

func TestWithdrawDepositRoundTrip(t *testing.T) {
	acc := newTestAccount(t, 50_000)

	if _, err := acc.Withdraw(12_345); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if _, err := acc.Deposit(12_345); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if acc.Balance() != 50_000 {
		t.Fatalf("round trip should restore balance, got %d", acc.Balance())
	}
	if acc.EntryCount() != 2 {
		t.Fatalf("round trip should append two entries, got %d", acc.EntryCount())
	}
}

func TestHistoryMostRecentFirstBounded(t *testing.T) {
	acc := newTestAccount(t, 0)

	for i := 1; i <= 12; i++ {
		if _, err := acc.Deposit(money.Amount(i * 100)); err != nil {
			t.Fatalf("deposit %d: %v", i, err)
		}
	}

	history := acc.History(10)
	if len(history) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(history))
	}
	// Deposits 12 down to 3, newest first.
	for i, entry := range history {
		want := money.Amount((12 - i) * 100)
		if entry.Amount != want {
			t.Fatalf("entry %d: expected amount %d, got %d", i, want, entry.Amount)
		}
	}
	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.After(history[i-1].Timestamp) {
			t.Fatalf("history not time-ordered at index %d", i)
		}
	}

	again := acc.History(10)
	for i := range history {
		if history[i] != again[i] {
			t.Fatalf("repeated history call diverged at index %d", i)
		}
	}

	if got := acc.History(100); len(got) != 12 {
		t.Fatalf("oversized limit should return all entries, got %d", len(got))
	}
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	acc := newTestAccount(t, 5_000)

	const workers = 20
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = acc.Withdraw(1_000)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch err {
		case nil:
			succeeded++
		case ErrInsufficientFunds:
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 5 {
		t.Fatalf("expected exactly 5 withdrawals to pass, got %d", succeeded)
	}
	if acc.Balance() != 0 {
		t.Fatalf("expected zero balance, got %d", acc.Balance())
	}
	if acc.EntryCount() != 5 {
		t.Fatalf("expected 5 ledger entries, got %d", acc.EntryCount())
	}
}

func TestBalanceNeverNegativeUnderMixedLoad(t *testing.T) {
	acc := newTestAccount(t, 100_000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = acc.Deposit(money.Amount(100 + i))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = acc.Withdraw(money.Amount(50_000 + i))
		}(i)
	}
	wg.Wait()

	if acc.Balance() < 0 {
		t.Fatalf("balance went negative: %d", acc.Balance())
	}
	for i, entry := range acc.History(acc.EntryCount()) {
		if entry.BalanceAfter < 0 {
			t.Fatalf("entry %d recorded negative balance %d", i, entry.BalanceAfter)
		}
	}
}

func TestMaskedIdentifier(t *testing.T) {
	pinOnly := newTestAccount(t, 0)
	if got := pinOnly.MaskedIdentifier(); got != "******" {
		t.Fatalf("six digit account numbers must be fully masked, got %q", got)
	}

	cred, err := NewCardCredential("4532123456789012", "1234")
	if err != nil {
		t.Fatalf("credential: %v", err)
	}
	carded := New("901234", "Demo Card Holder", cred, 0)
	if got := carded.MaskedIdentifier(); got != "4532 **** **** 9012" {
		t.Fatalf("unexpected masked card %q", got)
	}
}

func TestEntryCountGrowsByOnePerMutation(t *testing.T) {
	acc := newTestAccount(t, 100_000)
	for i := 0; i < 5; i++ {
		before := acc.EntryCount()
		var err error
		if i%2 == 0 {
			_, err = acc.Deposit(100)
		} else {
			_, err = acc.Withdraw(100)
		}
		if err != nil {
			t.Fatalf("mutation %d: %v", i, err)
		}
		if acc.EntryCount() != before+1 {
			t.Fatalf("mutation %d: ledger grew by %d", i, acc.EntryCount()-before)
		}
	}
}

func BenchmarkDeposit(b *testing.B) {
	cred, _ := NewPinCredential("1234")
	acc := New("123456", "bench", cred, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := acc.Deposit(1); err != nil {
			b.Fatal(err)
		}
	}
	_ = fmt.Sprintf("%d", acc.Balance())
}
