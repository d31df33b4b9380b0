package account

import (
	"fmt"

	"github.com/okapibank/teller/internal/card"
	"github.com/okapibank/teller/internal/money"
)

// demo fixtures; tests rely on these exact numbers
var demoAccounts = []struct {
	number  string
	holder  string
	pin     string
	opening money.Amount
}{
	{"123456", "Asha Rao", "1234", 7_500_000},
	{"789012", "Vikram Mehta", "5678", 12_500_000},
	{"345678", "Priya Nair", "9012", 3_750_000},
}

// demoCardNumber is the card bound to the first demo account.
const demoCardNumber = "4532123456789012"

// Seed populates the directory with demo fixture accounts: three PIN-only
// accounts plus a debit card bound to the first one, and one extra
// card-and-PIN account provisioned from the generator. Fixture data only;
// any seeding satisfying the directory invariants is equally valid.
func Seed(dir *Directory, gen card.Generator) error {
	for i, fixture := range demoAccounts {
		var (
			cred Credential
			err  error
		)
		if i == 0 {
			cred, err = NewCardCredential(demoCardNumber, fixture.pin)
		} else {
			cred, err = NewPinCredential(fixture.pin)
		}
		if err != nil {
			return fmt.Errorf("seed credential for %s: %w", fixture.number, err)
		}
		if err := dir.Register(New(fixture.number, fixture.holder, cred, fixture.opening)); err != nil {
			return fmt.Errorf("seed account %s: %w", fixture.number, err)
		}
	}

	if gen != nil {
		number, pin := gen.CardNumber(), gen.PIN()
		if number != "" && pin != "" {
			cred, err := NewCardCredential(number, pin)
			if err != nil {
				return fmt.Errorf("seed generated credential: %w", err)
			}
			if err := dir.Register(New("901234", "Demo Card Holder", cred, 5_000_000)); err != nil {
				return fmt.Errorf("seed generated account: %w", err)
			}
		}
	}

	return nil
}
