package account

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credential is the secret required to authenticate as an account holder.
// Two variants exist: PIN-only, and a debit card number paired with a PIN.
// The credential trims surrounding whitespace and nothing else; shape
// validation ("exactly 4 digits") belongs to the caller so that format
// errors and authentication failures stay distinguishable.
type Credential struct {
	pinHash    []byte
	cardNumber string
}

// NewPinCredential stores a hashed PIN with no card identity.
func NewPinCredential(pin string) (Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(pin)), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{pinHash: hash}, nil
}

// NewCardCredential binds a card number to a hashed PIN. The card number is
// immutable for the life of the credential.
func NewCardCredential(cardNumber, pin string) (Credential, error) {
	cred, err := NewPinCredential(pin)
	if err != nil {
		return Credential{}, err
	}
	cred.cardNumber = strings.TrimSpace(cardNumber)
	return cred, nil
}

// Verify reports whether the supplied PIN matches.
func (c Credential) Verify(pin string) bool {
	return bcrypt.CompareHashAndPassword(c.pinHash, []byte(strings.TrimSpace(pin))) == nil
}

// VerifyCard requires an exact card number match before checking the PIN.
func (c Credential) VerifyCard(cardNumber, pin string) bool {
	if c.cardNumber == "" || strings.TrimSpace(cardNumber) != c.cardNumber {
		return false
	}
	return c.Verify(pin)
}

// CardNumber returns the bound card number, empty for PIN-only credentials.
func (c Credential) CardNumber() string {
	return c.cardNumber
}
