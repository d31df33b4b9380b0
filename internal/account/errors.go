package account

import "errors"

var (
	// ErrInvalidAmount occurs when a deposit or withdrawal amount is not
	// strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds occurs when a withdrawal exceeds the current
	// balance. No partial withdrawal is performed.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNotFound indicates the identifier is not present in the directory.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicateKey indicates a registration collision on an account or
	// card number.
	ErrDuplicateKey = errors.New("duplicate account key")

	// ErrBadCredential indicates the account was found but the supplied
	// secret did not match.
	ErrBadCredential = errors.New("invalid credentials")

	// ErrBadFormat indicates a supplied identifier or secret does not match
	// the required shape; the directory is never consulted in that case.
	ErrBadFormat = errors.New("malformed identifier or PIN")
)
