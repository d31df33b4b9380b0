package teller

import (
	"time"

	"github.com/okapibank/teller/internal/account"
)

// loginRequest carries the teller identifier (account or card number) and
// PIN. Amounts and PINs are strings on the wire; parsing happens here at
// the boundary, never in the core.
type loginRequest struct {
	Identifier string `json:"identifier"`
	PIN        string `json:"pin"`
}

type loginResponse struct {
	Token            string `json:"token"`
	HolderName       string `json:"holder_name"`
	MaskedIdentifier string `json:"masked_identifier"`
	ExpiresAt        string `json:"expires_at"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type entryResponse struct {
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	Timestamp    string `json:"timestamp"`
	BalanceAfter string `json:"balance_after"`
}

func toEntryResponse(e account.Entry) entryResponse {
	return entryResponse{
		Kind:         string(e.Kind),
		Amount:       e.Amount.String(),
		Timestamp:    e.Timestamp.Format(time.RFC3339Nano),
		BalanceAfter: e.BalanceAfter.String(),
	}
}
