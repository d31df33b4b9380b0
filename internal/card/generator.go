package card

import (
	"fmt"
	"math/rand"
)

// issuerPrefix is the Visa-style bank identifier used for simulated cards.
const issuerPrefix = "4532"

// Generator produces card numbers and PINs for account provisioning.
// Implementations are a fixture concern, not a security boundary.
type Generator interface {
	CardNumber() string
	PIN() string
}

// RandomGenerator draws card numbers and PINs from a math/rand source.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator builds a generator seeded from the provided source.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// CardNumber returns a sixteen digit number with the issuer prefix.
func (g *RandomGenerator) CardNumber() string {
	digits := make([]byte, 0, cardNumberLength)
	digits = append(digits, issuerPrefix...)
	for i := 0; i < cardNumberLength-len(issuerPrefix); i++ {
		digits = append(digits, byte('0'+g.rng.Intn(10)))
	}
	return string(digits)
}

// PIN returns a four digit PIN, zero padded.
func (g *RandomGenerator) PIN() string {
	return fmt.Sprintf("%04d", g.rng.Intn(10000))
}

// SequenceGenerator hands out pre-arranged identifiers, letting tests pin
// down the exact card numbers and PINs an account is provisioned with.
type SequenceGenerator struct {
	Cards []string
	PINs  []string

	nextCard int
	nextPIN  int
}

// CardNumber returns the next queued card number.
func (g *SequenceGenerator) CardNumber() string {
	if g.nextCard >= len(g.Cards) {
		return ""
	}
	n := g.Cards[g.nextCard]
	g.nextCard++
	return n
}

// PIN returns the next queued PIN.
func (g *SequenceGenerator) PIN() string {
	if g.nextPIN >= len(g.PINs) {
		return ""
	}
	p := g.PINs[g.nextPIN]
	g.nextPIN++
	return p
}
