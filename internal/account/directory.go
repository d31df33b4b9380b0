package account

import "sync"

// Directory maps teller identifiers (account numbers and card numbers) to
// accounts. Both keys of a card-holding account resolve to the same
// *Account. Registration is exclusive; lookups are concurrent. Entries are
// never removed, so read-mostly access is safe once seeding completes.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewDirectory builds an empty directory.
func NewDirectory() *Directory {
	return &Directory{accounts: make(map[string]*Account)}
}

// Register inserts an account under its account number and, when present,
// its card number. Card numbers are globally unique: a collision on either
// key rejects the whole registration with no partial insert.
func (d *Directory) Register(acc *Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	keys := []string{acc.ID()}
	if n := acc.Credential().CardNumber(); n != "" {
		keys = append(keys, n)
	}
	for _, k := range keys {
		if _, exists := d.accounts[k]; exists {
			return ErrDuplicateKey
		}
	}
	for _, k := range keys {
		d.accounts[k] = acc
	}
	return nil
}

// Lookup resolves an identifier to its account.
func (d *Directory) Lookup(key string) (*Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	acc, ok := d.accounts[key]
	if !ok {
		return nil, ErrNotFound
	}
	return acc, nil
}

// Len reports the number of registered lookup keys.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}
