package interp

import "sync"

const (
	// InitialCredits is the balance a fresh account starts with.
	InitialCredits = 100

	// CostPerAICall is debited every time an AI interpretation is attempted.
	CostPerAICall = 5
)

// CreditAccount meters AI interpreter usage. It is owned by the Processor
// and guarded by a mutex so concurrent sessions cannot drive the balance
// negative.
type CreditAccount struct {
	mu      sync.Mutex
	balance int
}

// NewCreditAccount creates an account with the initial balance.
func NewCreditAccount() *CreditAccount {
	return &CreditAccount{balance: InitialCredits}
}

// Balance returns the current balance.
func (c *CreditAccount) Balance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balance
}

// TryDebit withdraws amount if the balance covers it and reports whether
// the debit happened.
func (c *CreditAccount) TryDebit(amount int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.balance < amount {
		return false
	}
	c.balance -= amount
	return true
}

// Add deposits amount; negative or zero amounts are ignored.
func (c *CreditAccount) Add(amount int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if amount > 0 {
		c.balance += amount
	}
	return c.balance
}
