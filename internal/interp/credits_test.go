package interp

import (
	"sync"
	"testing"
)

func TestCreditAccount(t *testing.T) {
	c := NewCreditAccount()
	if c.Balance() != InitialCredits {
		t.Fatalf("fresh balance = %d, want %d", c.Balance(), InitialCredits)
	}

	if !c.TryDebit(CostPerAICall) {
		t.Fatal("TryDebit failed with sufficient balance")
	}
	if c.Balance() != InitialCredits-CostPerAICall {
		t.Errorf("balance = %d after debit", c.Balance())
	}

	if c.TryDebit(InitialCredits) {
		t.Error("TryDebit succeeded beyond balance")
	}

	c.Add(50)
	if c.Balance() != InitialCredits-CostPerAICall+50 {
		t.Errorf("balance = %d after add", c.Balance())
	}

	c.Add(-10)
	if c.Balance() != InitialCredits-CostPerAICall+50 {
		t.Error("negative Add changed the balance")
	}
}

func TestCreditAccountConcurrent(t *testing.T) {
	c := NewCreditAccount()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.TryDebit(CostPerAICall)
		}()
	}
	wg.Wait()

	if got := c.Balance(); got != 0 {
		t.Errorf("balance = %d after draining debits, want 0", got)
	}
}
