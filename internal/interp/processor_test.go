package interp

import (
	"context"
	"errors"
	"testing"

	"pcagent/internal/automation"
)

// fakeBackend records calls and reports success for everything.
type fakeBackend struct {
	calls []string
}

func (f *fakeBackend) record(call string) automation.Outcome {
	f.calls = append(f.calls, call)
	return automation.Outcome{Status: automation.StatusSuccess, Message: call}
}

func (f *fakeBackend) OpenApp(name string) automation.Outcome    { return f.record("open:" + name) }
func (f *fakeBackend) CloseApp(name string) automation.Outcome   { return f.record("close:" + name) }
func (f *fakeBackend) OpenWebsite(url string) automation.Outcome { return f.record("web:" + url) }
func (f *fakeBackend) TypeText(text string) automation.Outcome   { return f.record("type:" + text) }
func (f *fakeBackend) PressKey(key string) automation.Outcome    { return f.record("press:" + key) }

// fakeAdapter returns a canned reply or error and counts invocations.
type fakeAdapter struct {
	reply string
	err   error
	calls int
}

func (f *fakeAdapter) Name() string { return "fake" }

func (f *fakeAdapter) Infer(ctx context.Context, system, user string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestProcessCommandUsesAI(t *testing.T) {
	backend := &fakeBackend{}
	adapter := &fakeAdapter{reply: `{"intent": "open_app", "app_name": "notepad"}`}
	p := NewProcessor(backend, testAliases(), adapter)

	res := p.ProcessCommand(context.Background(), "open notepad for me")
	if !res.OK {
		t.Fatalf("result not OK: %+v", res)
	}
	if !res.AIUsed {
		t.Error("AIUsed = false, want true")
	}
	if res.CreditsRemaining != InitialCredits-CostPerAICall {
		t.Errorf("CreditsRemaining = %d, want %d", res.CreditsRemaining, InitialCredits-CostPerAICall)
	}
	if len(backend.calls) != 1 || backend.calls[0] != "open:notepad" {
		t.Errorf("backend calls = %v", backend.calls)
	}
}

func TestProcessCommandDebitsOnFailedAttempt(t *testing.T) {
	backend := &fakeBackend{}
	adapter := &fakeAdapter{err: errors.New("connection refused")}
	p := NewProcessor(backend, testAliases(), adapter)

	res := p.ProcessCommand(context.Background(), "open notepad")
	if !res.OK {
		t.Fatalf("fallback should have resolved: %+v", res)
	}
	if res.AIUsed {
		t.Error("AIUsed = true after fallback")
	}
	// Debit happens at attempt time and is not refunded.
	if res.CreditsRemaining != InitialCredits-CostPerAICall {
		t.Errorf("CreditsRemaining = %d, want %d", res.CreditsRemaining, InitialCredits-CostPerAICall)
	}
}

func TestProcessCommandUnparsableReplyFallsBack(t *testing.T) {
	backend := &fakeBackend{}
	adapter := &fakeAdapter{reply: "sorry, I can't help with that"}
	p := NewProcessor(backend, testAliases(), adapter)

	res := p.ProcessCommand(context.Background(), "press ctrl+c")
	if !res.OK {
		t.Fatalf("fallback should have resolved: %+v", res)
	}
	if res.AIUsed {
		t.Error("AIUsed = true, want false for fallback path")
	}
	if backend.calls[0] != "press:ctrl+c" {
		t.Errorf("backend calls = %v", backend.calls)
	}
}

func TestProcessCommandSkipsAIWhenBroke(t *testing.T) {
	backend := &fakeBackend{}
	adapter := &fakeAdapter{reply: `{"intent": "open_app", "app_name": "notepad"}`}
	p := NewProcessor(backend, testAliases(), adapter)

	// Drain the balance below one call's cost.
	p.credits.TryDebit(InitialCredits - CostPerAICall + 1)

	res := p.ProcessCommand(context.Background(), "open youtube")
	if adapter.calls != 0 {
		t.Errorf("adapter invoked %d times with insufficient credits", adapter.calls)
	}
	if res.AIUsed {
		t.Error("AIUsed = true, want false")
	}
	if !res.OK {
		t.Fatalf("fallback failed: %+v", res)
	}
	if backend.calls[0] != "web:https://www.youtube.com" {
		t.Errorf("backend calls = %v", backend.calls)
	}
}

func TestProcessCommandNoAdapter(t *testing.T) {
	backend := &fakeBackend{}
	p := NewProcessor(backend, testAliases(), nil)

	res := p.ProcessCommand(context.Background(), "open youtube")
	if !res.OK {
		t.Fatalf("fallback failed: %+v", res)
	}
	if res.AIUsed {
		t.Error("AIUsed = true without adapter")
	}
	if res.CreditsRemaining != InitialCredits {
		t.Errorf("CreditsRemaining = %d, want untouched %d", res.CreditsRemaining, InitialCredits)
	}
}

func TestCreditsNeverNegative(t *testing.T) {
	backend := &fakeBackend{}
	adapter := &fakeAdapter{err: errors.New("down")}
	p := NewProcessor(backend, testAliases(), adapter)

	for i := 0; i < 50; i++ {
		p.ProcessCommand(context.Background(), "open notepad")
	}
	if balance := p.credits.Balance(); balance < 0 {
		t.Fatalf("balance went negative: %d", balance)
	}
	// 100 / 5 = 20 attempts, then the adapter is skipped.
	if adapter.calls != InitialCredits/CostPerAICall {
		t.Errorf("adapter calls = %d, want %d", adapter.calls, InitialCredits/CostPerAICall)
	}
}
