package session

import (
	"sync"
	"testing"
)

func TestGetCreatesSessionOnFirstUse(t *testing.T) {
	m := NewManager()
	s := m.Get(42)
	if s == nil {
		t.Fatal("expected session to be created")
	}
	if s.State != StateNone {
		t.Fatalf("fresh session must start in StateNone, got %v", s.State)
	}
	if m.Get(42) != s {
		t.Fatal("expected the same session instance on second call")
	}
}

func TestResetPreservesTermsAndRelay(t *testing.T) {
	m := NewManager()
	s := m.Get(42)
	s.TermsAccepted = true
	s.State = StateWaitingDetails
	s.Details = "logo for a coffee shop"
	m.StartRelay(42, RelayUser, 555)

	reset := m.Reset(42)
	if reset.State != StateMainMenu {
		t.Fatalf("expected main menu state after reset, got %v", reset.State)
	}
	if reset.Details != "" {
		t.Fatal("expected collected fields dropped on reset")
	}
	if !reset.TermsAccepted {
		t.Fatal("terms acceptance must survive reset")
	}
	if reset.RelayRole != RelayUser || reset.RelayTarget != 555 {
		t.Fatal("relay side-channel must survive reset")
	}
}

func TestClearDropsEverything(t *testing.T) {
	m := NewManager()
	s := m.Get(42)
	s.TermsAccepted = true
	m.Clear(42)
	if m.Get(42).TermsAccepted {
		t.Fatal("expected a fresh session after clear")
	}
}

func TestStartRelayReplacesTarget(t *testing.T) {
	m := NewManager()
	m.StartRelay(1, RelayAdmin, 100)
	m.StartRelay(1, RelayAdmin, 200)
	s := m.Get(1)
	if s.RelayTarget != 200 {
		t.Fatalf("expected relay target 200, got %d", s.RelayTarget)
	}
}

func TestStopRelayKeepsOrderFields(t *testing.T) {
	m := NewManager()
	s := m.Get(1)
	s.State = StateWaitingColors
	m.StartRelay(1, RelayUser, 555)
	m.StopRelay(1)
	if s.RelayRole != RelayNone || s.RelayTarget != 0 {
		t.Fatal("expected relay flag dropped")
	}
	if s.State != StateWaitingColors {
		t.Fatal("stopping relay must not touch the conversation state")
	}
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.Get(id)
			m.Reset(id)
			m.StartRelay(id, RelayUser, 1)
			m.StopRelay(id)
		}(int64(i % 5))
	}
	wg.Wait()
}
