package session

import (
	"sync"

	"github.com/semagency/orderbot/internal/domain/model"
)

// State tags the question the bot is currently waiting on from a user.
type State int

const (
	StateNone State = iota
	StateMainMenu
	StateWaitingDetails
	StateWaitingColors
	StateWaitingComplexity
	StateWaitingPromoChoice
	StateWaitingPromoCode
	StateWaitingPaymentConfirmation
	StateWaitingReceipt
	StateWaitingTargetPlatform
	StateWaitingTargetDetails
)

// RelayRole marks which side of a relay conversation the session owner is on.
type RelayRole int

const (
	RelayNone RelayRole = iota
	RelayAdmin
	RelayUser
)

// Session accumulates answers for one user's in-flight order. It lives in
// memory only; a process restart resets every conversation to "no session".
// The relay fields are a side-channel independent of State.
type Session struct {
	State         State
	TermsAccepted bool

	Service        model.Service
	TargetPlatform string
	Details        string
	Colors         string
	Complexity     model.Complexity
	PromoCode      string
	PromoDiscount  float64

	OrderID        int64
	TotalPrice     int64
	UpfrontPrice   int64
	ReceiptOrderID int64

	RelayRole   RelayRole
	RelayTarget int64
}

// Manager owns all active sessions keyed by chat user id.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager constructs an empty session store.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, creating one on first interaction.
func (m *Manager) Get(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{}
		m.sessions[userID] = s
	}
	return s
}

// Reset discards collected order fields and returns the user to the main menu.
// The relay flag and terms acceptance survive a reset.
func (m *Manager) Reset(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.sessions[userID]
	s := &Session{State: StateMainMenu}
	if prev != nil {
		s.TermsAccepted = prev.TermsAccepted
		s.RelayRole = prev.RelayRole
		s.RelayTarget = prev.RelayTarget
	}
	m.sessions[userID] = s
	return s
}

// Clear drops the session entirely, relay flag included.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// StartRelay points the user's relay side-channel at a counterpart. A new
// relay silently replaces the previous target.
func (m *Manager) StartRelay(userID int64, role RelayRole, target int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{}
		m.sessions[userID] = s
	}
	s.RelayRole = role
	s.RelayTarget = target
}

// StopRelay drops only the relay flag, leaving any in-progress order untouched.
func (m *Manager) StopRelay(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		s.RelayRole = RelayNone
		s.RelayTarget = 0
	}
}
