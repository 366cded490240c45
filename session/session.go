// Package session holds per-session UI state: which branch and category the
// customer is looking at, and the checkout form in progress. State is scoped
// to one session and lost on restart.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ray-remotestate/storefront/models"
)

// NavigationState tracks the active branch, the active category tab and
// which category sections are expanded.
type NavigationState struct {
	ActiveBranchID *uuid.UUID      `json:"active_branch_id,omitempty"`
	ActiveTab      string          `json:"active_tab,omitempty"`
	Expanded       map[string]bool `json:"expanded"`
}

type state struct {
	nav      NavigationState
	checkout CheckoutForm
}

// Subscriber is notified with the session id after every state change.
type Subscriber func(sessionID string)

// Store keeps navigation and checkout state per session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*state

	subMu   sync.Mutex
	subs    map[int64]Subscriber
	nextSub int64
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*state),
		subs:     make(map[int64]Subscriber),
	}
}

func (s *Store) session(sessionID string) *state {
	st, ok := s.sessions[sessionID]
	if !ok {
		st = &state{
			nav:      NavigationState{Expanded: make(map[string]bool)},
			checkout: defaultCheckoutForm(),
		}
		s.sessions[sessionID] = st
	}
	return st
}

// Navigation returns a copy of the session's navigation state.
func (s *Store) Navigation(sessionID string) NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	nav := s.session(sessionID).nav
	expanded := make(map[string]bool, len(nav.Expanded))
	for k, v := range nav.Expanded {
		expanded[k] = v
	}
	nav.Expanded = expanded
	return nav
}

// ActivateTab selects a category tab, collapsing every other section and
// expanding the matching one. At most one section is active via tab
// selection; manual toggles can still expand others afterwards.
func (s *Store) ActivateTab(sessionID, tab string) {
	s.mu.Lock()
	st := s.session(sessionID)
	st.nav.ActiveTab = tab
	st.nav.Expanded = map[string]bool{tab: true}
	s.mu.Unlock()

	s.notify(sessionID)
}

// ToggleSection flips one section's expanded state without touching the
// active tab or other sections.
func (s *Store) ToggleSection(sessionID, section string) {
	s.mu.Lock()
	st := s.session(sessionID)
	st.nav.Expanded[section] = !st.nav.Expanded[section]
	s.mu.Unlock()

	s.notify(sessionID)
}

// SetActiveBranch records the branch resolved from the route.
func (s *Store) SetActiveBranch(sessionID string, branchID uuid.UUID) {
	s.mu.Lock()
	st := s.session(sessionID)
	st.nav.ActiveBranchID = &branchID
	s.mu.Unlock()

	s.notify(sessionID)
}

// Checkout returns a copy of the session's checkout form.
func (s *Store) Checkout(sessionID string) CheckoutForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(sessionID).checkout
}

// UpdateCheckout merges partial form fields into the session's checkout
// form. Nil patch fields are left untouched.
func (s *Store) UpdateCheckout(sessionID string, patch CheckoutPatch) CheckoutForm {
	s.mu.Lock()
	st := s.session(sessionID)
	st.checkout.apply(patch)
	form := st.checkout
	s.mu.Unlock()

	s.notify(sessionID)
	return form
}

// Reset drops all state for a session.
func (s *Store) Reset(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.notify(sessionID)
}

// Subscribe registers a change listener and returns an unsubscribe func.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify(sessionID string) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(sessionID)
	}
}

// ResolveBranch matches a route parameter against the loaded branch list.
// A malformed or unknown id leaves the branch unresolved and the caller
// renders a not-found state.
func ResolveBranch(param string, branches []models.Branch) (models.Branch, bool) {
	id, err := uuid.Parse(param)
	if err != nil {
		return models.Branch{}, false
	}
	for _, b := range branches {
		if b.ID == id {
			return b, true
		}
	}
	return models.Branch{}, false
}
