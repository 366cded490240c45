package cart

import (
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/ray-remotestate/storefront/models"
)

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine // sessionID -> lines

	subMu    sync.Mutex
	subs     map[int64]Subscriber
	nextSub  int64
	revision atomic.Int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]models.CartLine),
		subs:  make(map[int64]Subscriber),
	}
}

func (s *MemoryStore) Add(sessionID string, line models.CartLine) {
	if line.ProductID <= 0 || line.Quantity < 1 {
		logrus.Warnf("cart: dropping invalid line for session %s (product %d, quantity %d)",
			sessionID, line.ProductID, line.Quantity)
		return
	}

	s.mu.Lock()
	lines := s.carts[sessionID]
	replaced := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		lines = append(lines, line)
	}
	s.carts[sessionID] = lines
	s.mu.Unlock()

	s.notify(sessionID)
}

func (s *MemoryStore) Update(sessionID string, productID int64, patch models.CartLinePatch) {
	s.mu.Lock()
	lines := s.carts[sessionID]
	changed := false
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if patch.Quantity != nil && *patch.Quantity == 0 {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			changed = true
			break
		}
		applyPatch(&lines[i], patch)
		changed = true
		break
	}
	s.mu.Unlock()

	if changed {
		s.notify(sessionID)
	}
}

func applyPatch(line *models.CartLine, patch models.CartLinePatch) {
	if patch.Quantity != nil {
		line.Quantity = *patch.Quantity
	}
	if patch.Ingredients != nil {
		line.Ingredients = *patch.Ingredients
	}
	if patch.Condiments != nil {
		line.Condiments = *patch.Condiments
	}
	if patch.Comment != nil {
		line.Comment = *patch.Comment
	}
	line.Total = lineTotal(*line)
}

// lineTotal recomputes the customization-aware total after a merge.
func lineTotal(line models.CartLine) float64 {
	unit := line.UnitPrice
	for _, sel := range line.Ingredients {
		if sel.Quantity > 0 {
			unit += sel.Price * float64(sel.Quantity)
		}
	}
	return unit * float64(line.Quantity)
}

func (s *MemoryStore) Remove(sessionID string, productID int64) {
	s.mu.Lock()
	lines := s.carts[sessionID]
	removed := false
	for i := range lines {
		if lines[i].ProductID == productID {
			s.carts[sessionID] = append(lines[:i], lines[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify(sessionID)
	}
}

func (s *MemoryStore) Lines(sessionID string) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[sessionID]
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

func (s *MemoryStore) Quantity(sessionID string, productID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.carts[sessionID] {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}

func (s *MemoryStore) TotalItems(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, line := range s.carts[sessionID] {
		total += line.Quantity
	}
	return total
}

func (s *MemoryStore) TotalPrice(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, line := range s.carts[sessionID] {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

func (s *MemoryStore) TotalWithAddOns(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, line := range s.carts[sessionID] {
		total += line.Total
	}
	return total
}

func (s *MemoryStore) Clear(sessionID string) {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()

	s.notify(sessionID)
}

func (s *MemoryStore) Subscribe(fn Subscriber) func() {
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

func (s *MemoryStore) Revision() int64 {
	return s.revision.Load()
}

// notify runs subscribers synchronously, outside the cart lock so a
// subscriber may read back from the store.
func (s *MemoryStore) notify(sessionID string) {
	s.revision.Inc()

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
