package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/event"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/repository"
)

// Session bundles the two stores owned by one browser session. The stores are
// independent: there is no shared transaction between them. In particular the
// move-to-cart flow (cart AddItem followed by wishlist RemoveItem) is two
// sequential, non-atomic operations; if the process dies between them the
// item ends up in both stores until the shopper removes one copy.
type Session struct {
	Cart     *CartStore
	Wishlist *WishlistStore
}

// Manager hands out the store pair for a session, creating and hydrating it
// on first use. Stores live for the process lifetime; the durable state they
// persist outlives them.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	repo     repository.StateRepository
	events   *event.Producer
	logger   *slog.Logger
}

// NewManager creates a store manager on top of the given state repository.
// events may be nil to disable event publishing.
func NewManager(repo repository.StateRepository, events *event.Producer, logger *slog.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		repo:     repo,
		events:   events,
		logger:   logger,
	}
}

// Session returns the store pair for the given session ID, hydrating both
// stores from durable storage the first time the session is seen.
func (m *Manager) Session(ctx context.Context, sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[sessionID]; ok {
		return sess
	}

	sess := &Session{
		Cart:     NewCartStore(ctx, m.repo, sessionID, m.events, m.logger),
		Wishlist: NewWishlistStore(ctx, m.repo, sessionID, m.events, m.logger),
	}
	m.sessions[sessionID] = sess
	return sess
}
