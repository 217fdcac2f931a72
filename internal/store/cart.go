package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/domain"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/event"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/repository"
	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
)

const cartKeyPrefix = "cart:"

// CartStore owns the authoritative set of items a session intends to
// purchase. All mutations dispatch through the pure cart reducer; after every
// successful mutation the full state is serialized to durable storage.
//
// Durability is best-effort: storage failures are logged and counted, never
// surfaced, and the in-memory state remains the source of truth for the rest
// of the session. Invalid input (non-positive quantity, unknown line key) is
// a silent no-op, never an error.
type CartStore struct {
	mu        sync.RWMutex
	state     domain.CartState
	repo      repository.StateRepository
	key       string
	sessionID string
	events    *event.Producer
	logger    *slog.Logger
}

// NewCartStore creates a cart store for the given session and hydrates it
// from durable storage. An absent key, a malformed payload, or a storage
// error all yield the empty default state without raising to the caller.
func NewCartStore(ctx context.Context, repo repository.StateRepository, sessionID string, events *event.Producer, logger *slog.Logger) *CartStore {
	s := &CartStore{
		state:     domain.CartState{Items: []domain.CartItem{}},
		repo:      repo,
		key:       cartKeyPrefix + sessionID,
		sessionID: sessionID,
		events:    events,
		logger:    logger,
	}
	s.hydrate(ctx)
	return s
}

// AddItem merges quantity into the line matching the product's identity key
// (product ID plus size variant), or appends a new line. A non-positive
// quantity is rejected as a documented no-op.
func (s *CartStore) AddItem(ctx context.Context, product domain.Product, quantity int) {
	if quantity <= 0 {
		s.logger.DebugContext(ctx, "ignoring add with non-positive quantity",
			slog.String("product_id", product.ID),
			slog.Int("quantity", quantity),
		)
		return
	}

	s.dispatch(ctx, "add_item", domain.AddCartItem{Product: product, Quantity: quantity})
}

// RemoveItem deletes the line with the given identity key. Absent keys are a
// no-op.
func (s *CartStore) RemoveItem(ctx context.Context, lineKey string) {
	s.dispatch(ctx, "remove_item", domain.RemoveCartItem{LineKey: lineKey})
}

// UpdateItemQuantity sets the line's quantity to max(0, quantity); a clamped
// result of zero removes the line. Absent keys are a no-op.
func (s *CartStore) UpdateItemQuantity(ctx context.Context, lineKey string, quantity int) {
	s.dispatch(ctx, "update_quantity", domain.UpdateCartQuantity{LineKey: lineKey, Quantity: quantity})
}

// ClearCart empties the collection and drops the stored key.
func (s *CartStore) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.state = domain.ReduceCart(s.state, domain.ClearCart{})
	s.mu.Unlock()

	storeOperationsTotal.WithLabelValues("cart", "clear").Inc()

	// An absent key hydrates back to the empty default, so deleting is
	// equivalent to persisting the empty state.
	if err := s.repo.Delete(ctx, s.key); err != nil {
		storePersistenceFailures.WithLabelValues("cart", "clear").Inc()
		s.logger.WarnContext(ctx, "failed to clear stored cart state",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}

	if s.events != nil {
		if err := s.events.PublishCartCleared(ctx, s.sessionID); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
				slog.String("session_id", s.sessionID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Items returns the ordered cart lines, oldest first.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

// Subtotal returns the current subtotal in kobo, recomputed from state.
func (s *CartStore) Subtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Subtotal()
}

// TotalItems returns the sum of line quantities, recomputed from state.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TotalItems()
}

// dispatch runs the action through the reducer, persists the resulting state,
// and announces the change.
func (s *CartStore) dispatch(ctx context.Context, operation string, action domain.CartAction) {
	s.mu.Lock()
	s.state = domain.ReduceCart(s.state, action)
	state := s.state
	s.mu.Unlock()

	storeOperationsTotal.WithLabelValues("cart", operation).Inc()
	s.persist(ctx, operation, state)

	if s.events != nil {
		if err := s.events.PublishCartUpdated(ctx, s.sessionID, state); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
				slog.String("session_id", s.sessionID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// persist serializes the full state under the store's key. Failures are
// swallowed: the in-memory mutation has already succeeded.
func (s *CartStore) persist(ctx context.Context, operation string, state domain.CartState) {
	data, err := json.Marshal(state)
	if err != nil {
		storePersistenceFailures.WithLabelValues("cart", operation).Inc()
		s.logger.WarnContext(ctx, "failed to serialize cart state",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.repo.Save(ctx, s.key, data); err != nil {
		storePersistenceFailures.WithLabelValues("cart", operation).Inc()
		s.logger.WarnContext(ctx, "failed to persist cart state",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}
}

// hydrate replaces the empty default with stored state when a well-formed
// payload exists under the store's key.
func (s *CartStore) hydrate(ctx context.Context) {
	data, err := s.repo.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			storeHydrationFailures.WithLabelValues("cart", "load").Inc()
			s.logger.WarnContext(ctx, "could not load cart state, starting empty",
				slog.String("session_id", s.sessionID),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var stored domain.CartState
	if err := json.Unmarshal(data, &stored); err != nil {
		storeHydrationFailures.WithLabelValues("cart", "malformed").Inc()
		s.logger.WarnContext(ctx, "stored cart state is malformed, starting empty",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
		return
	}
	if stored.Items == nil {
		stored.Items = []domain.CartItem{}
	}

	s.mu.Lock()
	s.state = domain.ReduceCart(s.state, domain.SetCartState{State: stored})
	s.mu.Unlock()
}
