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

const wishlistKeyPrefix = "wishlist:"

// WishlistStore owns the deduplicated set of products a session has saved for
// later. It follows the same persistence contract as CartStore (best-effort
// writes under an independent storage key) but deduplicates by product ID
// alone.
type WishlistStore struct {
	mu        sync.RWMutex
	state     domain.WishlistState
	repo      repository.StateRepository
	key       string
	sessionID string
	events    *event.Producer
	logger    *slog.Logger
}

// NewWishlistStore creates a wishlist store for the given session and
// hydrates it from durable storage, falling back to the empty default on any
// load or parse failure.
func NewWishlistStore(ctx context.Context, repo repository.StateRepository, sessionID string, events *event.Producer, logger *slog.Logger) *WishlistStore {
	s := &WishlistStore{
		state:     domain.WishlistState{Items: []domain.Product{}},
		repo:      repo,
		key:       wishlistKeyPrefix + sessionID,
		sessionID: sessionID,
		events:    events,
		logger:    logger,
	}
	s.hydrate(ctx)
	return s
}

// AddItem saves the product unless one with the same ID is already saved
// (idempotent).
func (s *WishlistStore) AddItem(ctx context.Context, product domain.Product) {
	s.dispatch(ctx, "add_item", domain.AddWishlistItem{Product: product})
}

// RemoveItem deletes the matching product; absent IDs are a no-op.
func (s *WishlistStore) RemoveItem(ctx context.Context, productID string) {
	s.dispatch(ctx, "remove_item", domain.RemoveWishlistItem{ProductID: productID})
}

// ClearWishlist empties the collection and drops the stored key.
func (s *WishlistStore) ClearWishlist(ctx context.Context) {
	s.mu.Lock()
	s.state = domain.ReduceWishlist(s.state, domain.ClearWishlist{})
	s.mu.Unlock()

	storeOperationsTotal.WithLabelValues("wishlist", "clear").Inc()

	if err := s.repo.Delete(ctx, s.key); err != nil {
		storePersistenceFailures.WithLabelValues("wishlist", "clear").Inc()
		s.logger.WarnContext(ctx, "failed to clear stored wishlist state",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}
}

// IsItemInWishlist reports whether a product with the given ID is saved.
func (s *WishlistStore) IsItemInWishlist(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Contains(productID)
}

// Items returns the ordered saved products, oldest first.
func (s *WishlistStore) Items() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Product, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

func (s *WishlistStore) dispatch(ctx context.Context, operation string, action domain.WishlistAction) {
	s.mu.Lock()
	s.state = domain.ReduceWishlist(s.state, action)
	state := s.state
	s.mu.Unlock()

	storeOperationsTotal.WithLabelValues("wishlist", operation).Inc()
	s.persist(ctx, operation, state)

	if s.events != nil {
		if err := s.events.PublishWishlistUpdated(ctx, s.sessionID, state); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish wishlist.updated event",
				slog.String("session_id", s.sessionID),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *WishlistStore) persist(ctx context.Context, operation string, state domain.WishlistState) {
	data, err := json.Marshal(state)
	if err != nil {
		storePersistenceFailures.WithLabelValues("wishlist", operation).Inc()
		s.logger.WarnContext(ctx, "failed to serialize wishlist state",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.repo.Save(ctx, s.key, data); err != nil {
		storePersistenceFailures.WithLabelValues("wishlist", operation).Inc()
		s.logger.WarnContext(ctx, "failed to persist wishlist state",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *WishlistStore) hydrate(ctx context.Context) {
	data, err := s.repo.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			storeHydrationFailures.WithLabelValues("wishlist", "load").Inc()
			s.logger.WarnContext(ctx, "could not load wishlist state, starting empty",
				slog.String("session_id", s.sessionID),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var stored domain.WishlistState
	if err := json.Unmarshal(data, &stored); err != nil {
		storeHydrationFailures.WithLabelValues("wishlist", "malformed").Inc()
		s.logger.WarnContext(ctx, "stored wishlist state is malformed, starting empty",
			slog.String("session_id", s.sessionID),
			slog.String("error", err.Error()),
		)
		return
	}
	if stored.Items == nil {
		stored.Items = []domain.Product{}
	}

	s.mu.Lock()
	s.state = domain.ReduceWishlist(s.state, domain.SetWishlistState{State: stored})
	s.mu.Unlock()
}
