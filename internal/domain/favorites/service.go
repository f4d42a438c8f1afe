// internal/domain/favorites/service.go
package favorites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

// Service handles the session-scoped favorited-product-id set.
// The persisted record is a JSON array of product ids, matching the original
// storefront's local-storage format.
type Service struct {
	store     storage.Store
	catalog   *catalog.Service
	notifier  notify.Notifier
	keyPrefix string
}

// NewService creates a new favorites service.
func NewService(store storage.Store, catalogSvc *catalog.Service, notifier notify.Notifier, keyPrefix string) *Service {
	return &Service{
		store:     store,
		catalog:   catalogSvc,
		notifier:  notifier,
		keyPrefix: keyPrefix,
	}
}

// Toggle adds the id when absent and removes it when present, persisting
// either way. The toggle itself never validates catalog membership; a known
// product gates only which notification is emitted. Returns whether the id
// is favorited after the call.
func (s *Service) Toggle(ctx context.Context, sessionID, productID string) bool {
	ids := s.load(ctx, sessionID)

	favorited := true
	idx := indexOf(ids, productID)
	if idx >= 0 {
		ids = append(ids[:idx], ids[idx+1:]...)
		favorited = false
	} else {
		ids = append(ids, productID)
	}
	s.persist(ctx, sessionID, ids)

	product, err := s.catalog.Get(productID)
	switch {
	case err != nil:
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindError,
			Message: fmt.Sprintf("Product %s is not available", productID),
		})
	case favorited:
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindFavorited,
			Message: fmt.Sprintf("Added %s to favorites", product.Name),
		})
	default:
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindUnfavorited,
			Message: fmt.Sprintf("Removed %s from favorites", product.Name),
		})
	}
	return favorited
}

// Has reports whether the id is currently favorited.
func (s *Service) Has(ctx context.Context, sessionID, productID string) bool {
	return indexOf(s.load(ctx, sessionID), productID) >= 0
}

// All returns the current members. Callers must not depend on the order.
func (s *Service) All(ctx context.Context, sessionID string) []string {
	return s.load(ctx, sessionID)
}

// Count returns the number of favorited ids.
func (s *Service) Count(ctx context.Context, sessionID string) int {
	return len(s.load(ctx, sessionID))
}

// Contains returns a membership predicate bound to the session's current
// favorites, for the catalog's favorites filter.
func (s *Service) Contains(ctx context.Context, sessionID string) func(string) bool {
	members := make(map[string]bool)
	for _, id := range s.load(ctx, sessionID) {
		members[id] = true
	}
	return func(id string) bool { return members[id] }
}

// Private helper methods

func (s *Service) key(sessionID string) string {
	return s.keyPrefix + ":" + sessionID
}

// load reads the persisted set. Storage failures and malformed records
// degrade to an empty set.
func (s *Service) load(ctx context.Context, sessionID string) []string {
	data, err := s.store.Load(ctx, s.key(sessionID))
	if err != nil {
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return []string{}
	}
	return ids
}

func (s *Service) persist(ctx context.Context, sessionID string, ids []string) {
	data, err := json.Marshal(ids)
	if err == nil {
		err = s.store.Save(ctx, s.key(sessionID), data)
	}
	if err != nil {
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindError,
			Message: "Failed to save favorites",
		})
	}
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
