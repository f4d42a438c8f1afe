// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/apperrors"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

// Service handles cart business logic for a session-scoped cart.
type Service struct {
	store     storage.Store
	catalog   *catalog.Service
	notifier  notify.Notifier
	keyPrefix string
}

// NewService creates a new cart service.
func NewService(store storage.Store, catalogSvc *catalog.Service, notifier notify.Notifier, keyPrefix string) *Service {
	return &Service{
		store:     store,
		catalog:   catalogSvc,
		notifier:  notifier,
		keyPrefix: keyPrefix,
	}
}

// Add puts quantity units of a product into the cart. An unknown product is
// a no-op apart from an error notification. An existing line is incremented;
// otherwise a new line is created. The total is recomputed from scratch and
// the cart persisted afterward.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) error {
	product, err := s.catalog.Get(productID)
	if err != nil {
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindError,
			Message: fmt.Sprintf("Product %s is not available", productID),
		})
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}

	record := s.load(ctx, sessionID)
	if line := findLine(record, productID); line != nil {
		line.Quantity += quantity
	} else {
		record.Items = append(record.Items, Line{ProductID: productID, Quantity: quantity})
	}
	s.recomputeTotal(record)
	s.persist(ctx, sessionID, record)

	s.notifier.Notify(notify.Event{
		Kind:    notify.KindAdded,
		Message: fmt.Sprintf("Added %s to cart!", product.Name),
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line. Quantities below 1
// are clamped to 1, never rejected. A missing line is an error.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	record := s.load(ctx, sessionID)
	line := findLine(record, productID)
	if line == nil {
		return apperrors.NotFound("cart item", productID)
	}

	if quantity < 1 {
		quantity = 1
	}
	line.Quantity = quantity
	s.recomputeTotal(record)
	s.persist(ctx, sessionID, record)
	return nil
}

// Remove deletes a line from the cart. Removing an absent product is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) error {
	record := s.load(ctx, sessionID)
	if findLine(record, productID) == nil {
		return nil
	}

	items := record.Items[:0]
	for _, line := range record.Items {
		if line.ProductID != productID {
			items = append(items, line)
		}
	}
	record.Items = items
	s.recomputeTotal(record)
	s.persist(ctx, sessionID, record)

	message := fmt.Sprintf("Removed %s from cart", productID)
	if product, err := s.catalog.Get(productID); err == nil {
		message = fmt.Sprintf("Removed %s from cart", product.Name)
	}
	s.notifier.Notify(notify.Event{Kind: notify.KindRemoved, Message: message})
	return nil
}

// Clear empties the cart and persists the empty state.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	record := &Record{Items: []Line{}, Total: 0}
	s.persist(ctx, sessionID, record)
	return nil
}

// Get returns the cart joined with product details. Lines whose product is
// no longer in the catalog are skipped in the view.
func (s *Service) Get(ctx context.Context, sessionID string) *View {
	record := s.load(ctx, sessionID)

	view := &View{Items: []LineView{}, Total: record.Total}
	for _, line := range record.Items {
		view.ItemCount += line.Quantity
		product, err := s.catalog.Get(line.ProductID)
		if err != nil {
			continue
		}
		unit := product.EffectivePrice()
		view.Items = append(view.Items, LineView{
			ProductID: line.ProductID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			LineTotal: unit * float64(line.Quantity),
		})
	}
	return view
}

// Lines returns a snapshot of the raw cart lines.
func (s *Service) Lines(ctx context.Context, sessionID string) []Line {
	record := s.load(ctx, sessionID)
	out := make([]Line, len(record.Items))
	copy(out, record.Items)
	return out
}

// ItemCount returns the sum of all line quantities, derived from the lines
// on every call rather than memoized separately.
func (s *Service) ItemCount(ctx context.Context, sessionID string) int {
	count := 0
	for _, line := range s.load(ctx, sessionID).Items {
		count += line.Quantity
	}
	return count
}

// Total returns the maintained cart total.
func (s *Service) Total(ctx context.Context, sessionID string) float64 {
	return s.load(ctx, sessionID).Total
}

// IsEmpty reports whether the cart has no lines.
func (s *Service) IsEmpty(ctx context.Context, sessionID string) bool {
	return len(s.load(ctx, sessionID).Items) == 0
}

// Private helper methods

func (s *Service) key(sessionID string) string {
	return s.keyPrefix + ":" + sessionID
}

// load reads the persisted cart. Any storage failure or malformed record
// degrades to an empty cart; nothing propagates to the caller.
func (s *Service) load(ctx context.Context, sessionID string) *Record {
	empty := &Record{Items: []Line{}, Total: 0}

	data, err := s.store.Load(ctx, s.key(sessionID))
	if err != nil {
		return empty
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return empty
	}
	if record.Items == nil {
		record.Items = []Line{}
	}
	return &record
}

// persist writes the cart. A storage failure degrades to an error
// notification; the in-memory result of the mutation already happened.
func (s *Service) persist(ctx context.Context, sessionID string, record *Record) {
	data, err := json.Marshal(record)
	if err == nil {
		err = s.store.Save(ctx, s.key(sessionID), data)
	}
	if err != nil {
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindError,
			Message: "Failed to save cart",
		})
	}
}

// recomputeTotal rebuilds the total from scratch over all lines using the
// catalog's current effective prices, so a stale price captured at add time
// can never drift the total. Lines for unknown products contribute nothing.
func (s *Service) recomputeTotal(record *Record) {
	total := 0.0
	for _, line := range record.Items {
		product, err := s.catalog.Get(line.ProductID)
		if err != nil {
			continue
		}
		total += product.EffectivePrice() * float64(line.Quantity)
	}
	record.Total = total
}

func findLine(record *Record, productID string) *Line {
	for i := range record.Items {
		if record.Items[i].ProductID == productID {
			return &record.Items[i]
		}
	}
	return nil
}
