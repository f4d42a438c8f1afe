// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/shoplight-backend/internal/domain/cart"
	"github.com/your-org/shoplight-backend/internal/domain/catalog"
	"github.com/your-org/shoplight-backend/internal/infrastructure/storage"
	"github.com/your-org/shoplight-backend/internal/pkg/apperrors"
	"github.com/your-org/shoplight-backend/internal/pkg/notify"
)

// TaxRate is the fixed simulated sales tax applied at checkout.
const TaxRate = 0.08

// SummaryLine is one order line resolved against the catalog.
type SummaryLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// OrderSummary is the derived checkout breakdown. Amounts are kept
// unrounded; rounding is a presentation concern.
type OrderSummary struct {
	Lines       []SummaryLine `json:"lines"`
	Subtotal    float64       `json:"subtotal"`
	Tax         float64       `json:"tax"`
	Total       float64       `json:"total"`
	OrderNumber string        `json:"order_number,omitempty"`
	ConfirmedAt *time.Time    `json:"confirmed_at,omitempty"`
}

// Service handles checkout business logic.
type Service struct {
	cartService *cart.Service
	catalog     *catalog.Service
	store       storage.Store
	notifier    notify.Notifier
	keyPrefix   string
}

// NewService creates a new checkout service. The store keeps the finalized
// summary of the session's last confirmed order so a receipt can be produced
// after the cart is cleared.
func NewService(cartService *cart.Service, catalogSvc *catalog.Service, store storage.Store, notifier notify.Notifier, keyPrefix string) *Service {
	return &Service{
		cartService: cartService,
		catalog:     catalogSvc,
		store:       store,
		notifier:    notifier,
		keyPrefix:   keyPrefix,
	}
}

// Summarize builds the order summary from the current cart snapshot. Lines
// whose product is no longer in the catalog are skipped. No side effects;
// repeated calls over an unchanged cart yield the same summary.
func (s *Service) Summarize(ctx context.Context, sessionID string) *OrderSummary {
	summary := &OrderSummary{Lines: []SummaryLine{}}

	for _, line := range s.cartService.Lines(ctx, sessionID) {
		product, err := s.catalog.Get(line.ProductID)
		if err != nil {
			continue
		}
		unit := product.EffectivePrice()
		summary.Lines = append(summary.Lines, SummaryLine{
			ProductID: line.ProductID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			LineTotal: unit * float64(line.Quantity),
		})
		summary.Subtotal += unit * float64(line.Quantity)
	}

	summary.Tax = summary.Subtotal * TaxRate
	summary.Total = summary.Subtotal + summary.Tax
	return summary
}

// IsEmpty reports whether the session's cart has no lines, so callers can
// refuse to confirm an empty order without inspecting cart internals.
func (s *Service) IsEmpty(ctx context.Context, sessionID string) bool {
	return s.cartService.IsEmpty(ctx, sessionID)
}

// Confirm simulates a successful payment. The summary is captured and
// stamped BEFORE the cart is cleared; clearing first would leave nothing to
// print on the receipt.
func (s *Service) Confirm(ctx context.Context, sessionID string) (*OrderSummary, error) {
	summary := s.Summarize(ctx, sessionID)

	now := time.Now().UTC()
	summary.OrderNumber = newOrderNumber()
	summary.ConfirmedAt = &now

	s.saveLastOrder(ctx, sessionID, summary)

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		return nil, apperrors.Wrap(err, "failed to clear cart after payment")
	}
	return summary, nil
}

// LastOrder returns the finalized summary of the session's most recent
// confirmed order.
func (s *Service) LastOrder(ctx context.Context, sessionID string) (*OrderSummary, error) {
	data, err := s.store.Load(ctx, s.key(sessionID))
	if err != nil {
		return nil, apperrors.NotFound("order", sessionID)
	}

	var summary OrderSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, apperrors.NotFound("order", sessionID)
	}
	return &summary, nil
}

// Private helper methods

func (s *Service) key(sessionID string) string {
	return s.keyPrefix + ":" + sessionID
}

func (s *Service) saveLastOrder(ctx context.Context, sessionID string, summary *OrderSummary) {
	data, err := json.Marshal(summary)
	if err == nil {
		err = s.store.Save(ctx, s.key(sessionID), data)
	}
	if err != nil {
		s.notifier.Notify(notify.Event{
			Kind:    notify.KindError,
			Message: "Failed to save order receipt",
		})
	}
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8]))
}
