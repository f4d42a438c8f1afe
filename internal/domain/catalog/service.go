// internal/domain/catalog/service.go
package catalog

import (
	"sort"
	"strings"

	"github.com/your-org/shoplight-backend/internal/pkg/apperrors"
)

// Category filter values with special meaning.
const (
	CategoryAll       = "all"
	CategoryFavorites = "favorites"
)

// Supported sort keys.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// Service owns the immutable product catalog and derives filtered views of it.
type Service struct {
	products []Product
	byID     map[string]*Product
}

// NewService creates a catalog service over the given products. Catalog order
// is preserved and used as the default sort order.
func NewService(products []Product) *Service {
	s := &Service{
		products: products,
		byID:     make(map[string]*Product, len(products)),
	}
	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	return s
}

// Get retrieves a product by id.
func (s *Service) Get(id string) (*Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", id)
	}
	return p, nil
}

// All returns the full catalog in catalog order.
func (s *Service) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns the sorted unique category names.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for i := range s.products {
		if !seen[s.products[i].Category] {
			seen[s.products[i].Category] = true
			categories = append(categories, s.products[i].Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// ListRequest is the ephemeral filter state for a derived product list.
type ListRequest struct {
	Query    string `form:"q"`
	Category string `form:"category,default=all"`
	SortKey  string `form:"sort,default=default"`
}

// List derives the displayed product list from the catalog, the filter state
// and the favorite-membership predicate. Both the query and category
// predicates must hold. The result is never nil: an empty slice means "no
// products found", which callers can distinguish from a list that was never
// computed.
func (s *Service) List(req *ListRequest, isFavorite func(string) bool) []Product {
	query := strings.ToLower(strings.TrimSpace(req.Query))
	category := req.Category
	if category == "" {
		category = CategoryAll
	}

	list := make([]Product, 0, len(s.products))
	for i := range s.products {
		p := &s.products[i]
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesCategory(p, category, isFavorite) {
			continue
		}
		list = append(list, *p)
	}

	applySort(list, req.SortKey)
	return list
}

func matchesQuery(p *Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

func matchesCategory(p *Product, category string, isFavorite func(string) bool) bool {
	switch category {
	case CategoryAll:
		return true
	case CategoryFavorites:
		return isFavorite != nil && isFavorite(p.ID)
	default:
		return p.Category == category
	}
}

// applySort sorts the list in place. Sorting is stable so equal keys keep
// catalog order; "default" or an unknown key leaves catalog order untouched.
func applySort(list []Product, sortKey string) {
	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice() < list[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].EffectivePrice() > list[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	}
}
