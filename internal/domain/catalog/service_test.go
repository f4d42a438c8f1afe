package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	sale := 24.99
	return []Product{
		{ID: "p1", Name: "Linen Classic Shirt", Price: 29.99, SalePrice: &sale, Category: "Clothing", Description: "Lightweight linen shirt.", Rating: 4.5},
		{ID: "p2", Name: "Everyday Sneakers", Price: 64.99, Category: "Shoes", Description: "Comfortable sneakers.", Rating: 4.2},
		{ID: "p3", Name: "Minimalist Watch", Price: 89.00, Category: "Accessories", Description: "Slim profile watch.", Rating: 4.8},
		{ID: "p4", Name: "Canvas Tote Bag", Price: 19.99, Category: "Accessories", Description: "Spacious tote for errands.", Rating: 4.0},
	}
}

func ids(list []Product) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func TestEffectivePrice(t *testing.T) {
	products := testProducts()
	assert.Equal(t, 24.99, products[0].EffectivePrice())
	assert.Equal(t, 64.99, products[1].EffectivePrice())
	assert.True(t, products[0].IsOnSale())
	assert.False(t, products[1].IsOnSale())
}

func TestGet(t *testing.T) {
	svc := NewService(testProducts())

	p, err := svc.Get("p3")
	require.NoError(t, err)
	assert.Equal(t, "Minimalist Watch", p.Name)

	_, err = svc.Get("missing")
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	svc := NewService(testProducts())
	assert.Equal(t, []string{"Accessories", "Clothing", "Shoes"}, svc.Categories())
}

func TestList_QueryMatchesNameOrDescription(t *testing.T) {
	svc := NewService(testProducts())

	// Case-insensitive name match.
	list := svc.List(&ListRequest{Query: "LINEN"}, nil)
	assert.Equal(t, []string{"p1"}, ids(list))

	// Description match.
	list = svc.List(&ListRequest{Query: "errands"}, nil)
	assert.Equal(t, []string{"p4"}, ids(list))

	// Empty query matches everything.
	list = svc.List(&ListRequest{}, nil)
	assert.Len(t, list, 4)
}

func TestList_CategoryFilter(t *testing.T) {
	svc := NewService(testProducts())

	list := svc.List(&ListRequest{Category: "Accessories"}, nil)
	assert.Equal(t, []string{"p3", "p4"}, ids(list))

	list = svc.List(&ListRequest{Category: CategoryAll}, nil)
	assert.Len(t, list, 4)
}

func TestList_FavoritesCategory(t *testing.T) {
	svc := NewService(testProducts())
	favs := map[string]bool{"p2": true, "p4": true}
	isFav := func(id string) bool { return favs[id] }

	list := svc.List(&ListRequest{Category: CategoryFavorites}, isFav)
	assert.Equal(t, []string{"p2", "p4"}, ids(list))

	// No favorites yields an empty, non-nil result.
	list = svc.List(&ListRequest{Category: CategoryFavorites}, func(string) bool { return false })
	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestList_QueryAndCategoryBothApply(t *testing.T) {
	svc := NewService(testProducts())

	list := svc.List(&ListRequest{Query: "watch", Category: "Clothing"}, nil)
	assert.Empty(t, list)

	list = svc.List(&ListRequest{Query: "watch", Category: "Accessories"}, nil)
	assert.Equal(t, []string{"p3"}, ids(list))
}

func TestList_SortByEffectivePrice(t *testing.T) {
	svc := NewService(testProducts())

	asc := svc.List(&ListRequest{SortKey: SortPriceAsc}, nil)
	// p1 sorts by its sale price 24.99, not list price 29.99.
	assert.Equal(t, []string{"p4", "p1", "p2", "p3"}, ids(asc))

	desc := svc.List(&ListRequest{SortKey: SortPriceDesc}, nil)
	assert.Equal(t, []string{"p3", "p2", "p1", "p4"}, ids(desc))
}

func TestList_SortDescIsReverseOfAscWithoutTies(t *testing.T) {
	svc := NewService(testProducts())

	asc := ids(svc.List(&ListRequest{SortKey: SortPriceAsc}, nil))
	desc := ids(svc.List(&ListRequest{SortKey: SortPriceDesc}, nil))

	require.Equal(t, len(asc), len(desc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestList_SortByRatingDescending(t *testing.T) {
	svc := NewService(testProducts())
	list := svc.List(&ListRequest{SortKey: SortRating}, nil)
	assert.Equal(t, []string{"p3", "p1", "p2", "p4"}, ids(list))
}

func TestList_SortStability(t *testing.T) {
	tied := []Product{
		{ID: "a", Name: "A", Price: 10, Category: "X"},
		{ID: "b", Name: "B", Price: 10, Category: "X"},
		{ID: "c", Name: "C", Price: 10, Category: "X"},
	}
	svc := NewService(tied)
	list := svc.List(&ListRequest{SortKey: SortPriceAsc}, nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(list))
}

func TestList_DefaultKeepsCatalogOrder(t *testing.T) {
	svc := NewService(testProducts())
	list := svc.List(&ListRequest{SortKey: SortDefault}, nil)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(list))
}
