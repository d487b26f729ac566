package listview

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Name     string
	City     string
	Category string
	Status   string
}

var testListings = []listing{
	{Name: "Green Acres", City: "Jaipur", Category: "residential", Status: "available"},
	{Name: "Sunset Plaza", City: "Jaipur", Category: "commercial", Status: "sold"},
	{Name: "River Fields", City: "Ajmer", Category: "agricultural", Status: "available"},
	{Name: "Hilltop Villas", City: "Udaipur", Category: "residential", Status: "reserved"},
	{Name: "Market Square", City: "Jaipur", Category: "commercial", Status: "available"},
}

var listingSelectors = map[string]FieldSelector[listing]{
	"category": func(l listing) string { return l.Category },
	"status":   func(l listing) string { return l.Status },
	"city":     func(l listing) string { return l.City },
}

func matchListing(l listing, q string) bool {
	q = strings.ToLower(q)

	return strings.Contains(strings.ToLower(l.Name), q) ||
		strings.Contains(strings.ToLower(l.City), q)
}

func TestFilterByField(t *testing.T) {
	got := Filter(testListings, Filters{
		Fields: map[string]string{"status": "available"},
	}, listingSelectors, matchListing)

	require.Len(t, got, 3)
	for _, l := range got {
		assert.Equal(t, "available", l.Status)
	}
}

func TestFilterAllIsIdentity(t *testing.T) {
	for _, value := range []string{"", "all", "All", "ALL"} {
		got := Filter(testListings, Filters{
			Fields: map[string]string{"status": value},
		}, listingSelectors, matchListing)

		assert.Equal(t, testListings, got, "value %q should not filter", value)
	}
}

func TestFilterCombinesFieldsAndSearch(t *testing.T) {
	got := Filter(testListings, Filters{
		Search: "jaipur",
		Fields: map[string]string{"category": "commercial"},
	}, listingSelectors, matchListing)

	require.Len(t, got, 2)
	assert.Equal(t, "Sunset Plaza", got[0].Name)
	assert.Equal(t, "Market Square", got[1].Name)
}

func TestFilterNoMatchReturnsEmptyNonNil(t *testing.T) {
	got := Filter(testListings, Filters{Search: "nowhere"}, listingSelectors, matchListing)

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginateConcatenation(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	const size = 5
	var joined []int
	first := Paginate(items, 1, size)
	for page := 1; page <= first.TotalPages; page++ {
		joined = append(joined, Paginate(items, page, size).Items...)
	}

	assert.Equal(t, items, joined)
	assert.Equal(t, 5, first.TotalPages)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	low := Paginate(items, 0, 2)
	assert.Equal(t, 1, low.Number)
	assert.Equal(t, []int{1, 2}, low.Items)

	high := Paginate(items, 99, 2)
	assert.Equal(t, 3, high.Number)
	assert.Equal(t, []int{5}, high.Items)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate([]int{}, 1, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestPaginateNonPositiveSizeReturnsEverything(t *testing.T) {
	items := []int{1, 2, 3}
	page := Paginate(items, 1, 0)

	assert.Equal(t, items, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestViewFilterChangeResetsPage(t *testing.T) {
	items := make([]listing, 30)
	for i := range items {
		status := "available"
		if i%2 == 0 {
			status = "sold"
		}
		items[i] = listing{Name: "Plot " + strconv.Itoa(i), Status: status}
	}

	view := NewView(items, 10, listingSelectors, matchListing)
	view.SetPage(3)
	require.Equal(t, 3, view.Page().Number)

	view.SetField("status", "sold")
	assert.Equal(t, 1, view.Page().Number)
	for _, l := range view.Page().Items {
		assert.Equal(t, "sold", l.Status)
	}

	view.SetPage(2)
	require.Equal(t, 2, view.Page().Number)

	view.SetSearch("Plot 1")
	assert.Equal(t, 1, view.Page().Number)
}

func TestViewSameFilterValueKeepsPage(t *testing.T) {
	items := make([]listing, 30)
	for i := range items {
		items[i] = listing{Name: "Plot " + strconv.Itoa(i), Status: "available"}
	}

	view := NewView(items, 10, listingSelectors, matchListing)
	view.SetField("status", "available")
	view.SetPage(2)

	view.SetField("status", "available")
	assert.Equal(t, 2, view.Page().Number)
}

func TestFiltersIsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.True(t, Filters{Fields: map[string]string{"status": "all"}}.IsZero())
	assert.False(t, Filters{Search: "x"}.IsZero())
	assert.False(t, Filters{Fields: map[string]string{"status": "sold"}}.IsZero())
}
