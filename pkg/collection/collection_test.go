package collection_test

import (
	"strconv"
	"testing"

	"github.com/singitronic/storefront/pkg/collection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	out := collection.Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)
}

func TestFilter(t *testing.T) {
	out := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, out)
}

func TestGroupByPreservesFirstAppearanceOrder(t *testing.T) {
	type link struct {
		OrderID string
		Qty     int
	}
	links := []link{
		{"b", 1},
		{"a", 2},
		{"b", 3},
		{"c", 4},
		{"a", 5},
	}

	groups, order := collection.GroupBy(links, func(l link) string { return l.OrderID })

	require.Equal(t, []string{"b", "a", "c"}, order)
	assert.Len(t, groups["b"], 2)
	assert.Len(t, groups["a"], 2)
	assert.Len(t, groups["c"], 1)
	assert.Equal(t, 1, groups["b"][0].Qty)
	assert.Equal(t, 3, groups["b"][1].Qty)
}

func TestGroupByEmpty(t *testing.T) {
	groups, order := collection.GroupBy([]int(nil), func(n int) int { return n })
	assert.Empty(t, groups)
	assert.Nil(t, order)
}
