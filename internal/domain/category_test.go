package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCategoriesFromTags(t *testing.T) {
	categories, rest := SplitCategoriesFromTags([]string{"organic", "non-profit", "fair", "commercial"})

	require.Len(t, categories, 2)
	assert.Equal(t, CategoryIDNonProfit, categories[0].ID)
	assert.Equal(t, CategoryIDCommercial, categories[1].ID)
	assert.Equal(t, []string{"organic", "fair"}, rest)
}

func TestSplitCategoriesFromTagsNeverReturnsNilRest(t *testing.T) {
	_, rest := SplitCategoriesFromTags([]string{"non-profit", "commercial"})
	require.NotNil(t, rest)
	assert.Empty(t, rest)

	_, rest = SplitCategoriesFromTags(nil)
	assert.NotNil(t, rest)
}

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "non-profit", Category{ID: CategoryIDNonProfit}.Name())
	assert.Equal(t, "event", Category{ID: CategoryIDEvent}.Name())
	assert.Empty(t, Category{ID: "0000"}.Name())
}
