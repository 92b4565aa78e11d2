package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasmi00/yatrimap-frontend/pkg/category"
)

func TestCatalogue_FixedOrder(t *testing.T) {
	names := make([]string, 0, len(category.Catalogue))
	for _, c := range category.Catalogue {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{
		"Trekking",
		"HimalayanTreks",
		"Lake and River",
		"Nature",
		"Camping",
		"Mountain Climbing",
		"Spiritual",
		"Adventure Sports",
	}, names)
}

func TestCountByCategory(t *testing.T) {
	counts := category.CountByCategory([]string{"Trekking", "Trekking", "Camping"})

	assert.Len(t, counts, len(category.Catalogue))
	assert.Equal(t, 2, counts["Trekking"])
	assert.Equal(t, 1, counts["Camping"])
	for _, c := range category.Catalogue {
		if c.Name != "Trekking" && c.Name != "Camping" {
			assert.Zero(t, counts[c.Name], c.Name)
		}
	}
}

func TestCountByCategory_IgnoresUnknownCategories(t *testing.T) {
	counts := category.CountByCategory([]string{"Trekking", "Skydiving", "", "Nature"})

	assert.Len(t, counts, len(category.Catalogue))
	assert.Equal(t, 2, counts.Total())
}

func TestCountByCategory_EmptyInput(t *testing.T) {
	counts := category.CountByCategory(nil)

	assert.Len(t, counts, len(category.Catalogue))
	assert.Zero(t, counts.Total())
}

func TestDefaultSelection_FirstNonEmpty(t *testing.T) {
	counts := category.CountByCategory([]string{"Trekking", "Trekking", "Camping"})
	assert.Equal(t, "Trekking", counts.DefaultSelection())

	counts = category.CountByCategory([]string{"Camping", "Spiritual"})
	assert.Equal(t, "Camping", counts.DefaultSelection())
}

func TestDefaultSelection_AllZeroFallsBackToFirst(t *testing.T) {
	counts := category.CountByCategory(nil)
	assert.Equal(t, "Trekking", counts.DefaultSelection())
}

func TestSelect(t *testing.T) {
	counts := category.CountByCategory([]string{"Nature"})

	assert.NoError(t, counts.Select("Nature"))
	assert.ErrorIs(t, counts.Select("Camping"), category.ErrNoDestinations)
	assert.ErrorIs(t, counts.Select("Skydiving"), category.ErrNoDestinations)
}
