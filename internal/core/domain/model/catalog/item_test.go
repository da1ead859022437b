package catalog_test

import (
	"testing"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create available item", func(t *testing.T) {
		item, err := catalog.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Tomato", "kg", 4000)

		require.NoError(t, err)
		assert.Equal(t, "Tomato", item.Title())
		assert.Equal(t, "kg", item.Unit())
		assert.Equal(t, int64(4000), item.PricePaise())
		assert.True(t, item.IsAvailable())
		require.NoError(t, item.Validate())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		testCases := []struct {
			name  string
			title string
			unit  string
			price int64
		}{
			{"empty title", "", "kg", 100},
			{"empty unit", "Tomato", "", 100},
			{"negative price", "Tomato", "kg", -1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := catalog.NewItem(kernel.NewUUID(), kernel.NewUUID(), tc.title, tc.unit, tc.price)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value item fails validation", func(t *testing.T) {
		var item catalog.Item

		require.ErrorIs(t, item.Validate(), catalog.ErrItemIsNotConstructed)
	})
}

func TestItem_Update(t *testing.T) {
	t.Run("should replace fields", func(t *testing.T) {
		item, err := catalog.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Tomato", "kg", 4000)
		require.NoError(t, err)

		require.NoError(t, item.Update("Cherry Tomato", "box", 9000))

		assert.Equal(t, "Cherry Tomato", item.Title())
		assert.Equal(t, "box", item.Unit())
		assert.Equal(t, int64(9000), item.PricePaise())
	})

	t.Run("should reject invalid update", func(t *testing.T) {
		item, err := catalog.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Tomato", "kg", 4000)
		require.NoError(t, err)

		require.Error(t, item.Update("", "kg", 4000))
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore availability flag", func(t *testing.T) {
		id := kernel.NewUUID()
		vendorID := kernel.NewUUID()

		item, err := catalog.RestoreItem(id, vendorID, "Tomato", "kg", 4000, false)

		require.NoError(t, err)
		assert.False(t, item.IsAvailable())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.VendorID().IsEqual(vendorID))
	})
}
