package stockexception_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stockexception"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestException(t *testing.T) *stockexception.StockException {
	t.Helper()

	exception, err := stockexception.NewStockException(
		kernel.NewUUID(), "SKU-RED-M", "Red Shirt M", "Apparel",
		3, []string{"1001", "1002"}, "jane", "aisle 4 empty",
		time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return exception
}

func TestNewStockException(t *testing.T) {
	t.Run("should create valid exception with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		reportedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		exception, err := stockexception.NewStockException(
			id, "SKU-RED-M", "Red Shirt M", "Apparel",
			3, []string{"1001", "1002"}, "jane", "aisle 4 empty", reportedAt)

		require.NoError(t, err)
		require.NotNil(t, exception)
		assert.Equal(t, id, exception.ID())
		assert.Equal(t, "SKU-RED-M", exception.SKU())
		assert.Equal(t, "Red Shirt M", exception.ProductTitle())
		assert.Equal(t, "Apparel", exception.Category())
		assert.Equal(t, 3, exception.QtyShort())
		assert.Equal(t, []string{"1001", "1002"}, exception.OrderNumbers())
		assert.Equal(t, "jane", exception.ReportedBy())
		assert.Equal(t, reportedAt, exception.ReportedAt())
		assert.Equal(t, "aisle 4 empty", exception.Notes())
		assert.False(t, exception.IsResolved())
		assert.False(t, exception.IsOrderedFromCompany())
		assert.False(t, exception.IsNACancel())
		require.NoError(t, exception.Validate())
	})

	t.Run("should allow empty notes and product snapshot", func(t *testing.T) {
		exception, err := stockexception.NewStockException(
			kernel.NewUUID(), "SKU-RED-M", "", "",
			1, []string{"1001"}, "jane", "", time.Now())

		require.NoError(t, err)
		assert.Empty(t, exception.Notes())
		assert.Empty(t, exception.ProductTitle())
		assert.Empty(t, exception.Category())
	})

	t.Run("should reject zero UUID", func(t *testing.T) {
		exception, err := stockexception.NewStockException(
			kernel.UUID{}, "SKU-RED-M", "Red Shirt M", "Apparel",
			3, []string{"1001"}, "jane", "", time.Now())

		require.Error(t, err)
		assert.Nil(t, exception)
	})

	t.Run("should reject empty SKU", func(t *testing.T) {
		exception, err := stockexception.NewStockException(
			kernel.NewUUID(), "", "Red Shirt M", "Apparel",
			3, []string{"1001"}, "jane", "", time.Now())

		require.ErrorIs(t, err, stockexception.ErrSKUIsRequired)
		assert.Nil(t, exception)
	})

	t.Run("should reject non-positive quantity short", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			exception, err := stockexception.NewStockException(
				kernel.NewUUID(), "SKU-RED-M", "Red Shirt M", "Apparel",
				qty, []string{"1001"}, "jane", "", time.Now())

			require.Error(t, err)
			assert.Nil(t, exception)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "qtyShort")
		}
	})

	t.Run("should reject empty order numbers", func(t *testing.T) {
		exception, err := stockexception.NewStockException(
			kernel.NewUUID(), "SKU-RED-M", "Red Shirt M", "Apparel",
			3, nil, "jane", "", time.Now())

		require.ErrorIs(t, err, stockexception.ErrOrderNumbersAreRequired)
		assert.Nil(t, exception)
	})

	t.Run("should reject empty reporter", func(t *testing.T) {
		exception, err := stockexception.NewStockException(
			kernel.NewUUID(), "SKU-RED-M", "Red Shirt M", "Apparel",
			3, []string{"1001"}, "", "", time.Now())

		require.Error(t, err)
		assert.Nil(t, exception)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "reportedBy")
	})
}

func TestRestoreStockException(t *testing.T) {
	t.Run("should restore exception with resolution and flag state", func(t *testing.T) {
		id := kernel.NewUUID()
		reportedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		exception, err := stockexception.RestoreStockException(
			id, "SKU-RED-M", "Red Shirt M", "Apparel",
			3, []string{"1001"}, "jane", "restocked", reportedAt,
			true, true, false)

		require.NoError(t, err)
		require.NotNil(t, exception)
		assert.True(t, exception.IsResolved())
		assert.True(t, exception.IsOrderedFromCompany())
		assert.False(t, exception.IsNACancel())
		require.NoError(t, exception.Validate())
	})

	t.Run("should apply the same validation as the constructor", func(t *testing.T) {
		exception, err := stockexception.RestoreStockException(
			kernel.NewUUID(), "", "Red Shirt M", "Apparel",
			3, []string{"1001"}, "jane", "", time.Now(),
			false, false, false)

		require.ErrorIs(t, err, stockexception.ErrSKUIsRequired)
		assert.Nil(t, exception)
	})
}

func TestStockException_Validate(t *testing.T) {
	t.Run("should reject nil exception", func(t *testing.T) {
		var exception *stockexception.StockException
		assert.ErrorIs(t, exception.Validate(), stockexception.ErrStockExceptionIsNotConstructed)
	})

	t.Run("should reject exception not created via constructor", func(t *testing.T) {
		exception := &stockexception.StockException{}
		assert.ErrorIs(t, exception.Validate(), stockexception.ErrStockExceptionIsNotConstructed)
	})
}

func TestStockException_Resolve(t *testing.T) {
	t.Run("should mark resolved and append resolution note", func(t *testing.T) {
		exception := newTestException(t)

		exception.Resolve("mark", 2)

		assert.True(t, exception.IsResolved())
		assert.Equal(t, "aisle 4 empty\nResolved by mark (restored 2 item(s))", exception.Notes())
	})

	t.Run("should set resolution note directly when notes are empty", func(t *testing.T) {
		exception, err := stockexception.NewStockException(
			kernel.NewUUID(), "SKU-RED-M", "Red Shirt M", "Apparel",
			3, []string{"1001"}, "jane", "", time.Now())
		require.NoError(t, err)

		exception.Resolve("mark", 0)

		assert.Equal(t, "Resolved by mark (restored 0 item(s))", exception.Notes())
	})

	t.Run("should stay resolved when resolved again", func(t *testing.T) {
		exception := newTestException(t)

		exception.Resolve("mark", 2)
		exception.Resolve("dana", 0)

		assert.True(t, exception.IsResolved())
		assert.Contains(t, exception.Notes(), "Resolved by mark (restored 2 item(s))")
		assert.Contains(t, exception.Notes(), "Resolved by dana (restored 0 item(s))")
	})
}

func TestStockException_ToggleOrderedFromCompany(t *testing.T) {
	t.Run("should flip the flag and return the new value", func(t *testing.T) {
		exception := newTestException(t)

		assert.True(t, exception.ToggleOrderedFromCompany())
		assert.True(t, exception.IsOrderedFromCompany())

		assert.False(t, exception.ToggleOrderedFromCompany())
		assert.False(t, exception.IsOrderedFromCompany())
	})

	t.Run("should be independent of resolution", func(t *testing.T) {
		exception := newTestException(t)
		exception.Resolve("mark", 1)

		assert.True(t, exception.ToggleOrderedFromCompany())
		assert.True(t, exception.IsResolved())
	})
}

func TestStockException_ToggleNACancel(t *testing.T) {
	t.Run("should flip the flag and return the new value", func(t *testing.T) {
		exception := newTestException(t)

		assert.True(t, exception.ToggleNACancel())
		assert.True(t, exception.IsNACancel())

		assert.False(t, exception.ToggleNACancel())
		assert.False(t, exception.IsNACancel())
	})

	t.Run("should not affect the procurement flag", func(t *testing.T) {
		exception := newTestException(t)

		exception.ToggleNACancel()

		assert.False(t, exception.IsOrderedFromCompany())
	})
}
