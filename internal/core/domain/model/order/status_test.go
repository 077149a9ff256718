package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Open))
		assert.Equal(t, 2, int(order.Picking))
		assert.Equal(t, 3, int(order.ReadyToPack))
		assert.Equal(t, 4, int(order.Packed))
		assert.Equal(t, 5, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Open,
			order.Picking,
			order.ReadyToPack,
			order.Packed,
			order.Cancelled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Open,
			order.Picking,
			order.ReadyToPack,
			order.Packed,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return snake_case names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Open, "open"},
			{order.Picking, "picking"},
			{order.ReadyToPack, "ready_to_pack"},
			{order.Packed, "packed"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should return unknown for status value %d", int(status)), func(t *testing.T) {
				assert.Equal(t, "unknown", status.String())
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid status strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"open", order.Open},
			{"picking", order.Picking},
			{"ready_to_pack", order.ReadyToPack},
			{"packed", order.Packed},
			{"cancelled", order.Cancelled},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %q", tc.input), func(t *testing.T) {
				status, err := order.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unrecognized strings", func(t *testing.T) {
		invalidInputs := []string{"", "unknown", "OPEN", "ready-to-pack", "shipped"}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := order.StatusFromString(input)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, status)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid status", input))
			})
		}
	})

	t.Run("should round-trip with String", func(t *testing.T) {
		statuses := []order.Status{
			order.Open,
			order.Picking,
			order.ReadyToPack,
			order.Packed,
			order.Cancelled,
		}

		for _, status := range statuses {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_IsAllocatable(t *testing.T) {
	t.Run("should report Open and Picking as allocatable", func(t *testing.T) {
		assert.True(t, order.Open.IsAllocatable())
		assert.True(t, order.Picking.IsAllocatable())
	})

	t.Run("should report all other statuses as not allocatable", func(t *testing.T) {
		notAllocatable := []order.Status{
			order.Unknown,
			order.ReadyToPack,
			order.Packed,
			order.Cancelled,
			order.Status(100),
		}

		for _, status := range notAllocatable {
			assert.False(t, status.IsAllocatable(),
				"status %s should not be allocatable", status.String())
		}
	})
}

func TestStatus_StartPicking(t *testing.T) {
	t.Run("should allow transition from Open to Picking", func(t *testing.T) {
		newStatus, err := order.Open.StartPicking()

		require.NoError(t, err)
		assert.Equal(t, order.Picking, newStatus)
	})

	t.Run("should allow transition from Picking to Picking", func(t *testing.T) {
		newStatus, err := order.Picking.StartPicking()

		require.NoError(t, err)
		assert.Equal(t, order.Picking, newStatus)
	})

	t.Run("should reject transition from non-allocatable statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.ReadyToPack,
			order.Packed,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.StartPicking()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("%s is not a valid status to start picking", status.String()))
			})
		}
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("should allow transition from Picking to ReadyToPack", func(t *testing.T) {
		newStatus, err := order.Picking.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyToPack, newStatus)
	})

	t.Run("should allow transition from Open to ReadyToPack", func(t *testing.T) {
		// An order completed entirely by shortages never enters Picking.
		newStatus, err := order.Open.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyToPack, newStatus)
	})

	t.Run("should reject transition from non-allocatable statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.ReadyToPack,
			order.Packed,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.MarkReady()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("%s is not a valid status to mark ready", status.String()))
			})
		}
	})
}

func TestStatus_Pack(t *testing.T) {
	t.Run("should allow transition from ReadyToPack to Packed", func(t *testing.T) {
		newStatus, err := order.ReadyToPack.Pack()

		require.NoError(t, err)
		assert.Equal(t, order.Packed, newStatus)
	})

	t.Run("should reject transition from any other status", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Open,
			order.Picking,
			order.Packed,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Pack()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("%s is not a valid status to pack", status.String()))
			})
		}
	})
}

func TestStatus_RevertToPicking(t *testing.T) {
	t.Run("should allow transition from ReadyToPack to Picking", func(t *testing.T) {
		newStatus, err := order.ReadyToPack.RevertToPicking()

		require.NoError(t, err)
		assert.Equal(t, order.Picking, newStatus)
	})

	t.Run("should reject transition from any other status", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Open,
			order.Picking,
			order.Packed,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.RevertToPicking()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(),
					fmt.Sprintf("%s is not a valid status to revert to picking", status.String()))
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow cancellation from non-packed statuses", func(t *testing.T) {
		cancellable := []order.Status{
			order.Unknown,
			order.Open,
			order.Picking,
			order.ReadyToPack,
		}

		for _, status := range cancellable {
			t.Run(fmt.Sprintf("should allow cancellation from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, newStatus)
			})
		}
	})

	t.Run("should reject cancellation of a packed order", func(t *testing.T) {
		newStatus, err := order.Packed.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.Contains(t, err.Error(), "packed is not a valid status to cancel")
	})

	t.Run("should reject cancellation of an already cancelled order", func(t *testing.T) {
		newStatus, err := order.Cancelled.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.Contains(t, err.Error(), "cancelled is not a valid status to cancel")
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the happy-path workflow", func(t *testing.T) {
		// Open -> Picking -> ReadyToPack -> Packed
		status := order.Open

		status, err := status.StartPicking()
		require.NoError(t, err)
		assert.Equal(t, order.Picking, status)

		status, err = status.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyToPack, status)

		status, err = status.Pack()
		require.NoError(t, err)
		assert.Equal(t, order.Packed, status)
	})

	t.Run("should support the shortage-restoration loop", func(t *testing.T) {
		// ReadyToPack -> Picking -> ReadyToPack
		status := order.ReadyToPack

		status, err := status.RevertToPicking()
		require.NoError(t, err)
		assert.Equal(t, order.Picking, status)

		status, err = status.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyToPack, status)
	})

	t.Run("should not modify original status during transitions", func(t *testing.T) {
		originalStatus := order.Open

		newStatus, err := originalStatus.StartPicking()
		require.NoError(t, err)

		assert.Equal(t, order.Open, originalStatus)
		assert.Equal(t, order.Picking, newStatus)
	})
}
