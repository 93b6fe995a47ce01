package validator

import (
	"testing"

	domainerrors "pillmate/internal/domain/errors"
	"pillmate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reading struct {
	WeightG float64 `json:"weightG" validate:"gte=-100000,lte=100000"`
}

type bulkRequest struct {
	Serial   string     `json:"serial" validate:"required"`
	Readings []*reading `json:"readings" validate:"required,min=1,max=1000,dive"`
	Status   string     `json:"status,omitempty" validate:"omitempty,oneof=done error"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid request", func(t *testing.T) {
		req := &bulkRequest{Serial: "PM-1", Readings: []*reading{{WeightG: 10}}}

		assert.NoError(t, v.Validate(req))
	})

	t.Run("violations use json field paths", func(t *testing.T) {
		req := &bulkRequest{Readings: []*reading{{WeightG: 10}, {WeightG: 200000}}, Status: "pending"}

		err := v.Validate(req)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))

		fields := map[string]string{}
		for _, violation := range validationErr.Violations() {
			fields[violation.Field] = violation.Reason
		}
		assert.Equal(t, "is required", fields["serial"])
		assert.Equal(t, "must be less than or equal to 100000", fields["readings[1].weightG"])
		assert.Equal(t, "must be one of done error", fields["status"])
	})

	t.Run("empty readings", func(t *testing.T) {
		err := v.Validate(&bulkRequest{Serial: "PM-1", Readings: []*reading{}})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "readings", validationErr.Violations()[0].Field)
	})
}
