package pricing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manuelContrerasDev/enap-reservas-sub001/internal/domain"
	"github.com/manuelContrerasDev/enap-reservas-sub001/pkg/types"
)

func TestCountDays(t *testing.T) {
	tests := []struct {
		start      string
		end        string
		convention domain.DayCountConvention
		want       int
	}{
		{"2025-01-01", "2025-01-03", domain.DayCountInclusive, 3},
		{"2025-01-01", "2025-01-03", domain.DayCountExclusive, 2},
		{"2025-01-01", "2025-01-01", domain.DayCountInclusive, 1},
		{"2025-01-01", "2025-01-01", domain.DayCountExclusive, 0},
		{"2025-02-27", "2025-03-02", domain.DayCountInclusive, 4},
		{"2025-12-30", "2026-01-02", domain.DayCountExclusive, 3},
		{"2025-01-03", "2025-01-01", domain.DayCountInclusive, -1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s_%s", tt.start, tt.end, tt.convention), func(t *testing.T) {
			got := CountDays(types.MustParseDate(tt.start), types.MustParseDate(tt.end), tt.convention)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReasonOf(t *testing.T) {
	assert.Equal(t, ReasonNone, ReasonOf(nil))
	assert.Equal(t, ReasonNone, ReasonOf(errors.New("boom")))
	assert.Equal(t, ReasonCapacityExceeded, ReasonOf(invalid(ErrCapacityExceeded, "11 > 10")))
	assert.Equal(t, ReasonMissingTariffField, ReasonOf(fmt.Errorf("wrapped: %w", invalid(ErrMissingTariffField, "x"))))
	assert.False(t, IsInvalid(errors.New("boom")))
}

func TestInvalidError_Message(t *testing.T) {
	assert.Equal(t, "pricing: empty party", (&InvalidError{Kind: ErrEmptyParty}).Error())
	assert.Equal(t, "pricing: below minimum stay: 2 days", invalid(ErrBelowMinimumStay, "%d days", 2).Error())
}
