package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03", d.String())

	_, err = ParseDate("03-01-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_DaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "2025-01-01", "2025-01-01", 0},
		{"two days", "2025-01-01", "2025-01-03", 2},
		{"backwards", "2025-01-03", "2025-01-01", -2},
		{"across month", "2025-01-30", "2025-02-02", 3},
		{"leap year", "2024-02-28", "2024-03-01", 2},
		// В Чили переход на летнее время в сентябре - даты не должны "съедать" час
		{"across dst change", "2025-09-05", "2025-09-08", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseDate(tt.start).DaysUntil(MustParseDate(tt.end)))
		})
	}
}

func TestDate_DaysUntil_LongRanges(t *testing.T) {
	// 400 григорианских лет = 146097 дней, больше предела time.Duration
	start := MustParseDate("1700-01-01")
	assert.Equal(t, 146097, start.DaysUntil(MustParseDate("2100-01-01")))
	assert.Equal(t, -146097, MustParseDate("2100-01-01").DaysUntil(start))

	first := MustParseDate("0001-01-01")
	assert.Equal(t, 3652058, first.DaysUntil(MustParseDate("9999-12-31")))
}

func TestDate_FirstDayIsNotZero(t *testing.T) {
	d := MustParseDate("0001-01-01")
	assert.False(t, d.IsZero())
	assert.Equal(t, "0001-01-01", d.String())

	var unset Date
	assert.True(t, unset.IsZero())
	assert.True(t, unset.AddDays(3).IsZero())
}

func TestNewDateFromTime_DropsClock(t *testing.T) {
	loc := time.FixedZone("CLT", -3*60*60)
	d := NewDateFromTime(time.Date(2025, 3, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, "2025-03-10", d.String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		From Date `json:"from"`
		To   Date `json:"to"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2025-02-01","to":null}`), &p))
	assert.Equal(t, NewDate(2025, time.February, 1), p.From)
	assert.True(t, p.To.IsZero())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"2025-02-01","to":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"from":"02/01/2025"}`), &p))
}
