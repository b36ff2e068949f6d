package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/etwmath/internal/domain"
)

func TestPositive(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"single positive", []float64{5}, false},
		{"several positives", []float64{5, 200, 1999, 1}, false},
		{"fractional", []float64{0.0001, 5.5}, false},
		{"negative", []float64{-1}, true},
		{"zero", []float64{0}, true},
		{"negative among valid", []float64{5, 200, -999}, true},
		{"zero among valid", []float64{5, 0}, true},
		{"NaN", []float64{math.NaN()}, true},
		{"positive infinity", []float64{math.Inf(1)}, true},
		{"negative infinity", []float64{math.Inf(-1)}, true},
		{"no arguments", nil, true},
		{"empty slice", []float64{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Positive(tt.values...)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPositive_ReportsOffendingArgument(t *testing.T) {
	err := Positive(5, 200, -1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMsgInvalidInput)
	assert.Contains(t, err.Error(), "argument 3")
	assert.Contains(t, err.Error(), "greater than 0")
}

func TestParseNumber(t *testing.T) {
	t.Run("parses plain and grouped numbers", func(t *testing.T) {
		v, err := ParseNumber("505000")
		require.NoError(t, err)
		assert.Equal(t, 505000.0, v)

		v, err = ParseNumber(" 7,000,000 ")
		require.NoError(t, err)
		assert.Equal(t, 7000000.0, v)

		v, err = ParseNumber("5.5")
		require.NoError(t, err)
		assert.Equal(t, 5.5, v)
	})

	t.Run("rejects misplaced separators", func(t *testing.T) {
		for _, s := range []string{"1,2", ",100", "100,", "1,00,000", "7,000.000,5", "1,,000"} {
			_, err := ParseNumber(s)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", s)
		}

		v, err := ParseNumber("-1,234.5")
		require.NoError(t, err)
		assert.Equal(t, -1234.5, v)
	})

	t.Run("rejects non-numeric text", func(t *testing.T) {
		for _, s := range []string{"s", "", "12abc", "--1"} {
			_, err := ParseNumber(s)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "input %q", s)
		}
	})
}

func TestStruct(t *testing.T) {
	type sample struct {
		Format string  `validate:"oneof=text json"`
		Ratio  float64 `validate:"finite,gt=0"`
	}

	assert.NoError(t, Struct(sample{Format: "json", Ratio: 5.5}))

	err := Struct(sample{Format: "xml", Ratio: 5.5})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "format must be one of [text json]")

	err = Struct(sample{Format: "text", Ratio: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ratio must be greater than 0")
}
