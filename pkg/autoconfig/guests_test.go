// pkg/autoconfig/guests_test.go
package autoconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"furnishing-engine/pkg/catalog"
)

func TestAllowedGuestRange(t *testing.T) {
	rules := testRules()

	r := AllowedGuestRange(rules)
	assert.Equal(t, GuestRange{Min: 2, Max: 16}, r)
}

func TestAllowedGuestRange_DefensiveFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		global   catalog.GlobalValidation
		expected GuestRange
	}{
		{
			name:     "zero bounds fall back to positive floors",
			global:   catalog.GlobalValidation{},
			expected: GuestRange{Min: defaultMinGuests, Max: defaultMaxGuests},
		},
		{
			name:     "negative bounds fall back to positive floors",
			global:   catalog.GlobalValidation{MinGuests: -3, MaxGuests: -1},
			expected: GuestRange{Min: defaultMinGuests, Max: defaultMaxGuests},
		},
		{
			name:     "inverted bounds collapse to min",
			global:   catalog.GlobalValidation{MinGuests: 10, MaxGuests: 4},
			expected: GuestRange{Min: 10, Max: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := testRules()
			rules.Validation.Global = tt.global
			assert.Equal(t, tt.expected, AllowedGuestRange(rules))
		})
	}
}

func TestClampGuestCount(t *testing.T) {
	rules := testRules()

	assert.Equal(t, 2, ClampGuestCount(-5, rules))
	assert.Equal(t, 2, ClampGuestCount(1, rules))
	assert.Equal(t, 8, ClampGuestCount(8, rules))
	assert.Equal(t, 16, ClampGuestCount(50, rules))
}

func TestClampGuestCount_BoundedAndIdempotent(t *testing.T) {
	rules := testRules()
	r := AllowedGuestRange(rules)

	for desired := -10; desired <= 40; desired++ {
		clamped := ClampGuestCount(desired, rules)
		assert.GreaterOrEqual(t, clamped, r.Min)
		assert.LessOrEqual(t, clamped, r.Max)
		assert.Equal(t, clamped, ClampGuestCount(clamped, rules))
	}
}

func TestIsValidGuestCount(t *testing.T) {
	rules := testRules()

	assert.False(t, IsValidGuestCount(1, rules))
	assert.True(t, IsValidGuestCount(2, rules))
	assert.True(t, IsValidGuestCount(16, rules))
	assert.False(t, IsValidGuestCount(17, rules))
}

func TestIsValidSqftGuestCombination(t *testing.T) {
	rules := testRules()

	assert.True(t, IsValidSqftGuestCombination(2000, 8, rules))
	assert.False(t, IsValidSqftGuestCombination(300, 8, rules))
	assert.False(t, IsValidSqftGuestCombination(12000, 8, rules))
	assert.False(t, IsValidSqftGuestCombination(2000, 1, rules))

	// Zero sqft bounds are unconstrained.
	rules.Validation.Global.MinSqft = 0
	rules.Validation.Global.MaxSqft = 0
	assert.True(t, IsValidSqftGuestCombination(50, 8, rules))
}
