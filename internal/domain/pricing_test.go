package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		promoApplied bool
		expected     float64
	}{
		{"no promo keeps price", 45, false, 45},
		{"promo subtracts flat discount", 45, true, 35},
		{"promo on expensive service", 110, true, 100},
		{"promo floors at zero", 7, true, 0},
		{"promo on exactly discount price", 10, true, 0},
		{"zero price without promo", 0, false, 0},
		{"zero price with promo", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeTotal(tt.price, tt.promoApplied))
		})
	}
}

func TestIsPromoCodeValid(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"GLAMEO10", true},
		{"ab", false},
		{"abc", false},
		{"abcd", true},
		{"  abc  ", false}, // пробелы не считаются
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPromoCodeValid(tt.code))
		})
	}
}
