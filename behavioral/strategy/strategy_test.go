package strategy_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gopatterns/behavioral/strategy"
)

func TestValues_Filter(t *testing.T) {
	tests := []struct {
		name string
		s    strategy.FilterStrategy
		want strategy.Values
	}{
		{"non-negative", strategy.NonNegative{}, strategy.Values{3, 2, 4}},
		{"even", strategy.Even{}, strategy.Values{2, 4}},
		{"func", strategy.FilterFunc(func(v int) bool { return v < 0 }), strategy.Values{-1, -5}},
		{"none", strategy.FilterFunc(func(int) bool { return false }), strategy.Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := strategy.Values{-1, 3, 2, 4, -5}
			vs.Filter(tt.s)
			if diff := cmp.Diff(tt.want, vs); diff != "" {
				t.Errorf("Filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Strategies compose by chaining filters.
func TestValues_FilterTwice(t *testing.T) {
	vs := strategy.Values{-4, -1, 3, 2, 4, -5}
	vs.Filter(strategy.NonNegative{})
	vs.Filter(strategy.Even{})
	assert.Equal(t, strategy.Values{2, 4}, vs)
}

func TestEven_Negative(t *testing.T) {
	assert.True(t, strategy.Even{}.Keep(-2))
	assert.False(t, strategy.Even{}.Keep(-3))
}

func TestVehicles(t *testing.T) {
	assert.Equal(t, "Special drive logic", strategy.NewSportsVehicle().Drive())
	assert.Equal(t, "Normal drive logic", strategy.NewPassengerVehicle().Drive())
	assert.Equal(t, "Special drive logic", strategy.NewOffRoadVehicle().Drive())
	assert.Equal(t, "Normal drive logic", strategy.NewVehicle("truck", strategy.NormalDrive{}).Drive())
}

func ExampleDemo() {
	_ = strategy.Demo(os.Stdout)
	// Output:
	// strategy.NonNegative: [3 2 4]
	// strategy.Even: [2 4]
	// Special drive logic
	// Normal drive logic
	// Special drive logic
}
