package formatting_test

import (
	"math"
	"testing"

	"github.com/curiolabs/curio/pkg/formatting"
)

func TestHumanizePrice(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"zero", 0, 0},
		{"negative clamps to zero", -50, 0},
		{"under 100 rounds to nearest 10", 47, 50},
		{"under 1000 rounds to nearest 50", 342, 350},
		{"under 10000 rounds to nearest 100", 1234, 1200},
		{"under 100000 rounds to nearest 500", 12750, 13000},
		{"above 100000 rounds to nearest 1000", 123400, 123000},
		{"tier boundary 100", 100, 100},
		{"tier boundary 1000", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.HumanizePrice(tt.value); got != tt.want {
				t.Errorf("HumanizePrice(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, v := range []float64{3, 47, 95, 342, 975, 1234, 9951, 12750, 99750, 123400, 9_876_543} {
			once := formatting.HumanizePrice(v)
			twice := formatting.HumanizePrice(once)
			if once != twice {
				t.Errorf("HumanizePrice(HumanizePrice(%v)) = %v, want %v", v, twice, once)
			}
		}
	})

	t.Run("result is a multiple of the tier unit", func(t *testing.T) {
		cases := []struct {
			value float64
			unit  float64
		}{
			{63, 10},
			{544, 50},
			{6120, 100},
			{44444, 500},
			{250500, 1000},
		}
		for _, c := range cases {
			got := formatting.HumanizePrice(c.value)
			if math.Mod(got, c.unit) != 0 {
				t.Errorf("HumanizePrice(%v) = %v, not a multiple of %v", c.value, got, c.unit)
			}
		}
	})

	t.Run("nil pointer preserved", func(t *testing.T) {
		if formatting.HumanizePricePtr(nil) != nil {
			t.Error("HumanizePricePtr(nil) should stay nil")
		}
		v := 342.0
		got := formatting.HumanizePricePtr(&v)
		if got == nil || *got != 350 {
			t.Errorf("HumanizePricePtr(342) = %v, want 350", got)
		}
	})
}
