package engine

import (
	"strings"
	"testing"

	"github.com/sandevgo/veractbot/internal/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		entities core.Entities
		expected int
	}{
		{"no entities", core.Entities{}, 0},
		{"valid category", core.Entities{Category: "Electronics"}, 0},
		{"invalid category", core.Entities{Category: "Gadgets"}, 1},
		{"lowercase category is invalid", core.Entities{Category: "electronics"}, 1},
		{"valid status", core.Entities{Status: "PAID"}, 0},
		{"invalid status", core.Entities{Status: "DONE"}, 1},
		{"both invalid", core.Entities{Category: "Gadgets", Status: "DONE"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(core.IntentResult{Entities: tt.entities})
			if len(errs) != tt.expected {
				t.Errorf("Validate() = %d errors (%v), want %d", len(errs), errs, tt.expected)
			}
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	errs := Validate(core.IntentResult{Entities: core.Entities{Category: "Gadgets"}})
	if len(errs) != 1 || !strings.Contains(errs[0], "Invalid category. Choose from:") {
		t.Errorf("unexpected category error: %v", errs)
	}

	errs = Validate(core.IntentResult{Entities: core.Entities{Status: "DONE"}})
	if len(errs) != 1 || !strings.Contains(errs[0], "Invalid status. Choose from:") {
		t.Errorf("unexpected status error: %v", errs)
	}
}
