package engine

import (
	"fmt"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
)

// Validate runs the structural enumeration checks on extracted entities.
// Every violated constraint is reported; completeness checks live in the
// handlers.
func Validate(res core.IntentResult) []string {
	var errs []string

	if res.Entities.Category != "" && !core.IsValidCategory(res.Entities.Category) {
		errs = append(errs, fmt.Sprintf("Invalid category. Choose from: %s", strings.Join(core.ValidCategories, ", ")))
	}
	if res.Entities.Status != "" && !core.IsValidStatus(res.Entities.Status) {
		errs = append(errs, fmt.Sprintf("Invalid status. Choose from: %s", strings.Join(core.ValidStatuses, ", ")))
	}

	return errs
}
