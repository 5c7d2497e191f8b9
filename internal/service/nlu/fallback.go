package nlu

import (
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
)

// Keyword sets for the deterministic fallback classifier. Matching is
// substring containment over the lowercased input, first hit wins.
var fallbackRules = []struct {
	words  []string
	intent core.Intent
}{
	{[]string{"search", "find", "show", "look", "product"}, core.IntentSearchProduct},
	{[]string{"sale", "order", "purchase", "transaction"}, core.IntentSearchSales},
	{[]string{"recommend", "suggest", "best", "top"}, core.IntentGetRecommendations},
	{[]string{"analytics", "report", "summary", "stats"}, core.IntentGetAnalytics},
	{[]string{"vendor", "supplier"}, core.IntentVendorQuery},
}

// Fallback classifies a turn without the external service. It is pure: the
// same text always yields the same result, independent of session state.
func Fallback(text string) core.IntentResult {
	lower := strings.ToLower(text)

	intent := core.IntentGeneralChat
	for _, rule := range fallbackRules {
		if containsAny(lower, rule.words) {
			intent = rule.intent
			break
		}
	}

	if intent == core.IntentGeneralChat && containsAny(lower, []string{"create", "add"}) {
		switch {
		case strings.Contains(lower, "product"):
			intent = core.IntentCreateProduct
		case strings.Contains(lower, "sale"):
			intent = core.IntentCreateSale
		}
	}

	return core.IntentResult{Intent: intent}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
