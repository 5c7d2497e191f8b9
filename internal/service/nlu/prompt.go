package nlu

import (
	"fmt"
	"strings"

	"github.com/sandevgo/veractbot/internal/core"
)

const promptTemplate = `You are an intent classifier for a sales chatbot. Analyze the user's message and extract:
1. Intent (one of: search_product, get_product_details, create_product, update_product, search_sales,
   create_sale, update_sale, get_analytics, get_recommendations, vendor_query, general_chat)
2. Entities (product names, categories, IDs, prices, dates, customer IDs, statuses)

Valid categories: %s
Valid payment statuses: %s

Current conversation context:
%s

Respond ONLY with a JSON object in this format:
{
  "intent": "intent_name",
  "entities": {
    "product_name": "...",
    "category": "...",
    "product_id": "...",
    "price_min": number,
    "price_max": number,
    "rating_min": number,
    "customer_id": "...",
    "sale_id": "...",
    "status": "...",
    "vendor_id": "...",
    "vendor_name": "...",
    "limit": number
  },
  "requires_clarification": false,
  "clarification_needed": []
}`

func classifierPrompt(contextJSON string) string {
	return fmt.Sprintf(promptTemplate,
		strings.Join(core.ValidCategories, ", "),
		strings.Join(core.ValidStatuses, ", "),
		contextJSON,
	)
}
