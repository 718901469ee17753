package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"karigar-api/internal/model"
)

// Prompt context limits: only the newest products and the tail of the
// conversation are re-embedded in each chat prompt.
const (
	maxContextProducts = 3
	maxContextMessages = 5
)

func listingPrompt(title, description, price, category string) string {
	return fmt.Sprintf(`
You are an AI assistant helping local artisans create better product listings for online marketplaces.

Product Details:
- Title: %s
- Description: %s
- Price: %s
- Category: %s

Please generate a comprehensive product listing in JSON format with the following structure:
{
  "title": "Improved, SEO-friendly title (max 60 chars)",
  "description": "Enhanced, compelling product description highlighting unique features and craftsmanship",
  "keywords": ["relevant", "search", "keywords"],
  "hashtags": ["#relevant", "#hashtags", "#for", "#social", "#media"],
  "seo_suggestion": "Brief SEO improvement suggestion",
  "pricing_tips": ["tip1", "tip2", "tip3"]
}

Focus on:
- Highlighting traditional craftsmanship
- Using keywords buyers search for
- Emphasizing unique cultural value
- Making it marketplace-friendly
- Including emotional appeal

Return only valid JSON without any markdown formatting.`, title, description, price, category)
}

func tipsPrompt(category string, goals []string) string {
	return fmt.Sprintf(`
You are a business advisor for local artisans. Generate 5 practical business tips for an artisan selling %s products.

User goals: %s

Return a JSON array with this structure:
[
  {
    "id": "unique_id",
    "title": "Brief tip title",
    "description": "Detailed actionable advice",
    "category": "pricing|marketing|packaging|platform|general",
    "priority": "high|medium|low"
  }
]

Focus on:
- Practical, actionable advice
- Local market insights
- Online selling strategies
- Cost-effective solutions
- Cultural value preservation

Return only valid JSON array without markdown formatting.`, category, strings.Join(goals, ", "))
}

// defaultQuestions is used when the caller supplies no customer questions.
var defaultQuestions = []string{
	"Is this available for immediate delivery?",
	"Can you customize this product?",
	"What materials are used?",
	"Do you ship internationally?",
	"What is your return policy?",
}

func repliesPrompt(productType string, questions []string) string {
	if len(questions) == 0 {
		questions = defaultQuestions
	}
	return fmt.Sprintf(`
Generate professional customer service replies for an artisan selling %s products.

Questions to answer: %s

Return a JSON array with this structure:
[
  {
    "question": "customer question",
    "answer": "professional, friendly response",
    "category": "availability|customization|delivery|general"
  }
]

Make responses:
- Professional but warm
- Informative about artisan processes
- Emphasizing quality and craftsmanship
- Including typical timelines
- Culturally appropriate

Return only valid JSON array without markdown formatting.`, productType, strings.Join(questions, ", "))
}

func chatPrompt(message string, chatCtx model.ChatContext) string {
	products := chatCtx.Products
	if len(products) > maxContextProducts {
		products = products[:maxContextProducts]
	}
	productsJSON, _ := json.Marshal(products)

	previous := chatCtx.PreviousMessages
	if len(previous) > maxContextMessages {
		previous = previous[len(previous)-maxContextMessages:]
	}

	return fmt.Sprintf(`
You are Karigar, a helpful assistant for local artisans selling their products online.

Context:
- User's products: %s
- Previous conversation: %s

User message: %s

Provide helpful, specific advice about:
- Product optimization
- Marketing strategies
- Pricing guidance
- Platform recommendations
- Customer service
- Cultural preservation in business

Keep responses:
- Friendly and supportive
- Specific and actionable
- Under 200 words
- Focused on local artisan needs

Response:`, productsJSON, strings.Join(previous, "\n"), message)
}
