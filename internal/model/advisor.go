package model

// ProductListing is the structured reply for listing generation.
type ProductListing struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Keywords      []string `json:"keywords"`
	Hashtags      []string `json:"hashtags"`
	SEOSuggestion string   `json:"seo_suggestion"`
	PricingTips   []string `json:"pricing_tips,omitempty"`
}

// BusinessTip is one actionable piece of advice for the artisan.
type BusinessTip struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"` // pricing|marketing|packaging|platform|general
	Priority    string `json:"priority"` // high|medium|low
}

// CustomerReply is a canned question/answer pair for customer service.
type CustomerReply struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"` // availability|customization|delivery|general
}

// ChatContext carries the store data re-embedded in every open-ended chat
// prompt; the service side keeps no session state.
type ChatContext struct {
	Products         []Product
	PreviousMessages []string
}
