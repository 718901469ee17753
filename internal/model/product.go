package model

// Product represents a single listing owned by the artisan.
// Timestamps are ISO 8601 strings; UpdatedAt is never earlier than CreatedAt.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         string   `json:"price"` // decimal kept as string
	Category      string   `json:"category"`
	Image         string   `json:"image,omitempty"` // inline data URL
	Keywords      []string `json:"keywords"`
	Hashtags      []string `json:"hashtags"`
	SEOSuggestion string   `json:"seoSuggestion"`
	PricingTips   []string `json:"pricingTips"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	Views         int      `json:"views"`
}

// ProductPatch carries a partial update for a product. Nil fields are left
// unchanged by the merge.
type ProductPatch struct {
	Title         *string   `json:"title,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Price         *string   `json:"price,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Keywords      *[]string `json:"keywords,omitempty"`
	Hashtags      *[]string `json:"hashtags,omitempty"`
	SEOSuggestion *string   `json:"seoSuggestion,omitempty"`
	PricingTips   *[]string `json:"pricingTips,omitempty"`
}

// ProductFields holds the caller-supplied fields for a new product.
// Identifier, timestamps and the view counter are assigned by the store.
type ProductFields struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	Category      string   `json:"category"`
	Image         string   `json:"image,omitempty"`
	Keywords      []string `json:"keywords"`
	Hashtags      []string `json:"hashtags"`
	SEOSuggestion string   `json:"seoSuggestion"`
	PricingTips   []string `json:"pricingTips"`
}

// Categories is the fixed suggestion list shown to artisans. The category
// field itself stays free-form.
var Categories = []string{
	"Pottery & Ceramics",
	"Textiles & Weaving",
	"Jewelry & Accessories",
	"Woodwork & Carving",
	"Metalwork",
	"Paintings & Art",
	"Leather Goods",
	"Home Decor",
}
