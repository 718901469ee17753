package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"karigar-api/internal/model"
)

// stripFences removes surrounding markdown code-fence markers from a raw
// model reply. Models asked for bare JSON still wrap it often enough that the
// parse boundary cannot trust the reply as-is.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

var (
	tipCategories   = map[string]bool{"pricing": true, "marketing": true, "packaging": true, "platform": true, "general": true}
	tipPriorities   = map[string]bool{"high": true, "medium": true, "low": true}
	replyCategories = map[string]bool{"availability": true, "customization": true, "delivery": true, "general": true}
)

// parseListing decodes and validates a listing reply.
func parseListing(raw string) (*model.ProductListing, error) {
	var listing model.ProductListing
	if err := json.Unmarshal([]byte(stripFences(raw)), &listing); err != nil {
		return nil, fmt.Errorf("reply is not valid JSON: %w", err)
	}
	if listing.Title == "" || listing.Description == "" {
		return nil, fmt.Errorf("listing reply missing title or description")
	}
	if listing.Keywords == nil {
		listing.Keywords = []string{}
	}
	if listing.Hashtags == nil {
		listing.Hashtags = []string{}
	}
	return &listing, nil
}

// parseTips decodes and validates a business-tips reply.
func parseTips(raw string) ([]model.BusinessTip, error) {
	var tips []model.BusinessTip
	if err := json.Unmarshal([]byte(stripFences(raw)), &tips); err != nil {
		return nil, fmt.Errorf("reply is not a valid JSON array: %w", err)
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("tips reply is empty")
	}
	for i, tip := range tips {
		if tip.Title == "" || tip.Description == "" {
			return nil, fmt.Errorf("tip %d missing title or description", i)
		}
		if !tipCategories[tip.Category] {
			return nil, fmt.Errorf("tip %d has unknown category %q", i, tip.Category)
		}
		if !tipPriorities[tip.Priority] {
			return nil, fmt.Errorf("tip %d has unknown priority %q", i, tip.Priority)
		}
	}
	return tips, nil
}

// parseReplies decodes and validates a customer-replies reply.
func parseReplies(raw string) ([]model.CustomerReply, error) {
	var replies []model.CustomerReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &replies); err != nil {
		return nil, fmt.Errorf("reply is not a valid JSON array: %w", err)
	}
	if len(replies) == 0 {
		return nil, fmt.Errorf("replies reply is empty")
	}
	for i, reply := range replies {
		if reply.Question == "" || reply.Answer == "" {
			return nil, fmt.Errorf("reply %d missing question or answer", i)
		}
		if !replyCategories[reply.Category] {
			return nil, fmt.Errorf("reply %d has unknown category %q", i, reply.Category)
		}
	}
	return replies, nil
}
