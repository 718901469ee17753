package advisor

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"karigar-api/internal/model"
	"karigar-api/pkg/uid"
)

// Client builds natural-language prompts from store data, sends them to the
// Gemini API and parses the textual replies into typed records. No retries,
// no backoff, no caching: a second request fired before the first resolves
// runs independently.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates an advisory client. Returns ErrNotConfigured when apiKey
// is empty.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client, model: modelName}, nil
}

// generate sends one prompt and returns the raw text completion.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

// GenerateProductListing asks the model for an improved listing for the given
// product fields and parses the JSON reply.
func (c *Client) GenerateProductListing(ctx context.Context, title, description, price, category string) (*model.ProductListing, error) {
	raw, err := c.generate(ctx, listingPrompt(title, description, price, category))
	if err != nil {
		log.Printf("[Advisor] listing generation failed: %v", err)
		return nil, &GenerationError{Message: "Failed to generate product listing. Please try again.", Err: err}
	}

	listing, err := parseListing(raw)
	if err != nil {
		log.Printf("[Advisor] listing reply rejected: %v", err)
		return nil, &GenerationError{Message: "Failed to generate product listing. Please try again.", Err: err}
	}
	return listing, nil
}

// GenerateBusinessTips asks the model for practical advice for an artisan
// selling products of the given category.
func (c *Client) GenerateBusinessTips(ctx context.Context, category string, goals []string) ([]model.BusinessTip, error) {
	raw, err := c.generate(ctx, tipsPrompt(category, goals))
	if err != nil {
		log.Printf("[Advisor] tip generation failed: %v", err)
		return nil, &GenerationError{Message: "Failed to generate business tips. Please try again.", Err: err}
	}

	tips, err := parseTips(raw)
	if err != nil {
		log.Printf("[Advisor] tips reply rejected: %v", err)
		return nil, &GenerationError{Message: "Failed to generate business tips. Please try again.", Err: err}
	}
	for i := range tips {
		if tips[i].ID == "" {
			tips[i].ID = uid.New()
		}
	}
	return tips, nil
}

// GenerateCustomerReplies asks the model for canned customer-service answers.
// When questions is empty a default question set is used.
func (c *Client) GenerateCustomerReplies(ctx context.Context, productType string, questions []string) ([]model.CustomerReply, error) {
	raw, err := c.generate(ctx, repliesPrompt(productType, questions))
	if err != nil {
		log.Printf("[Advisor] reply generation failed: %v", err)
		return nil, &GenerationError{Message: "Failed to generate customer replies. Please try again.", Err: err}
	}

	replies, err := parseReplies(raw)
	if err != nil {
		log.Printf("[Advisor] replies reply rejected: %v", err)
		return nil, &GenerationError{Message: "Failed to generate customer replies. Please try again.", Err: err}
	}
	return replies, nil
}

// Chat sends an open-ended message with the caller's store context re-embedded
// in the prompt and returns the cleaned text verbatim.
func (c *Client) Chat(ctx context.Context, message string, chatCtx model.ChatContext) (string, error) {
	raw, err := c.generate(ctx, chatPrompt(message, chatCtx))
	if err != nil {
		log.Printf("[Advisor] chat failed: %v", err)
		return "", &GenerationError{Message: "Failed to get chat response. Please try again.", Err: err}
	}
	return stripFences(raw), nil
}
