package store

import (
	"context"
	"encoding/json"

	"karigar-api/internal/model"
	"karigar-api/pkg/uid"
)

// loadProducts decodes the product collection, falling back to an empty slice
// when nothing is persisted and resetting the collection when the blob is
// corrupted.
func (s *Store) loadProducts(ctx context.Context) ([]model.Product, error) {
	raw, err := s.read(ctx, keyProducts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		if resetErr := s.resetCorrupted(ctx, keyProducts, err); resetErr != nil {
			return nil, resetErr
		}
		return []model.Product{}, nil
	}
	return products, nil
}

// SaveProduct appends a new product with a generated identifier, fresh
// timestamps and a zero view counter, and fires the product_created event.
func (s *Store) SaveProduct(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	product := model.Product{
		ID:            uid.New(),
		Title:         fields.Title,
		Description:   fields.Description,
		Price:         fields.Price,
		Category:      fields.Category,
		Image:         fields.Image,
		Keywords:      fields.Keywords,
		Hashtags:      fields.Hashtags,
		SEOSuggestion: fields.SEOSuggestion,
		PricingTips:   fields.PricingTips,
		CreatedAt:     now,
		UpdatedAt:     now,
		Views:         0,
	}
	if product.Keywords == nil {
		product.Keywords = []string{}
	}
	if product.Hashtags == nil {
		product.Hashtags = []string{}
	}
	if product.PricingTips == nil {
		product.PricingTips = []string{}
	}

	products = append(products, product)
	if err := s.write(ctx, keyProducts, products); err != nil {
		return nil, err
	}

	if err := s.applyEvent(ctx, model.EventProductCreated); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts returns the product collection in insertion order.
func (s *Store) GetProducts(ctx context.Context) ([]model.Product, error) {
	return s.loadProducts(ctx)
}

// UpdateProduct merges the patch over the stored record and refreshes
// UpdatedAt. Returns nil without error when the id is unknown. Does not fire
// analytics events: only creation, views and chats are tracked.
func (s *Store) UpdateProduct(ctx context.Context, id string, patch model.ProductPatch) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range products {
		if products[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	p := &products[index]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Keywords != nil {
		p.Keywords = *patch.Keywords
	}
	if patch.Hashtags != nil {
		p.Hashtags = *patch.Hashtags
	}
	if patch.SEOSuggestion != nil {
		p.SEOSuggestion = *patch.SEOSuggestion
	}
	if patch.PricingTips != nil {
		p.PricingTips = *patch.PricingTips
	}
	p.UpdatedAt = s.timestamp()

	if err := s.write(ctx, keyProducts, products); err != nil {
		return nil, err
	}
	updated := products[index]
	return &updated, nil
}

// DeleteProduct removes a product by id. Returns whether a record was
// actually removed.
func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return false, err
	}

	filtered := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return false, nil
	}
	if filtered == nil {
		filtered = []model.Product{}
	}

	if err := s.write(ctx, keyProducts, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// IncrementProductViews bumps the view counter and fires the product_viewed
// event. Silently no-ops when the id is unknown.
func (s *Store) IncrementProductViews(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.loadProducts(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			products[i].Views++
			if err := s.write(ctx, keyProducts, products); err != nil {
				return err
			}
			return s.applyEvent(ctx, model.EventProductViewed)
		}
	}
	return nil
}
