package faqify

import (
	"context"
	"time"
)

// Collection is a saved set of FAQs together with the source it was
// generated from.
type Collection struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	SourceKind  SourceKind `json:"sourceKind"`
	Source      string     `json:"source"`
	Title       string     `json:"title"`
	ContentHash string     `json:"contentHash"`
	FAQs        []FAQ      `json:"faqs"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	if c.SourceKind == "" {
		return Errorf(EINVALID, "collection source kind required")
	}
	if len(c.FAQs) == 0 {
		return Errorf(EINVALID, "collection requires at least one faq")
	}
	for i := range c.FAQs {
		if err := c.FAQs[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CollectionService represents a service for managing saved collections.
type CollectionService interface {
	// CreateCollection creates a new collection and its FAQs.
	CreateCollection(ctx context.Context, c *Collection) error

	// FindCollectionByID retrieves a collection with its FAQs.
	// Returns ENOTFOUND if the collection does not exist.
	FindCollectionByID(ctx context.Context, id string) (*Collection, error)

	// FindCollections retrieves collections matching the filter, newest first.
	// FAQs are loaded for each returned collection.
	FindCollections(ctx context.Context, filter CollectionFilter) ([]*Collection, error)

	// DeleteCollection permanently removes a collection and its FAQs.
	// Returns ENOTFOUND if the collection does not exist.
	DeleteCollection(ctx context.Context, id string) error
}

// CollectionFilter represents a filter for FindCollections.
type CollectionFilter struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
