package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ldino3121/faqify"
)

// Compile-time interface verification.
var _ faqify.CollectionService = (*CollectionService)(nil)

// CollectionService implements faqify.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection and its FAQs in one transaction.
func (s *CollectionService) CreateCollection(ctx context.Context, c *faqify.Collection) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO collections (id, name, source_kind, source, title, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, string(c.SourceKind), c.Source, c.Title, c.ContentHash,
		c.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, faq := range c.FAQs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO faqs (collection_id, position, question, answer)
			VALUES (?, ?, ?, ?)
		`, c.ID, i, faq.Question, faq.Answer); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindCollectionByID retrieves a collection with its FAQs.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*faqify.Collection, error) {
	collections, err := s.FindCollections(ctx, faqify.CollectionFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(collections) == 0 {
		return nil, faqify.Errorf(faqify.ENOTFOUND, "collection not found")
	}
	return collections[0], nil
}

// FindCollections retrieves collections matching the filter, newest first.
func (s *CollectionService) FindCollections(ctx context.Context, filter faqify.CollectionFilter) ([]*faqify.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_kind, source, title, content_hash, created_at FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*faqify.Collection
	for rows.Next() {
		var c faqify.Collection
		var kind, createdAt string

		if err := rows.Scan(&c.ID, &c.Name, &kind, &c.Source, &c.Title, &c.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		c.SourceKind = faqify.SourceKind(kind)

		if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		collections = append(collections, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, c := range collections {
		if c.FAQs, err = s.findFAQs(ctx, c.ID); err != nil {
			return nil, err
		}
	}

	return collections, nil
}

// findFAQs returns the FAQs of a collection in display order.
func (s *CollectionService) findFAQs(ctx context.Context, collectionID string) ([]faqify.FAQ, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question, answer
		FROM faqs
		WHERE collection_id = ?
		ORDER BY position
	`, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	var faqs []faqify.FAQ
	for rows.Next() {
		var faq faqify.FAQ
		if err := rows.Scan(&faq.Question, &faq.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

// DeleteCollection permanently removes a collection. FAQs are removed by
// the foreign key cascade.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return faqify.Errorf(faqify.ENOTFOUND, "collection not found")
	}

	return nil
}
