package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/llmstxt/pkg/domain"
)

type siteRow struct {
	Title           string `db:"title"`
	URL             string `db:"url"`
	Description     string `db:"description"`
	MetaDescription string `db:"meta_description"`
	LLMsDescription string `db:"llms_description"`
}

// SiteRepository handles the single site metadata record
type SiteRepository struct {
	db *sqlx.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *sqlx.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// Get returns site metadata
func (r *SiteRepository) Get(ctx context.Context) (domain.Site, error) {
	var row siteRow
	query := "SELECT title, url, description, meta_description, llms_description FROM site WHERE id = 1"
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return domain.Site{}, fmt.Errorf("get site: %w", err)
	}
	return domain.Site(row), nil
}

// Update replaces site metadata
func (r *SiteRepository) Update(ctx context.Context, site domain.Site) error {
	query := `
		INSERT INTO site (id, title, url, description, meta_description, llms_description, updated_at)
		VALUES (1, :title, :url, :description, :meta_description, :llms_description, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title, url = excluded.url, description = excluded.description,
			meta_description = excluded.meta_description, llms_description = excluded.llms_description,
			updated_at = excluded.updated_at
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, siteRow(site))
		return err
	})
	if err != nil {
		return fmt.Errorf("update site: %w", err)
	}
	return nil
}
