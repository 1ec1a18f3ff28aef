package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/llmstxt/pkg/domain"
)

// ErrNotFound returned when the requested record doesn't exist
var ErrNotFound = errors.New("not found")

// ErrExists returned on attempt to create a page with an existing id
var ErrExists = errors.New("already exists")

// pageRow is the pages table record
type pageRow struct {
	ID          string    `db:"id"`
	URI         string    `db:"uri"`
	Template    string    `db:"template"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	URL         string    `db:"url"`
	Modified    time.Time `db:"modified"`
	Listed      bool      `db:"listed"`
	Position    int       `db:"position"`
	CreatedAt   time.Time `db:"created_at"`
}

// PageRepository handles page-related database operations
type PageRepository struct {
	db *sqlx.DB
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

// ListedPages returns all listed pages in tree order
func (r *PageRepository) ListedPages(ctx context.Context) ([]domain.Page, error) {
	var rows []pageRow
	query := "SELECT * FROM pages WHERE listed = 1 ORDER BY position, id"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get listed pages: %w", err)
	}
	return toDomainPages(rows), nil
}

// All returns every page, listed or not, in tree order
func (r *PageRepository) All(ctx context.Context) ([]domain.Page, error) {
	var rows []pageRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM pages ORDER BY position, id"); err != nil {
		return nil, fmt.Errorf("get pages: %w", err)
	}
	return toDomainPages(rows), nil
}

// Get retrieves a page by id
func (r *PageRepository) Get(ctx context.Context, id string) (domain.Page, error) {
	var row pageRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM pages WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Page{}, fmt.Errorf("get page %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.Page{}, fmt.Errorf("get page %q: %w", id, err)
	}
	return row.toDomain(), nil
}

// Create inserts a new page. Zero position appends the page to the end of the tree,
// zero modified time is set to now.
func (r *PageRepository) Create(ctx context.Context, page domain.Page) (domain.Page, error) {
	row := fromDomainPage(page)
	if row.Modified.IsZero() {
		row.Modified = time.Now().UTC()
	}

	query := `
		INSERT INTO pages (id, uri, template, title, description, url, modified, listed, position)
		VALUES (:id, :uri, :template, :title, :description, :url, :modified, :listed,
			CASE WHEN :position > 0 THEN :position ELSE (SELECT COALESCE(MAX(position), 0) + 1 FROM pages) END)
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.Page{}, fmt.Errorf("create page %q: %w", page.ID, ErrExists)
		}
		return domain.Page{}, fmt.Errorf("create page %q: %w", page.ID, err)
	}
	return r.Get(ctx, page.ID)
}

// Update replaces page fields by id, zero modified time is set to now
func (r *PageRepository) Update(ctx context.Context, page domain.Page) (domain.Page, error) {
	row := fromDomainPage(page)
	if row.Modified.IsZero() {
		row.Modified = time.Now().UTC()
	}

	query := `
		UPDATE pages
		SET uri = :uri, template = :template, title = :title, description = :description,
		    url = :url, modified = :modified, listed = :listed, position = :position
		WHERE id = :id
	`
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return domain.Page{}, fmt.Errorf("update page %q: %w", page.ID, err)
	}
	if affected == 0 {
		return domain.Page{}, fmt.Errorf("update page %q: %w", page.ID, ErrNotFound)
	}
	return r.Get(ctx, page.ID)
}

// Upsert creates a page or updates the existing one with the same id, keeping its position
func (r *PageRepository) Upsert(ctx context.Context, page domain.Page) (domain.Page, error) {
	existing, err := r.Get(ctx, page.ID)
	if errors.Is(err, ErrNotFound) {
		return r.Create(ctx, page)
	}
	if err != nil {
		return domain.Page{}, fmt.Errorf("upsert page %q: %w", page.ID, err)
	}
	if page.Position == 0 {
		page.Position = existing.Position
	}
	return r.Update(ctx, page)
}

// Delete removes a page by id
func (r *PageRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete page %q: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete page %q: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns total and listed pages count
func (r *PageRepository) Count(ctx context.Context) (total, listed int, err error) {
	var res struct {
		Total  int `db:"total"`
		Listed int `db:"listed"`
	}
	query := "SELECT COUNT(*) AS total, COALESCE(SUM(listed), 0) AS listed FROM pages"
	if err := r.db.GetContext(ctx, &res, query); err != nil {
		return 0, 0, fmt.Errorf("count pages: %w", err)
	}
	return res.Total, res.Listed, nil
}

func (p pageRow) toDomain() domain.Page {
	return domain.Page{
		ID:          p.ID,
		URI:         p.URI,
		Template:    p.Template,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		Modified:    p.Modified.UTC(),
		Listed:      p.Listed,
		Position:    p.Position,
	}
}

func fromDomainPage(p domain.Page) pageRow {
	tmpl := p.Template
	if tmpl == "" {
		tmpl = "default"
	}
	return pageRow{
		ID:          p.ID,
		URI:         p.URI,
		Template:    tmpl,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		Modified:    p.Modified.UTC(),
		Listed:      p.Listed,
		Position:    p.Position,
	}
}

func toDomainPages(rows []pageRow) []domain.Page {
	res := make([]domain.Page, len(rows))
	for i, row := range rows {
		res[i] = row.toDomain()
	}
	return res
}
