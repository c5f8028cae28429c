// Package pgcatalog reads the listing catalog and banner content from PostgreSQL.
package pgcatalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/domain"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	dombanner "github.com/kailas-cloud/propdex/internal/domain/search/banner"
	"github.com/kailas-cloud/propdex/internal/repository/listingdoc"
)

const schema = `
CREATE TABLE IF NOT EXISTS listings (
	id         TEXT PRIMARY KEY,
	doc        JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS banners (
	category   TEXT PRIMARY KEY,
	image      TEXT NOT NULL DEFAULT '',
	intro_text TEXT,
	page_title TEXT
)`

const (
	selectListings = `SELECT id, doc FROM listings ORDER BY id`
	selectBanner   = `SELECT image, COALESCE(intro_text, ''), COALESCE(page_title, '') FROM banners WHERE category = $1`
	upsertListing  = `INSERT INTO listings (id, doc, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`
	upsertBanner = `INSERT INTO banners (category, image, intro_text, page_title) VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		ON CONFLICT (category) DO UPDATE SET image = EXCLUDED.image, intro_text = EXCLUDED.intro_text, page_title = EXCLUDED.page_title`
)

// querier is the subset of *pgxpool.Pool the repository uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repo implements the catalog and banner readers on PostgreSQL.
type Repo struct {
	db     querier
	logger *zap.Logger
}

// New creates a PostgreSQL catalog repository.
func New(q querier, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{db: q, logger: logger}
}

// EnsureSchema creates the listings and banners tables if missing.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// ListListings returns every stored listing ordered by id. Rows whose
// document fails to decode are logged and skipped.
func (r *Repo) ListListings(ctx context.Context) ([]listing.Listing, error) {
	rows, err := r.db.Query(ctx, selectListings)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var out []listing.Listing
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		l, err := listingdoc.Unmarshal(doc)
		if err != nil {
			r.logger.Warn("skipping malformed listing", zap.String("id", id), zap.Error(err))
			continue
		}
		if l.ID == "" {
			l.ID = id
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return out, nil
}

// GetBanner returns the content for category c, or domain.ErrNotFound.
func (r *Repo) GetBanner(ctx context.Context, c dombanner.Category) (dombanner.Content, error) {
	var content dombanner.Content
	err := r.db.QueryRow(ctx, selectBanner, string(c)).Scan(&content.Image, &content.IntroText, &content.PageTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dombanner.Content{}, fmt.Errorf("banner %s: %w", c, domain.ErrNotFound)
		}
		return dombanner.Content{}, fmt.Errorf("get banner %s: %w", c, err)
	}
	return content, nil
}

// SaveListings upserts listings by id in a single transaction.
func (r *Repo) SaveListings(ctx context.Context, listings []listing.Listing) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		for _, l := range listings {
			if l.ID == "" {
				return fmt.Errorf("listing %q has no id", l.Title)
			}
			data, err := listingdoc.Marshal(l)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, upsertListing, l.ID, data); err != nil {
				return fmt.Errorf("upsert listing %s: %w", l.ID, err)
			}
		}
		return nil
	})
}

// SaveBanners upserts banner content by category in a single transaction.
func (r *Repo) SaveBanners(ctx context.Context, banners map[dombanner.Category]dombanner.Content) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		for c, content := range banners {
			if _, err := tx.Exec(ctx, upsertBanner, string(c), content.Image, content.IntroText, content.PageTitle); err != nil {
				return fmt.Errorf("upsert banner %s: %w", c, err)
			}
		}
		return nil
	})
}

// inTx runs fn in a transaction. Nothing fn wrote survives unless it returns nil.
func (r *Repo) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
