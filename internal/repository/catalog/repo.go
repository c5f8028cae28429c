package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/propdex/internal/db"
	"github.com/kailas-cloud/propdex/internal/domain/listing"
	"github.com/kailas-cloud/propdex/internal/repository/listingdoc"
)

const batchSize = 200

// store is the consumer interface for the listing catalog (ISP).
type store interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error
	Del(ctx context.Context, key string) error
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
}

// Repo reads and writes listings stored as JSON documents in Redis/Valkey.
type Repo struct {
	store  store
	prefix string
	logger *zap.Logger
}

// New creates a catalog repository. prefix namespaces every key ("propdex:").
func New(s store, prefix string, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{store: s, prefix: prefix, logger: logger}
}

// ListListings returns every stored listing ordered by key. Documents that
// fail to decode are logged and skipped.
func (r *Repo) ListListings(ctx context.Context) ([]listing.Listing, error) {
	keys, err := r.store.Scan(ctx, r.listingKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan listings: %w", err)
	}
	slices.Sort(keys)

	out := make([]listing.Listing, 0, len(keys))
	for chunk := range slices.Chunk(keys, batchSize) {
		docs, err := r.store.JSONGetMulti(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("get listings: %w", err)
		}
		for i, raw := range docs {
			if raw == nil {
				continue
			}
			l, err := listingdoc.Unmarshal(raw)
			if err != nil {
				r.logger.Warn("skipping malformed listing", zap.String("key", chunk[i]), zap.Error(err))
				continue
			}
			if l.ID == "" {
				l.ID = strings.TrimPrefix(chunk[i], r.listingKey(""))
			}
			out = append(out, l)
		}
	}
	return out, nil
}

// SaveListings writes listings and bumps the catalog version.
func (r *Repo) SaveListings(ctx context.Context, listings []listing.Listing) error {
	items := make([]db.JSONSetItem, 0, len(listings))
	for _, l := range listings {
		if l.ID == "" {
			return fmt.Errorf("listing %q has no id", l.Title)
		}
		data, err := listingdoc.Marshal(l)
		if err != nil {
			return err
		}
		items = append(items, db.JSONSetItem{Key: r.listingKey(l.ID), Path: "$", Data: data})
	}

	for chunk := range slices.Chunk(items, batchSize) {
		if err := r.store.JSONSetMulti(ctx, chunk); err != nil {
			return fmt.Errorf("save listings: %w", err)
		}
	}
	_, err := r.BumpVersion(ctx)
	return err
}

// DeleteListing removes a listing and bumps the catalog version.
func (r *Repo) DeleteListing(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.listingKey(id)); err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	_, err := r.BumpVersion(ctx)
	return err
}

// Version returns the catalog version counter; 0 when nothing was ever written.
func (r *Repo) Version(ctx context.Context) (int64, error) {
	raw, err := r.store.Get(ctx, r.versionKey())
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get catalog version: %w", err)
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse catalog version %q: %w", raw, err)
	}
	return v, nil
}

// BumpVersion increments the catalog version so readers reload.
func (r *Repo) BumpVersion(ctx context.Context) (int64, error) {
	v, err := r.store.IncrBy(ctx, r.versionKey(), 1)
	if err != nil {
		return 0, fmt.Errorf("bump catalog version: %w", err)
	}
	return v, nil
}

func (r *Repo) listingKey(id string) string {
	return r.prefix + "listing:" + id
}

func (r *Repo) versionKey() string {
	return r.prefix + "catalog:version"
}
