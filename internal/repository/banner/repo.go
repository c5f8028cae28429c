package banner

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/propdex/internal/db"
	"github.com/kailas-cloud/propdex/internal/domain"
	dombanner "github.com/kailas-cloud/propdex/internal/domain/search/banner"
)

const (
	fieldImage     = "image"
	fieldIntroText = "intro_text"
	fieldPageTitle = "page_title"
)

// store is the consumer interface for banner content (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
}

// Repo stores banner content as one hash per category.
type Repo struct {
	store  store
	prefix string
}

// New creates a banner repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// GetBanner returns the content for category c, or domain.ErrNotFound.
func (r *Repo) GetBanner(ctx context.Context, c dombanner.Category) (dombanner.Content, error) {
	fields, err := r.store.HGetAll(ctx, r.key(c))
	if err != nil {
		return dombanner.Content{}, fmt.Errorf("get banner %s: %w", c, err)
	}
	if len(fields) == 0 {
		return dombanner.Content{}, fmt.Errorf("banner %s: %w", c, domain.ErrNotFound)
	}
	return dombanner.Content{
		Image:     fields[fieldImage],
		IntroText: fields[fieldIntroText],
		PageTitle: fields[fieldPageTitle],
	}, nil
}

// SaveBanners writes banner content in one pipeline.
func (r *Repo) SaveBanners(ctx context.Context, banners map[dombanner.Category]dombanner.Content) error {
	if len(banners) == 0 {
		return nil
	}
	items := make([]db.HashSetItem, 0, len(banners))
	for c, content := range banners {
		items = append(items, db.HashSetItem{
			Key: r.key(c),
			Fields: map[string]string{
				fieldImage:     content.Image,
				fieldIntroText: content.IntroText,
				fieldPageTitle: content.PageTitle,
			},
		})
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("save banners: %w", err)
	}
	return nil
}

func (r *Repo) key(c dombanner.Category) string {
	return r.prefix + "banner:" + string(c)
}
