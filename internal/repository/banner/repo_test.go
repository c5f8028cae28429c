package banner

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/propdex/internal/db"
	"github.com/kailas-cloud/propdex/internal/domain"
	dombanner "github.com/kailas-cloud/propdex/internal/domain/search/banner"
)

func TestGetBanner_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, key string) (map[string]string, error) {
		if key != "propdex:banner:apartment" {
			t.Errorf("unexpected key: %s", key)
		}
		return map[string]string{"image": "/img/apt.jpg", "intro_text": "Homes"}, nil
	}

	got, err := repo.GetBanner(context.Background(), dombanner.Apartment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := dombanner.Content{Image: "/img/apt.jpg", IntroText: "Homes"}
	if got != want {
		t.Errorf("GetBanner() = %+v, want %+v", got, want)
	}
}

func TestGetBanner_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetBanner(context.Background(), dombanner.SCO)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetBanner_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hgetAllFn = func(_ context.Context, _ string) (map[string]string, error) {
		return nil, errors.New("connection lost")
	}

	_, err := repo.GetBanner(context.Background(), dombanner.Default)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestSaveBanners(t *testing.T) {
	repo, ms := newTestRepo(t)

	var items []db.HashSetItem
	ms.hsetMultiFn = func(_ context.Context, in []db.HashSetItem) error {
		items = in
		return nil
	}

	err := repo.SaveBanners(context.Background(), map[dombanner.Category]dombanner.Content{
		dombanner.Retail: {Image: "/img/retail.jpg", PageTitle: "Shops"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Key != "propdex:banner:retail" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].Fields["page_title"] != "Shops" || items[0].Fields["intro_text"] != "" {
		t.Errorf("unexpected fields: %v", items[0].Fields)
	}
}

func TestSaveBanners_Empty(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.hsetMultiFn = func(_ context.Context, _ []db.HashSetItem) error {
		t.Error("no write expected")
		return nil
	}
	if err := repo.SaveBanners(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
