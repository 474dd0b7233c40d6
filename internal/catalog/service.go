package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"plancompare-backend/internal/shared/metrics"
	"plancompare-backend/internal/shared/storage/object"
	"plancompare-backend/internal/shared/telemetry"
)

// ImportResult summarizes one feed import.
type ImportResult struct {
	StorageKey string
	Imported   int
	ByCategory map[Category]int
}

// Service contains business logic for browsing and importing the plan catalog.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// ListPlans returns the plans of one category, or of every category when cat is empty.
func (s *Service) ListPlans(ctx context.Context, cat Category) ([]PlanRecord, error) {
	if cat != "" {
		if !cat.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, cat)
		}
		return s.Repo.List(ctx, cat)
	}

	out := []PlanRecord{}
	for _, c := range Categories {
		plans, err := s.Repo.List(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, plans...)
	}
	return out, nil
}

// GetPlan returns a single plan.
func (s *Service) GetPlan(ctx context.Context, id string) (PlanRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PlanRecord{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// UploadFeed stores an uploaded feed document and imports it.
func (s *Service) UploadFeed(ctx context.Context, owner, fileName string, r io.Reader) (ImportResult, error) {
	if strings.TrimSpace(fileName) == "" {
		return ImportResult{}, ErrInvalidInput
	}
	key, size, err := s.Store.Save(ctx, owner, fileName, r)
	if err != nil {
		metrics.IncCatalogImport("error")
		return ImportResult{}, fmt.Errorf("store feed: %w", err)
	}
	telemetry.Info("catalog.feed_stored", map[string]any{"storage_key": key, "size_bytes": size, "owner": owner})
	return s.ImportFeed(ctx, key)
}

// ImportFeed decodes a stored feed and upserts every plan in it. Nothing is written
// unless the whole feed is valid.
func (s *Service) ImportFeed(ctx context.Context, storageKey string) (ImportResult, error) {
	storageKey = strings.TrimSpace(storageKey)
	if storageKey == "" {
		return ImportResult{}, ErrInvalidInput
	}

	result, err := s.importFeed(ctx, storageKey)
	if err != nil {
		metrics.IncCatalogImport("error")
		telemetry.Warn("catalog.import_failed", map[string]any{"storage_key": storageKey, "err": err})
		return ImportResult{}, err
	}

	metrics.IncCatalogImport("ok")
	telemetry.Info("catalog.import_complete", map[string]any{"storage_key": storageKey, "imported": result.Imported})
	return result, nil
}

func (s *Service) importFeed(ctx context.Context, storageKey string) (ImportResult, error) {
	rc, err := s.Store.Open(ctx, storageKey)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: open feed %s: %v", ErrNotFound, storageKey, err)
	}
	defer rc.Close()

	plans, err := DecodeFeed(rc)
	if err != nil {
		return ImportResult{}, err
	}
	if len(plans) == 0 {
		return ImportResult{}, fmt.Errorf("%w: feed has no plans", ErrInvalidFeed)
	}
	if err := s.Repo.Upsert(ctx, plans); err != nil {
		return ImportResult{}, fmt.Errorf("upsert feed: %w", err)
	}

	byCategory := make(map[Category]int)
	for _, p := range plans {
		byCategory[p.Category]++
	}
	return ImportResult{StorageKey: storageKey, Imported: len(plans), ByCategory: byCategory}, nil
}

// SeedIfEmpty loads the seed catalog when the repo holds no plans at all.
func (s *Service) SeedIfEmpty(ctx context.Context, seed *Catalog) (bool, error) {
	existing, err := s.ListPlans(ctx, "")
	if err != nil {
		return false, err
	}
	if len(existing) > 0 || seed.Len() == 0 {
		return false, nil
	}
	if err := s.Repo.Upsert(ctx, seed.All()); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	telemetry.Info("catalog.seeded", map[string]any{"plans": seed.Len()})
	return true, nil
}

// IsClientError reports whether err stems from caller input rather than the backend.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidFeed)
}
