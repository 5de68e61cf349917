package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"professionals-api/internal/media"
	"professionals-api/internal/storage"

	"github.com/docker/go-units"
)

// UploadLimits bounds user uploads.
type UploadLimits struct {
	MaxBytes   int64
	MaxCVPages int
}

func (l UploadLimits) check(field string, data []byte) error {
	if len(data) == 0 {
		return fieldError(field, "file is empty")
	}
	if l.MaxBytes > 0 && int64(len(data)) > l.MaxBytes {
		return fieldError(field, fmt.Sprintf("file exceeds %s", units.HumanSize(float64(l.MaxBytes))))
	}
	return nil
}

// saveImage resizes data to spec and stores it under dir, returning the storage key.
func saveImage(ctx context.Context, files FileStore, limits UploadLimits, field, dir string, spec media.ImageSpec, data []byte) (string, error) {
	if err := limits.check(field, data); err != nil {
		return "", err
	}
	out, err := media.ProcessImage(data, spec)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) {
			return "", fieldError(field, "must be a jpeg, png, gif or webp image")
		}
		return "", fieldError(field, "image could not be processed")
	}
	key := media.NewKey(dir, ".webp")
	if err := files.Save(ctx, key, out); err != nil {
		return "", fmt.Errorf("failed to store %s: %w", field, err)
	}
	return key, nil
}

// removeFile deletes a replaced upload; failures are only logged.
func removeFile(ctx context.Context, files FileStore, key *string) {
	if key == nil || *key == "" {
		return
	}
	if err := files.Delete(ctx, *key); err != nil {
		log.Printf("Uploads: failed to delete %s: %v", *key, err)
	}
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// checkReferences verifies that optional sector, city and skill ids exist.
func checkReferences(ctx context.Context, refs storage.ReferenceRepository, sectorID, cityID *int64, skillIDs []int64) error {
	if sectorID != nil {
		if _, err := refs.GetSector(ctx, *sectorID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fieldError("sector_id", "unknown sector")
			}
			return MapRepoError(err, "checking sector")
		}
	}
	if cityID != nil {
		if _, err := refs.GetCity(ctx, *cityID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fieldError("city_id", "unknown city")
			}
			return MapRepoError(err, "checking city")
		}
	}
	if len(skillIDs) > 0 {
		n, err := refs.CountSkills(ctx, skillIDs)
		if err != nil {
			return MapRepoError(err, "checking skills")
		}
		if n != len(skillIDs) {
			return fieldError("skill_ids", "unknown skill")
		}
	}
	return nil
}
