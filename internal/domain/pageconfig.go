package domain

import (
	"context"
	"math"
	"strings"

	"github.com/luckyspin-lab/backend/internal/entity"
	"github.com/luckyspin-lab/backend/pkg/errorx"
	"github.com/luckyspin-lab/backend/pkg/xcontext"
)

// Top-level keys of the update body that map to entity columns instead of the
// config bag.
var tenantFieldKeys = []string{"shop_name", "access_token", "is_active"}

// Keys the admin API never writes through a patch.
var reservedPatchKeys = []string{
	"id", "totalSpins", "totalPrizes", "totalUsers", "created_at", "updated_at",
}

// mergeConfig overlays the patch bag key by key over the stored bag. Arrays
// and nested objects are replaced wholesale per key, never concatenated, so
// concurrent writers to disjoint keys do not clobber each other.
func mergeConfig(existing, patch entity.Map) entity.Map {
	merged := entity.Map{}
	for key, value := range existing {
		merged[key] = value
	}
	for key, value := range patch {
		merged[key] = value
	}

	return merged
}

// validatePrizeTable gates writes of config.prizes: the rate sum must equal
// 1.0 within the configured tolerance, or the downstream draw engine cannot
// execute the table. Individual rates are deliberately not range-checked.
func validatePrizeTable(ctx context.Context, prizes []entity.Prize) error {
	var sum float64
	for _, prize := range prizes {
		sum += prize.Rate
	}

	tolerance := xcontext.Configs(ctx).Page.RateSumTolerance
	if math.Abs(sum-1.0) > tolerance {
		return errorx.New(errorx.BadRequest,
			"Prize rates must sum to 1.0, got %.4f", sum)
	}

	return nil
}

// normalizeShopPatterns trims and silently drops empty entries (the admin UI
// keeps scratch rows around), then requires at least one pattern to survive.
func normalizeShopPatterns(patterns []string) ([]string, error) {
	normalized := []string{}
	for _, pattern := range patterns {
		if trimmed := strings.TrimSpace(pattern); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}

	if len(normalized) == 0 {
		return nil, errorx.New(errorx.BadRequest,
			"Shop patterns must contain at least one non-empty entry")
	}

	return normalized, nil
}
