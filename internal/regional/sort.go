package regional

import (
	"sort"

	"pricetrends/server/internal/models"
)

// SortLocalities returns a stably sorted copy. The input is never reordered,
// so sorting the same base again with any config is reproducible.
func SortLocalities(items []models.Locality, cfg *models.SortConfig) []models.Locality {
	out := make([]models.Locality, len(items))
	copy(out, items)
	if cfg == nil {
		return out
	}

	desc := cfg.Direction == models.Descending
	if cfg.Key.Numeric() {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := numericField(out[i], cfg.Key), numericField(out[j], cfg.Key)
			if desc {
				return a > b
			}
			return a < b
		})
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := stringField(out[i], cfg.Key), stringField(out[j], cfg.Key)
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}

// NextSortConfig applies a header click: the same key sorted ascending flips
// to descending, anything else starts ascending on the clicked key.
func NextSortConfig(current *models.SortConfig, key models.SortKey) models.SortConfig {
	if current != nil && current.Key == key && current.Direction == models.Ascending {
		return models.SortConfig{Key: key, Direction: models.Descending}
	}
	return models.SortConfig{Key: key, Direction: models.Ascending}
}

func numericField(l models.Locality, key models.SortKey) float64 {
	switch key {
	case models.SortByGrowth:
		return l.Growth
	case models.SortByAvgPrice:
		return l.AvgPrice
	}
	return 0
}

func stringField(l models.Locality, key models.SortKey) string {
	switch key {
	case models.SortByName:
		return l.Name
	case models.SortByCity:
		return l.City
	case models.SortByState:
		return l.State
	}
	return ""
}
