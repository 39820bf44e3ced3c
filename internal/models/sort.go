package models

import (
	"errors"
	"strings"
)

var (
	ErrUnknownSortKey       = errors.New("unknown sort key")
	ErrUnknownSortDirection = errors.New("unknown sort direction")
)

// SortKey names a Locality field the regional table can be ordered by
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCity     SortKey = "city"
	SortByGrowth   SortKey = "growth"
	SortByAvgPrice SortKey = "avgPrice"
	SortByState    SortKey = "state"
)

type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

type SortConfig struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// Numeric reports whether the key is compared as a number
func (k SortKey) Numeric() bool {
	return k == SortByGrowth || k == SortByAvgPrice
}

// ParseSortKey is case-insensitive and also accepts "avg_price"
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, nil
	case "city":
		return SortByCity, nil
	case "growth":
		return SortByGrowth, nil
	case "avgprice", "avg_price":
		return SortByAvgPrice, nil
	case "state":
		return SortByState, nil
	}
	return "", ErrUnknownSortKey
}

// ParseSortDirection accepts the long forms and asc/desc. Empty means ascending.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", ErrUnknownSortDirection
}
