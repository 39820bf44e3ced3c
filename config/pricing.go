package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pricetrends/server/internal/calculator"
)

// LoadBasePrices returns the built-in base price table, or the table in path
// when one is given. Cities missing from the file keep their built-in price.
func LoadBasePrices(path string) (calculator.BasePriceTable, error) {
	table := calculator.DefaultBasePrices()
	if path == "" {
		return table, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return table, fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return table, fmt.Errorf("failed to read base price file: %v", err)
	}

	var override calculator.BasePriceTable
	if err := json.Unmarshal(data, &override); err != nil {
		return table, fmt.Errorf("failed to parse base price file: %v", err)
	}

	for city, price := range override.Prices {
		if price <= 0 {
			return table, fmt.Errorf("base price for %s must be positive, got %v", city, price)
		}
		for existing := range table.Prices {
			if strings.EqualFold(strings.TrimSpace(existing), strings.TrimSpace(city)) {
				delete(table.Prices, existing)
			}
		}
		table.Prices[city] = price
	}
	if override.Default > 0 {
		table.Default = override.Default
	}
	return table, nil
}
