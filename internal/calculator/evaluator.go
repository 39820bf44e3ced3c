package calculator

import (
	"math"
	"strings"
)

// Quality is the construction grade that scales a property estimate
type Quality string

const (
	QualityLow     Quality = "low"
	QualityAverage Quality = "average"
	QualityPremium Quality = "premium"
)

var qualityMultipliers = map[Quality]float64{
	QualityLow:     0.85,
	QualityAverage: 1.0,
	QualityPremium: 1.2,
}

// ParseQuality accepts low, average or premium in any case
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := qualityMultipliers[q]; !ok {
		return "", ErrUnknownQuality
	}
	return q, nil
}

// Multiplier returns the weight of a quality level; unknown levels weigh 1
func (q Quality) Multiplier() float64 {
	if m, ok := qualityMultipliers[q]; ok {
		return m
	}
	return 1.0
}

// DefaultBasePrice applies to cities missing from the base price table
const DefaultBasePrice = 7000

// BasePriceTable maps a city to its rupees-per-square-foot reference price
type BasePriceTable struct {
	Prices  map[string]float64 `json:"base_prices"`
	Default float64            `json:"default_base_price"`
}

func DefaultBasePrices() BasePriceTable {
	return BasePriceTable{
		Prices: map[string]float64{
			"Mumbai":    18000,
			"Delhi":     12000,
			"Bengaluru": 10000,
			"Pune":      9000,
			"Hyderabad": 8500,
			"Chennai":   8000,
			"Kolkata":   7500,
		},
		Default: DefaultBasePrice,
	}
}

// Estimate is a property valuation together with how it was derived
type Estimate struct {
	City       string  `json:"city"`
	BasePrice  float64 `json:"base_price"`
	Matched    bool    `json:"matched"`
	Area       float64 `json:"area"`
	Multiplier float64 `json:"multiplier"`
	Value      float64 `json:"value"`
}

// Evaluator estimates property values from a base price table. Lookups use
// trimmed lower-case keys.
type Evaluator struct {
	prices       map[string]float64
	defaultPrice float64
}

func NewEvaluator(table BasePriceTable) *Evaluator {
	prices := make(map[string]float64, len(table.Prices))
	for city, price := range table.Prices {
		prices[normalizeCity(city)] = price
	}
	def := table.Default
	if def <= 0 {
		def = DefaultBasePrice
	}
	return &Evaluator{prices: prices, defaultPrice: def}
}

// BasePrice looks up a city and falls back to the default price
func (e *Evaluator) BasePrice(city string) (float64, bool) {
	if price, ok := e.prices[normalizeCity(city)]; ok {
		return price, true
	}
	return e.defaultPrice, false
}

// Estimate returns round(base * area * multiplier). A blank city, a
// non-positive area or a non-positive multiplier is rejected before lookup.
func (e *Evaluator) Estimate(city string, area, multiplier float64) (*Estimate, error) {
	if strings.TrimSpace(city) == "" {
		return nil, invalid("city", msgEvaluatorInput)
	}
	if !(area > 0) || math.IsInf(area, 0) {
		return nil, invalid("area", msgEvaluatorInput)
	}
	if !(multiplier > 0) || math.IsInf(multiplier, 0) {
		return nil, invalid("quality", msgEvaluatorInput)
	}

	base, matched := e.BasePrice(city)
	return &Estimate{
		City:       strings.TrimSpace(city),
		BasePrice:  base,
		Matched:    matched,
		Area:       area,
		Multiplier: multiplier,
		Value:      math.Round(base * area * multiplier),
	}, nil
}

var defaultEvaluator = NewEvaluator(DefaultBasePrices())

// EstimatePropertyValue estimates against the built-in base price table
func EstimatePropertyValue(city string, area, multiplier float64) (float64, error) {
	est, err := defaultEvaluator.Estimate(city, area, multiplier)
	if err != nil {
		return 0, err
	}
	return est.Value, nil
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
