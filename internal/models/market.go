package models

import (
	"errors"
	"strings"
)

var ErrUnknownWindow = errors.New("unknown trend window")

// TrendWindow selects the reporting horizon of a price series
type TrendWindow string

const (
	Window1Y TrendWindow = "1Y"
	Window3Y TrendWindow = "3Y"
	Window5Y TrendWindow = "5Y"
)

// TrendWindows lists the windows in display order
var TrendWindows = []TrendWindow{Window1Y, Window3Y, Window5Y}

// ParseTrendWindow accepts "1Y", "3y", " 5Y " and similar
func ParseTrendWindow(s string) (TrendWindow, error) {
	w := TrendWindow(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range TrendWindows {
		if w == known {
			return w, nil
		}
	}
	return "", ErrUnknownWindow
}

type TrendPoint struct {
	Label string  `json:"name"`
	Price float64 `json:"price"`
}

// Locality is a micro-market inside a city. City is filled in when
// localities are flattened across the dataset.
type Locality struct {
	Name     string  `json:"name"`
	City     string  `json:"city,omitempty"`
	Growth   float64 `json:"growth"`
	AvgPrice float64 `json:"avg_price"`
	State    string  `json:"state"`
}

type City struct {
	Name         string                       `json:"name"`
	Price        float64                      `json:"price"`
	Growth       float64                      `json:"growth"`
	Image        string                       `json:"image"`
	Appreciating []Locality                   `json:"appreciating"`
	Depreciating []Locality                   `json:"depreciating"`
	PriceTrend   map[TrendWindow][]TrendPoint `json:"price_trend"`
}

// CityCard is the summary shown on the city selector
type CityCard struct {
	City   string  `json:"city"`
	Price  float64 `json:"price"`
	Growth float64 `json:"growth"`
	Image  string  `json:"image"`
}

// StateAggregate drives the choropleth colouring of a state
type StateAggregate struct {
	AvgPrice float64 `json:"avg_price"`
	Growth   float64 `json:"growth"`
}
