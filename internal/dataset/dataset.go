package dataset

import (
	"errors"
	"strings"

	"pricetrends/server/internal/models"
)

var ErrCityNotFound = errors.New("city not found")

// stateAggregates is the hand-authored choropleth table. It is maintained
// independently of the locality figures.
var stateAggregates = map[string]models.StateAggregate{
	"Maharashtra":    {AvgPrice: 9500, Growth: 4.2},
	"Karnataka":      {AvgPrice: 8200, Growth: 3.1},
	"Gujarat":        {AvgPrice: 7800, Growth: -1.4},
	"Uttar Pradesh":  {AvgPrice: 6200, Growth: 2.3},
	"Delhi":          {AvgPrice: 11200, Growth: 5.6},
	"Telangana":      {AvgPrice: 8900, Growth: 4.8},
	"Tamil Nadu":     {AvgPrice: 7600, Growth: 2.9},
	"West Bengal":    {AvgPrice: 6000, Growth: 2.5},
	"Rajasthan":      {AvgPrice: 5700, Growth: 3.1},
	"Madhya Pradesh": {AvgPrice: 4900, Growth: 2.9},
	"Bihar":          {AvgPrice: 4500, Growth: 2.4},
	"Punjab":         {AvgPrice: 5100, Growth: 2.8},
}

// Cities returns a copy of the bundled cities in display order
func Cities() []models.City {
	out := make([]models.City, len(cities))
	copy(out, cities)
	return out
}

// CityNames returns the city keys in display order
func CityNames() []string {
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	return names
}

// FindCity matches a free-text query against the city keys, ignoring case
// and surrounding whitespace.
func FindCity(query string) (models.City, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.City{}, ErrCityNotFound
	}
	for _, c := range cities {
		if strings.ToLower(c.Name) == q {
			return c, nil
		}
	}
	return models.City{}, ErrCityNotFound
}

func CityCards() []models.CityCard {
	cards := make([]models.CityCard, len(cities))
	for i, c := range cities {
		cards[i] = models.CityCard{
			City:   c.Name,
			Price:  c.Price,
			Growth: c.Growth,
			Image:  c.Image,
		}
	}
	return cards
}

// AllLocalities flattens every city's appreciating and depreciating lists,
// tagging each locality with its city. Order follows the dataset.
func AllLocalities() []models.Locality {
	return FlattenLocalities(cities)
}

// FlattenLocalities tags and concatenates localities of the given cities
func FlattenLocalities(cs []models.City) []models.Locality {
	var out []models.Locality
	for _, c := range cs {
		for _, l := range c.Appreciating {
			l.City = c.Name
			out = append(out, l)
		}
		for _, l := range c.Depreciating {
			l.City = c.Name
			out = append(out, l)
		}
	}
	return out
}

// StateAggregates returns a copy of the static per-state table
func StateAggregates() map[string]models.StateAggregate {
	out := make(map[string]models.StateAggregate, len(stateAggregates))
	for k, v := range stateAggregates {
		out[k] = v
	}
	return out
}
