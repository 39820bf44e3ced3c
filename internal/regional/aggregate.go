package regional

import (
	"sort"

	"github.com/shopspring/decimal"

	"pricetrends/server/internal/models"
)

// Partition holds the localities of one state split by growth sign
type Partition struct {
	State        string            `json:"state"`
	Appreciating []models.Locality `json:"appreciating"`
	Depreciating []models.Locality `json:"depreciating"`
}

// ActiveState resolves the state of the selected city from the first of its
// localities. An empty string means no state is active.
func ActiveState(localities []models.Locality, selectedCity string) string {
	if selectedCity == "" {
		return ""
	}
	for _, l := range localities {
		if l.City == selectedCity {
			return l.State
		}
	}
	return ""
}

// PartitionByState keeps localities of the given state, split into strictly
// positive growth and the rest. Zero growth counts as depreciating.
func PartitionByState(localities []models.Locality, state string) Partition {
	p := Partition{
		State:        state,
		Appreciating: []models.Locality{},
		Depreciating: []models.Locality{},
	}
	if state == "" {
		return p
	}
	for _, l := range localities {
		if l.State != state {
			continue
		}
		if l.Growth > 0 {
			p.Appreciating = append(p.Appreciating, l)
		} else {
			p.Depreciating = append(p.Depreciating, l)
		}
	}
	return p
}

// ForCity is the full regional view: resolve the city's state, partition,
// then sort each side with its own config. A nil config keeps dataset order.
func ForCity(localities []models.Locality, selectedCity string, appSort, depSort *models.SortConfig) Partition {
	p := PartitionByState(localities, ActiveState(localities, selectedCity))
	p.Appreciating = SortLocalities(p.Appreciating, appSort)
	p.Depreciating = SortLocalities(p.Depreciating, depSort)
	return p
}

// DeriveStateAggregates averages avg price and growth of every locality per
// state. It is the alternative to the hand-authored state table.
func DeriveStateAggregates(localities []models.Locality) map[string]models.StateAggregate {
	type acc struct {
		price, growth float64
		n             int
	}
	sums := make(map[string]*acc)
	for _, l := range localities {
		a, ok := sums[l.State]
		if !ok {
			a = &acc{}
			sums[l.State] = a
		}
		a.price += l.AvgPrice
		a.growth += l.Growth
		a.n++
	}

	out := make(map[string]models.StateAggregate, len(sums))
	for state, a := range sums {
		out[state] = models.StateAggregate{
			AvgPrice: roundTo(a.price/float64(a.n), 0),
			Growth:   roundTo(a.growth/float64(a.n), 1),
		}
	}
	return out
}

// StateNames returns the keys of an aggregate table in alphabetical order
func StateNames(aggregates map[string]models.StateAggregate) []string {
	names := make([]string, 0, len(aggregates))
	for name := range aggregates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
