package analytics

import (
	"github.com/shopspring/decimal"

	"pricetrends/server/internal/models"
)

const (
	// fraction of the min-max range added above and below the series
	domainPadding = 0.25
	// flat band around a lone point
	singleLow  = 0.8
	singleHigh = 1.2
)

// TrendStats is what the price chart header and axis need from a series
type TrendStats struct {
	StartPrice       float64            `json:"start_price"`
	EndPrice         float64            `json:"end_price"`
	PriceChange      float64            `json:"price_change"`
	GrowthPercentage string             `json:"growth_percentage"`
	YAxisDomain      [2]float64         `json:"y_axis_domain"`
	Min              *models.TrendPoint `json:"min,omitempty"`
	Max              *models.TrendPoint `json:"max,omitempty"`
	Positive         bool               `json:"positive"`
}

// ComputeTrendStats derives the chart figures from a chronological series.
// Series shorter than two points report no change.
func ComputeTrendStats(points []models.TrendPoint) TrendStats {
	if len(points) < 2 {
		var price float64
		var marker *models.TrendPoint
		if len(points) == 1 {
			p := points[0]
			price = p.Price
			marker = &p
		}
		return TrendStats{
			StartPrice:       price,
			EndPrice:         price,
			GrowthPercentage: "0.00",
			YAxisDomain:      [2]float64{price * singleLow, price * singleHigh},
			Min:              marker,
			Max:              marker,
			Positive:         true,
		}
	}

	start := points[0].Price
	end := points[len(points)-1].Price
	change := end - start

	minIdx, maxIdx := 0, 0
	for i, p := range points {
		if p.Price < points[minIdx].Price {
			minIdx = i
		}
		if p.Price > points[maxIdx].Price {
			maxIdx = i
		}
	}
	minPoint, maxPoint := points[minIdx], points[maxIdx]
	padding := (maxPoint.Price - minPoint.Price) * domainPadding

	return TrendStats{
		StartPrice:       start,
		EndPrice:         end,
		PriceChange:      change,
		GrowthPercentage: GrowthPercentage(start, end),
		YAxisDomain:      [2]float64{minPoint.Price - padding, maxPoint.Price + padding},
		Min:              &minPoint,
		Max:              &maxPoint,
		Positive:         change >= 0,
	}
}

// GrowthPercentage formats (end-start)/start as a percentage with two
// decimals. A zero start yields "0.00".
func GrowthPercentage(start, end float64) string {
	if start == 0 {
		return "0.00"
	}
	pct := decimal.NewFromFloat(end).
		Sub(decimal.NewFromFloat(start)).
		Div(decimal.NewFromFloat(start)).
		Mul(decimal.NewFromInt(100))
	return pct.StringFixed(2)
}
