package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Unit is an area unit understood by the converter
type Unit string

const (
	SquareFeet   Unit = "sqft"
	SquareMeters Unit = "sqm"
	Acres        Unit = "acre"
)

// UnitInfo describes a unit for selection lists
type UnitInfo struct {
	Value  Unit   `json:"value"`
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

// Units lists the supported units in display order
var Units = []UnitInfo{
	{Value: SquareFeet, Label: "Square Feet", Symbol: "sq.ft."},
	{Value: SquareMeters, Label: "Square Meters", Symbol: "sq.m."},
	{Value: Acres, Label: "Acres", Symbol: "ac"},
}

// square feet per unit
var conversionFactors = map[Unit]float64{
	SquareFeet:   1,
	SquareMeters: 10.7639,
	Acres:        43560,
}

// ParseUnit accepts a unit value ignoring case and surrounding whitespace
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := conversionFactors[u]; !ok {
		return "", ErrUnknownUnit
	}
	return u, nil
}

// Label returns the display name of a unit, or the raw value if unknown
func (u Unit) Label() string {
	for _, info := range Units {
		if info.Value == u {
			return info.Label
		}
	}
	return string(u)
}

// ConvertArea converts through square feet. The second result is false for
// NaN or zero input and for unknown units, in which case there is no result.
func ConvertArea(value float64, from, to Unit) (float64, bool) {
	if math.IsNaN(value) || value == 0 {
		return 0, false
	}
	fromFactor, ok := conversionFactors[from]
	if !ok {
		return 0, false
	}
	toFactor, ok := conversionFactors[to]
	if !ok {
		return 0, false
	}
	return value * fromFactor / toFactor, true
}

// AreaConverter holds the converter form: the raw input text and the two
// selected units.
type AreaConverter struct {
	Input string `json:"value"`
	From  Unit   `json:"from"`
	To    Unit   `json:"to"`
}

// NewAreaConverter starts at 1000 square feet to square meters
func NewAreaConverter() AreaConverter {
	return AreaConverter{Input: "1000", From: SquareFeet, To: SquareMeters}
}

// Value converts the current input. Unparseable input has no value.
func (c AreaConverter) Value() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Input), 64)
	if err != nil {
		return 0, false
	}
	return ConvertArea(v, c.From, c.To)
}

// Result is the formatted conversion, empty when there is nothing to show
func (c AreaConverter) Result() string {
	v, ok := c.Value()
	if !ok {
		return ""
	}
	return FormatArea(v)
}

// Swap exchanges the units; the input text is kept
func (c AreaConverter) Swap() AreaConverter {
	c.From, c.To = c.To, c.From
	return c
}

func (c AreaConverter) Reset() AreaConverter {
	return NewAreaConverter()
}
