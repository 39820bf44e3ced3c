package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// EMIResult is the monthly instalment of a loan plus its totals
type EMIResult struct {
	MonthlyPayment float64 `json:"emi"`
	Months         float64 `json:"months"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// Installment is one row of an amortization schedule
type Installment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

func validateLoan(principal, annualRate, years float64) error {
	switch {
	case !(principal > 0), math.IsInf(principal, 0):
		return invalid("loan_amount", msgLoanInputs)
	case !(annualRate >= 0), math.IsInf(annualRate, 0):
		return invalid("interest_rate", msgLoanInputs)
	case !(years > 0), math.IsInf(years, 0):
		return invalid("tenure", msgLoanInputs)
	}
	return nil
}

// Amortize returns the equated monthly instalment for a loan of principal at
// annualRate percent over years. A zero rate spreads the principal evenly;
// otherwise the standard annuity formula is used and rounded to two decimals.
func Amortize(principal, annualRate, years float64) (float64, error) {
	if err := validateLoan(principal, annualRate, years); err != nil {
		return 0, err
	}

	monthlyRate := annualRate / 12 / 100
	months := years * 12

	if monthlyRate == 0 {
		return principal / months, nil
	}

	growth := math.Pow(1+monthlyRate, months)
	if math.IsInf(growth, 1) {
		// the annuity factor tends to 1 as growth explodes
		return round2(principal * monthlyRate), nil
	}
	emi := principal * monthlyRate * growth / (growth - 1)
	return round2(emi), nil
}

// CalculateEMI is Amortize with the totals over the whole tenure
func CalculateEMI(principal, annualRate, years float64) (*EMIResult, error) {
	emi, err := Amortize(principal, annualRate, years)
	if err != nil {
		return nil, err
	}

	months := years * 12
	total := decimal.NewFromFloat(emi).Mul(decimal.NewFromFloat(months)).Round(2)
	interest := total.Sub(decimal.NewFromFloat(principal)).Round(2)

	return &EMIResult{
		MonthlyPayment: emi,
		Months:         months,
		TotalPayment:   total.InexactFloat64(),
		TotalInterest:  interest.InexactFloat64(),
	}, nil
}

// MaxScheduleMonths bounds the length of an amortization schedule
const MaxScheduleMonths = 1200

// Schedule splits each instalment into interest and principal. A partial
// final month counts as a full one, and the last payment absorbs rounding so
// the balance ends at zero. Tenures beyond MaxScheduleMonths are rejected.
func Schedule(principal, annualRate, years float64) ([]Installment, error) {
	emi, err := Amortize(principal, annualRate, years)
	if err != nil {
		return nil, err
	}

	months := math.Ceil(years * 12)
	if months > MaxScheduleMonths {
		return nil, invalid("tenure", msgScheduleTooLong)
	}
	n := int(months)
	rate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(1200))
	payment := decimal.NewFromFloat(emi).Round(2)
	balance := decimal.NewFromFloat(principal)

	rows := make([]Installment, 0, n)
	for month := 1; month <= n; month++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)
		if month == n || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		balance = balance.Sub(principalPart)

		rows = append(rows, Installment{
			Month:     month,
			Payment:   principalPart.Add(interest).InexactFloat64(),
			Principal: principalPart.InexactFloat64(),
			Interest:  interest.InexactFloat64(),
			Balance:   balance.InexactFloat64(),
		})
		if balance.IsZero() {
			break
		}
	}
	return rows, nil
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
