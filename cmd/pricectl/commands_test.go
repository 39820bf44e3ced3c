package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricetrends/server/internal/calculator"
	"pricetrends/server/internal/dataset"
	"pricetrends/server/internal/models"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrendCommand(t *testing.T) {
	out, err := run(t, "trend", "mumbai", "--window", "3Y")
	require.NoError(t, err)
	assert.Contains(t, out, "2022")
	assert.Contains(t, out, "Mumbai 3Y")
	assert.Contains(t, out, "(21.88%)")

	_, err = run(t, "trend", "Atlantis")
	assert.True(t, errors.Is(err, dataset.ErrCityNotFound))

	_, err = run(t, "trend", "Mumbai", "-w", "2Y")
	assert.True(t, errors.Is(err, models.ErrUnknownWindow))
}

func TestEMICommand(t *testing.T) {
	out, err := run(t, "emi", "--amount", "500000", "--rate", "8.5", "--years", "5", "--schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "EMI: ₹10,258.27")
	assert.Contains(t, out, "Month")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3+1+60)

	_, err = run(t, "emi", "--amount", "0", "--rate", "8.5", "--years", "5")
	var verr *calculator.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "1000")
	require.NoError(t, err)
	assert.Equal(t, "1000 Square Feet = 92.9031 Square Meters\n", out)

	out, err = run(t, "convert", "1", "--from", "sqft", "--to", "acre")
	require.NoError(t, err)
	assert.Contains(t, out, "2.2957e-5 Acres")

	_, err = run(t, "convert", "0")
	assert.Error(t, err)

	_, err = run(t, "convert", "5", "--to", "hectare")
	assert.True(t, errors.Is(err, calculator.ErrUnknownUnit))
}

func TestEstimateCommand(t *testing.T) {
	out, err := run(t, "estimate", "Mumbai", "--area", "1200", "--quality", "premium")
	require.NoError(t, err)
	assert.Contains(t, out, "Mumbai: ₹2,59,20,000")
	assert.Contains(t, out, "city rate")

	out, err = run(t, "estimate", "Unknistan", "--area", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "default rate")

	prices := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(prices, []byte(`{"base_prices": {"Goa": 10000}}`), 0644))
	out, err = run(t, "estimate", "goa", "--area", "10", "--prices", prices)
	require.NoError(t, err)
	assert.Contains(t, out, "₹1,00,000")

	_, err = run(t, "estimate", "Pune", "--area", "0")
	assert.Error(t, err)
}

func TestRegionalCommand(t *testing.T) {
	out, err := run(t, "regional", "Pune", "--sort", "growth", "--direction", "desc")
	require.NoError(t, err)
	assert.Contains(t, out, "State: Maharashtra")
	assert.Contains(t, out, "Appreciating (7)")
	assert.Less(t, strings.Index(out, "Vikhroli"), strings.Index(out, "Hinjewadi"))
}

func TestStatesCommand(t *testing.T) {
	out, err := run(t, "states")
	require.NoError(t, err)
	assert.Contains(t, out, "#b91c1c")
	assert.True(t, strings.HasPrefix(out, "Bihar"))

	_, err = run(t, "states", "--mode", "live")
	assert.Error(t, err)
}
