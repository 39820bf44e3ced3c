package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pricetrends/server/config"
	"pricetrends/server/internal/analytics"
	"pricetrends/server/internal/calculator"
	"pricetrends/server/internal/dataset"
	"pricetrends/server/internal/models"
	"pricetrends/server/internal/regional"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pricectl",
		Short:         "Property price trends and calculators for Indian cities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newTrendCmd(),
		newEMICmd(),
		newConvertCmd(),
		newEstimateCmd(),
		newRegionalCmd(),
		newStatesCmd(),
	)
	return root
}

func newTrendCmd() *cobra.Command {
	var window string
	cmd := &cobra.Command{
		Use:   "trend <city>",
		Short: "Show a city's price series and its statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := models.ParseTrendWindow(window)
			if err != nil {
				return err
			}
			city, err := dataset.FindCity(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			out := cmd.OutOrStdout()
			series := city.PriceTrend[w]
			for _, p := range series {
				fmt.Fprintf(out, "%-6s %s\n", p.Label, calculator.FormatRupees(p.Price))
			}

			stats := analytics.ComputeTrendStats(series)
			fmt.Fprintf(out, "%s %s: %s -> %s, change %s (%s%%)\n",
				city.Name, w,
				calculator.FormatRupees(stats.StartPrice), calculator.FormatRupees(stats.EndPrice),
				calculator.FormatRupees(stats.PriceChange), stats.GrowthPercentage)
			fmt.Fprintf(out, "axis: [%g, %g]\n", stats.YAxisDomain[0], stats.YAxisDomain[1])
			return nil
		},
	}
	cmd.Flags().StringVarP(&window, "window", "w", string(models.Window1Y), "trend window: 1Y, 3Y or 5Y")
	return cmd
}

func newEMICmd() *cobra.Command {
	var amount, rate, years float64
	var schedule bool
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Calculate the monthly instalment of a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator.CalculateEMI(amount, rate, years)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "EMI: %s\n", calculator.FormatRupees(res.MonthlyPayment))
			fmt.Fprintf(out, "Total payment: %s over %g months\n", calculator.FormatRupees(res.TotalPayment), res.Months)
			fmt.Fprintf(out, "Total interest: %s\n", calculator.FormatRupees(res.TotalInterest))

			if !schedule {
				return nil
			}
			rows, err := calculator.Schedule(amount, rate, years)
			if err != nil {
				return err
			}
			printSchedule(out, rows)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "loan amount in rupees")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "annual interest rate in percent")
	cmd.Flags().Float64VarP(&years, "years", "y", 0, "tenure in years")
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the amortization schedule")
	return cmd
}

func printSchedule(out io.Writer, rows []calculator.Installment) {
	fmt.Fprintf(out, "%5s %14s %14s %14s %16s\n", "Month", "Payment", "Principal", "Interest", "Balance")
	for _, r := range rows {
		fmt.Fprintf(out, "%5d %14.2f %14.2f %14.2f %16.2f\n", r.Month, r.Payment, r.Principal, r.Interest, r.Balance)
	}
}

func newConvertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert an area between sqft, sqm and acre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromUnit, err := calculator.ParseUnit(from)
			if err != nil {
				return fmt.Errorf("%w: %s", err, from)
			}
			toUnit, err := calculator.ParseUnit(to)
			if err != nil {
				return fmt.Errorf("%w: %s", err, to)
			}

			conv := calculator.AreaConverter{Input: args[0], From: fromUnit, To: toUnit}
			result := conv.Result()
			if result == "" {
				return fmt.Errorf("nothing to convert for %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", args[0], fromUnit.Label(), result, toUnit.Label())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", string(calculator.SquareFeet), "source unit")
	cmd.Flags().StringVar(&to, "to", string(calculator.SquareMeters), "target unit")
	return cmd
}

func newEstimateCmd() *cobra.Command {
	var area float64
	var quality, pricesFile string
	cmd := &cobra.Command{
		Use:   "estimate <city>",
		Short: "Estimate a property's value from city, area and quality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := calculator.ParseQuality(quality)
			if err != nil {
				return fmt.Errorf("%w: %s", err, quality)
			}
			table, err := config.LoadBasePrices(pricesFile)
			if err != nil {
				return err
			}

			est, err := calculator.NewEvaluator(table).Estimate(args[0], area, q.Multiplier())
			if err != nil {
				return err
			}

			basis := "city rate"
			if !est.Matched {
				basis = "default rate"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s %s/sqft x %g sqft x %g)\n",
				est.City, calculator.FormatRupees(est.Value), basis,
				calculator.FormatRupees(est.BasePrice), est.Area, est.Multiplier)
			return nil
		},
	}
	cmd.Flags().Float64Var(&area, "area", 0, "area in square feet")
	cmd.Flags().StringVar(&quality, "quality", string(calculator.QualityAverage), "low, average or premium")
	cmd.Flags().StringVar(&pricesFile, "prices", "", "JSON file overriding base prices")
	return cmd
}

func newRegionalCmd() *cobra.Command {
	var sortKey, direction string
	cmd := &cobra.Command{
		Use:   "regional <city>",
		Short: "List appreciating and depreciating localities in a city's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			city, err := dataset.FindCity(args[0])
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}

			var cfg *models.SortConfig
			if sortKey != "" {
				key, err := models.ParseSortKey(sortKey)
				if err != nil {
					return err
				}
				dir, err := models.ParseSortDirection(direction)
				if err != nil {
					return err
				}
				cfg = &models.SortConfig{Key: key, Direction: dir}
			}

			p := regional.ForCity(dataset.AllLocalities(), city.Name, cfg, cfg)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State: %s\n", p.State)
			printLocalities(out, "Appreciating", p.Appreciating)
			printLocalities(out, "Depreciating", p.Depreciating)
			return nil
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", "", "name, city, growth, avgPrice or state")
	cmd.Flags().StringVar(&direction, "direction", "", "ascending or descending")
	return cmd
}

func printLocalities(out io.Writer, title string, ls []models.Locality) {
	fmt.Fprintf(out, "%s (%d)\n", title, len(ls))
	for _, l := range ls {
		fmt.Fprintf(out, "  %-20s %-12s %8s %10s\n", l.Name, l.City, calculator.FormatGrowth(l.Growth), calculator.FormatRupees(l.AvgPrice))
	}
}

func newStatesCmd() *cobra.Command {
	var mode, theme string
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Show state aggregates and their map colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var aggregates map[string]models.StateAggregate
			switch mode {
			case config.AggregatesStatic:
				aggregates = dataset.StateAggregates()
			case config.AggregatesDerived:
				aggregates = regional.DeriveStateAggregates(dataset.AllLocalities())
			default:
				return fmt.Errorf("unknown aggregate mode %q", mode)
			}

			colors := regional.StateColors(aggregates, regional.ParseTheme(theme))
			out := cmd.OutOrStdout()
			for _, name := range regional.StateNames(aggregates) {
				a := aggregates[name]
				fmt.Fprintf(out, "%-16s %10s %8s %s\n", name, calculator.FormatRupees(a.AvgPrice),
					calculator.FormatGrowth(a.Growth), colors[name])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", config.AggregatesStatic, "static or derived")
	cmd.Flags().StringVar(&theme, "theme", string(regional.ThemeLight), "light or dark")
	return cmd
}

