package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/valuelab/vehicle-appraisal/internal/api/client"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

func comparablesCmd() *cobra.Command {
	comparablesRoot := &cobra.Command{
		Use:   "comparables",
		Short: "Manage comparable listings",
		Long: "Manage the comparable listings attached to an appraisal. Adding,\n" +
			"updating, or removing a comparable refreshes the market analysis.",
	}

	comparablesRoot.AddCommand(
		comparablesListCmd(),
		comparablesAddCmd(),
		comparablesUpdateCmd(),
		comparablesRemoveCmd(),
	)

	return comparablesRoot
}

func comparablesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <appraisal-id>",
		Short: "List an appraisal's comparables",
		Example: `  vappr comparables list 2f6c9a
  vappr comparables list 2f6c9a --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			comps, err := c.ListComparables(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(comps)
			}
			if len(comps) == 0 {
				fmt.Println("No comparables found.")
				return nil
			}
			return printComparablesTable(comps)
		},
	}
}

func comparablesAddCmd() *cobra.Command {
	var (
		source    string
		year      int
		vehMake   string
		vehModel  string
		mileage   int
		distance  float64
		condition string
		equipment []string
		listPrice float64
	)

	cmd := &cobra.Command{
		Use:   "add <appraisal-id>",
		Short: "Add a comparable listing",
		Example: `  vappr comparables add 2f6c9a --source "dealer listing" \
    --year 2020 --make Honda --model Accord --mileage 42000 \
    --distance 12 --condition good --list-price 26000`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if year == 0 || vehMake == "" || vehModel == "" || condition == "" || listPrice == 0 {
				return fmt.Errorf("--year, --make, --model, --condition, and --list-price are required")
			}

			comp := &domain.Comparable{
				Source:        source,
				Year:          year,
				Make:          vehMake,
				Model:         vehModel,
				Mileage:       mileage,
				DistanceMiles: distance,
				Condition:     domain.Condition(condition),
				Equipment:     equipment,
				ListPrice:     listPrice,
			}

			c := newClient()
			created, err := c.AddComparable(context.Background(), args[0], comp)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Comparable added: %d %s %s at $%.2f (%s)\n",
				created.Year, created.Make, created.Model, created.ListPrice, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "listing origin (dealer listing, auction, private sale)")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringVar(&vehMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&vehModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer miles")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the subject's market in miles")
	cmd.Flags().StringVar(&condition, "condition", "", "condition (excellent, good, fair, poor)")
	cmd.Flags().StringArrayVar(&equipment, "equipment", nil, "equipment feature (repeatable)")
	cmd.Flags().Float64Var(&listPrice, "list-price", 0, "asking price in dollars")

	return cmd
}

func comparablesUpdateCmd() *cobra.Command {
	var (
		source    string
		year      int
		vehMake   string
		vehModel  string
		mileage   int
		distance  float64
		condition string
		equipment []string
		listPrice float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a comparable",
		Long: "Apply a partial update to a comparable. Only the flags you set are\n" +
			"changed; the owning appraisal's analysis is refreshed afterwards.",
		Example: `  # The listing dropped its price
  vappr comparables update 81d2c4 --list-price 24500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := &apiclient.ComparablePatch{}

			if cmd.Flags().Changed("source") {
				patch.Source = &source
			}
			if cmd.Flags().Changed("year") {
				patch.Year = &year
			}
			if cmd.Flags().Changed("make") {
				patch.Make = &vehMake
			}
			if cmd.Flags().Changed("model") {
				patch.Model = &vehModel
			}
			if cmd.Flags().Changed("mileage") {
				patch.Mileage = &mileage
			}
			if cmd.Flags().Changed("distance") {
				patch.DistanceMiles = &distance
			}
			if cmd.Flags().Changed("condition") {
				patch.Condition = &condition
			}
			if cmd.Flags().Changed("equipment") {
				patch.Equipment = &equipment
			}
			if cmd.Flags().Changed("list-price") {
				patch.ListPrice = &listPrice
			}

			c := newClient()
			updated, err := c.UpdateComparable(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Comparable updated: %d %s %s at $%.2f\n",
				updated.Year, updated.Make, updated.Model, updated.ListPrice)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "listing origin")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringVar(&vehMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&vehModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer miles")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the subject's market in miles")
	cmd.Flags().StringVar(&condition, "condition", "", "condition (excellent, good, fair, poor)")
	cmd.Flags().StringArrayVar(&equipment, "equipment", nil, "equipment feature (repeatable, replaces the set)")
	cmd.Flags().Float64Var(&listPrice, "list-price", 0, "asking price in dollars")

	return cmd
}

func comparablesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Short:   "Remove a comparable",
		Example: `  vappr comparables rm 81d2c4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteComparable(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Comparable %s removed.\n", args[0])
			return nil
		},
	}
}
