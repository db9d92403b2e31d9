package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/valuelab/vehicle-appraisal/internal/api/client"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

func appraisalsCmd() *cobra.Command {
	appraisalsRoot := &cobra.Command{
		Use:   "appraisals",
		Short: "Manage appraisals",
		Long: "Manage vehicle appraisals: the subject vehicle, its insurer reference\n" +
			"value, and the intake metadata the valuation engine works from.",
	}

	appraisalsRoot.AddCommand(
		appraisalsListCmd(),
		appraisalsGetCmd(),
		appraisalsCreateCmd(),
		appraisalsUpdateCmd(),
		appraisalsDeleteCmd(),
	)

	return appraisalsRoot
}

func appraisalsListCmd() *cobra.Command {
	var (
		claimRef    string
		vin         string
		vehMake     string
		vehModel    string
		yearMin     int
		yearMax     int
		condition   string
		undervalued bool
		limit       int
		offset      int
		orderBy     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appraisals with optional filters",
		Example: `  # List all appraisals
  vappr appraisals list

  # Only undervalued vehicles
  vappr appraisals list --undervalued

  # Filter by vehicle and year range
  vappr appraisals list --make Honda --year-min 2018 --year-max 2022

  # Sort by mileage with pagination
  vappr appraisals list --order-by mileage --limit 20 --offset 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &apiclient.ListAppraisalsParams{
				ClaimRef:  claimRef,
				VIN:       vin,
				Make:      vehMake,
				Model:     vehModel,
				YearMin:   yearMin,
				YearMax:   yearMax,
				Condition: condition,
				Limit:     limit,
				Offset:    offset,
				OrderBy:   orderBy,
			}
			if cmd.Flags().Changed("undervalued") {
				params.Undervalued = fmt.Sprintf("%v", undervalued)
			}

			c := newClient()
			resp, err := c.ListAppraisals(context.Background(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Appraisals) == 0 {
				fmt.Println("No appraisals found.")
				return nil
			}

			fmt.Printf("Showing %d of %d appraisals\n\n", len(resp.Appraisals), resp.Total)
			return printAppraisalsTable(resp.Appraisals)
		},
	}

	cmd.Flags().StringVar(&claimRef, "claim-ref", "", "filter by exact claim reference")
	cmd.Flags().StringVar(&vin, "vin", "", "filter by exact VIN")
	cmd.Flags().StringVar(&vehMake, "make", "", "filter by vehicle make")
	cmd.Flags().StringVar(&vehModel, "model", "", "filter by vehicle model")
	cmd.Flags().IntVar(&yearMin, "year-min", 0, "minimum model year")
	cmd.Flags().IntVar(&yearMax, "year-max", 0, "maximum model year")
	cmd.Flags().StringVar(&condition, "condition", "", "filter by condition (excellent, good, fair, poor)")
	cmd.Flags().BoolVar(&undervalued, "undervalued", false, "filter by latest analysis verdict")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field (created_at, year, mileage)")

	return cmd
}

func appraisalsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show appraisal details",
		Example: `  vappr appraisals get 2f6c9a
  vappr appraisals get 2f6c9a --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAppraisal(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(a)
			}
			return printAppraisalDetail(a)
		},
	}
}

func appraisalsCreateCmd() *cobra.Command {
	var (
		claimRef  string
		vin       string
		year      int
		vehMake   string
		vehModel  string
		mileage   int
		condition string
		equipment []string
		reference float64
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new appraisal",
		Long: "Create an appraisal for a subject vehicle. The analysis is computed\n" +
			"once comparables are added or a recompute is requested.",
		Example: `  # Create a basic appraisal
  vappr appraisals create --year 2020 --make Honda --model Accord \
    --mileage 45000 --condition good

  # With claim reference and insurer reference value
  vappr appraisals create --claim-ref CLM-2024-0101 --year 2020 \
    --make Honda --model Accord --mileage 45000 --condition good \
    --reference 20000 --equipment Navigation --equipment Sunroof`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if year == 0 || vehMake == "" || vehModel == "" || condition == "" {
				return fmt.Errorf("--year, --make, --model, and --condition are required")
			}

			a := &domain.Appraisal{
				ClaimRef:  claimRef,
				VIN:       vin,
				Year:      year,
				Make:      vehMake,
				Model:     vehModel,
				Mileage:   mileage,
				Condition: domain.Condition(condition),
				Equipment: equipment,
				Notes:     notes,
			}
			if cmd.Flags().Changed("reference") {
				a.ReferenceValue = &reference
			}

			c := newClient()
			created, err := c.CreateAppraisal(context.Background(), a)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Appraisal created: %s (%s)\n", created.Label(), created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&claimRef, "claim-ref", "", "external claim reference")
	cmd.Flags().StringVar(&vin, "vin", "", "vehicle identification number")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringVar(&vehMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&vehModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer miles")
	cmd.Flags().StringVar(&condition, "condition", "", "condition (excellent, good, fair, poor)")
	cmd.Flags().StringArrayVar(&equipment, "equipment", nil, "equipment feature (repeatable)")
	cmd.Flags().Float64Var(&reference, "reference", 0, "insurer reference value in dollars")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form intake notes")

	return cmd
}

func appraisalsUpdateCmd() *cobra.Command {
	var (
		claimRef  string
		vin       string
		year      int
		vehMake   string
		vehModel  string
		mileage   int
		condition string
		equipment []string
		reference float64
		clearRef  bool
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an appraisal",
		Long: "Apply a partial update to an appraisal. Only the flags you set are\n" +
			"changed; the analysis is refreshed afterwards.",
		Example: `  # Correct the odometer reading
  vappr appraisals update 2f6c9a --mileage 48000

  # Replace the equipment set and drop the reference value
  vappr appraisals update 2f6c9a --equipment Navigation --clear-reference`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := &apiclient.AppraisalPatch{ClearReference: clearRef}

			if cmd.Flags().Changed("claim-ref") {
				patch.ClaimRef = &claimRef
			}
			if cmd.Flags().Changed("vin") {
				patch.VIN = &vin
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
			if cmd.Flags().Changed("condition") {
				patch.Condition = &condition
			}
			if cmd.Flags().Changed("equipment") {
				patch.Equipment = &equipment
			}
			if cmd.Flags().Changed("reference") {
				patch.ReferenceValue = &reference
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			c := newClient()
			updated, err := c.UpdateAppraisal(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(updated)
			}
			fmt.Printf("Appraisal updated: %s\n", updated.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&claimRef, "claim-ref", "", "external claim reference")
	cmd.Flags().StringVar(&vin, "vin", "", "vehicle identification number")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().StringVar(&vehMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&vehModel, "model", "", "vehicle model")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "odometer miles")
	cmd.Flags().StringVar(&condition, "condition", "", "condition (excellent, good, fair, poor)")
	cmd.Flags().StringArrayVar(&equipment, "equipment", nil, "equipment feature (repeatable, replaces the set)")
	cmd.Flags().Float64Var(&reference, "reference", 0, "insurer reference value in dollars")
	cmd.Flags().BoolVar(&clearRef, "clear-reference", false, "remove the reference value")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form intake notes")

	return cmd
}

func appraisalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete an appraisal",
		Example: `  vappr appraisals delete 2f6c9a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteAppraisal(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Appraisal %s deleted.\n", args[0])
			return nil
		},
	}
}
