package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carbonlens/carbonlens/internal/engine"
)

// NewFactorsCmd creates the factors command, which prints the fixed
// emission factor table used by every conversion.
func NewFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "Show the emission factor table",
		Example: `  # List all emission factors
  carbonlens factors`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factors := engine.DefaultFactors()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tKEY\tFACTOR\tUNIT")
			for _, mode := range []string{engine.TransportCar, engine.TransportBus, engine.TransportTrain} {
				fmt.Fprintf(tw, "transport\t%s\t%.2f\tkgCO2/km\n", mode, factors.Transport[mode])
			}
			for _, diet := range []string{engine.DietMeat, engine.DietMixed, engine.DietVegan} {
				fmt.Fprintf(tw, "diet\t%s\t%.2f\tkgCO2/meal\n", diet, factors.Diet[diet])
			}
			fmt.Fprintf(tw, "energy\t-\t%.2f\tkgCO2/kWh\n", factors.EnergyPerKWh)
			fmt.Fprintf(tw, "waste\t-\t%.2f\tkgCO2/kg\n", factors.WastePerKg)
			return tw.Flush()
		},
	}
}
