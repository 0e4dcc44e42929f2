package cmd

import (
	"fmt"
	"os"

	"github.com/sigmagloves/sgmatch/internal/matchers"
	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/spf13/cobra"
)

var (
	intentHazard   string
	intentEnv      string
	intentPref     string
	intentTop      int
	intentMinScore float64
	intentCatalog  string
)

var intentCmd = &cobra.Command{
	Use:           "intent <text>",
	Short:         "Classify protection intent (hazard/environment/preference)",
	Long:          "Maps free text plus optional structured hints to protection-need categories. Reports no-confident-match when nothing clears the threshold.",
	Args:          cobra.ExactArgs(1),
	RunE:          runIntent,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := intentCmd.Flags()
	f.StringVar(&intentHazard, "hazard", "", "Hazard hint (cut, chemical, heat, impact)")
	f.StringVar(&intentEnv, "env", "", "Environment hint (oily, wet, dry)")
	f.StringVar(&intentPref, "pref", "", "Preference hint (thin, lined)")
	f.IntVar(&intentTop, "top", 0, "Max results")
	f.Float64Var(&intentMinScore, "min-score", 0, "Confidence threshold")
	f.StringVar(&intentCatalog, "catalog", "", "Intent catalog JSON file (default: embedded)")
}

func runIntent(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(intentCatalog, "intents")
	if err != nil {
		fmt.Fprintf(os.Stderr, "intent: %v\n", err)
		return err
	}
	eng, err := matchers.Intent(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "intent: %v\n", err)
		return err
	}

	results, err := eng.Query(args[0], ports.QueryOptions{
		TopN:     intentTop,
		MinScore: intentMinScore,
		Hints:    hintMap(intentHazard, intentEnv, intentPref),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "intent: %v\n", err)
		return err
	}

	printResults(eng, results, "no confident match")
	return nil
}
