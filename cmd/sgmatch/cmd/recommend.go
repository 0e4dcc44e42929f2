package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sigmagloves/sgmatch/internal/matchers"
	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/spf13/cobra"
)

var (
	recHazard   string
	recEnv      string
	recPref     string
	recTop      int
	recMinScore float64
	recCatalog  string
)

var recommendCmd = &cobra.Command{
	Use:           "recommend <text>",
	Short:         "Recommend products for a described task",
	Long:          "Ranks catalog products against a free-text task description plus optional hazard/environment hints.",
	Args:          cobra.ExactArgs(1),
	RunE:          runRecommend,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&recHazard, "hazard", "", "Hazard hint (cut, chemical, heat, impact)")
	f.StringVar(&recEnv, "env", "", "Environment hint (oily, wet, dry)")
	f.StringVar(&recPref, "pref", "", "Preference hint (thin, lined)")
	f.IntVar(&recTop, "top", 0, "Max results")
	f.Float64Var(&recMinScore, "min-score", 0, "Confidence threshold")
	f.StringVar(&recCatalog, "catalog", "", "Product catalog JSON file (default: embedded)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(recCatalog, "products")
	if err != nil {
		fmt.Fprintf(os.Stderr, "recommend: %v\n", err)
		return err
	}
	eng, err := matchers.Product(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recommend: %v\n", err)
		return err
	}

	results, err := eng.Query(args[0], ports.QueryOptions{
		TopN:     recTop,
		MinScore: recMinScore,
		Hints:    hintMap(recHazard, recEnv, recPref),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "recommend: %v\n", err)
		return err
	}

	if len(results) == 0 {
		fmt.Printf("%sno matching products%s\n", colorGray, colorReset)
		return nil
	}

	fmt.Printf("%s⚡ %d products%s\n", colorBold, len(results), colorReset)
	for i, r := range results {
		ent, _ := eng.Get(r.ID)
		fmt.Printf("  %d. %s%-18s%s %s %s%.2f%s\n",
			i+1, colorMagenta, r.ID, colorReset, ent.Name("en"), colorGreen, r.Score, colorReset)
		if std := ent.Attr("standards"); len(std) > 0 {
			fmt.Printf("     %s%s%s\n", colorGray, strings.Join(std, "  "), colorReset)
		}
	}
	return nil
}
