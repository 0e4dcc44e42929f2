package cmd

import (
	"fmt"
	"os"

	"github.com/sigmagloves/sgmatch/internal/matchers"
	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/spf13/cobra"
)

var askCatalog string

var askCmd = &cobra.Command{
	Use:           "ask <question>",
	Short:         "Look up knowledge-base articles",
	Long:          "Retrieves the most relevant knowledge-base articles (standards, sizing, materials, care) for a question.",
	Args:          cobra.ExactArgs(1),
	RunE:          runAsk,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	askCmd.Flags().StringVar(&askCatalog, "catalog", "", "Knowledge catalog JSON file (default: embedded)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(askCatalog, "knowledge")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ask: %v\n", err)
		return err
	}
	eng, err := matchers.Knowledge(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ask: %v\n", err)
		return err
	}

	results, err := eng.Query(args[0], ports.QueryOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ask: %v\n", err)
		return err
	}

	if len(results) == 0 {
		fmt.Printf("%sno matching articles%s\n", colorGray, colorReset)
		return nil
	}

	fmt.Printf("%s⚡ %d articles%s\n", colorBold, len(results), colorReset)
	for i, r := range results {
		ent, _ := eng.Get(r.ID)
		fmt.Printf("  %d. %s%s%s │ %s %s%.2f%s\n",
			i+1, colorMagenta, ent.Name("fa"), colorReset, ent.Name("en"), colorGreen, r.Score, colorReset)
		for _, link := range ent.Attr("links") {
			fmt.Printf("     %s%s%s\n", colorCyan, link, colorReset)
		}
	}
	return nil
}
