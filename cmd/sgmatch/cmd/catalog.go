package cmd

import (
	"fmt"
	"os"

	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/matchers"
	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Show catalog and index statistics",
	Long:          "Displays entity and index-key counts for each embedded catalog.",
	Args:          cobra.NoArgs,
	RunE:          runCatalog,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	builders := []struct {
		name  string
		build func([]ports.Record) (*engine.Engine, error)
	}{
		{"industries", matchers.Industry},
		{"intents", matchers.Intent},
		{"knowledge", matchers.Knowledge},
		{"products", matchers.Product},
	}

	fmt.Printf("%s⚡ Catalogs%s\n", colorBold, colorReset)
	for _, b := range builders {
		eng, err := b.build(nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
			return err
		}
		entities, keys := eng.Stats()
		fmt.Printf("  %s%-12s%s %3d entities  %4d index keys\n",
			colorMagenta, b.name, colorReset, entities, keys)
	}
	return nil
}
