package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sigmagloves/sgmatch/internal/adapters/catwatch"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/matchers"
	"github.com/sigmagloves/sgmatch/internal/ports"
	"github.com/spf13/cobra"
)

var (
	replDomain  string
	replCatalog string
	replWatch   bool
)

var replCmd = &cobra.Command{
	Use:           "repl",
	Short:         "Interactive matching loop",
	Long:          "Reads queries from stdin and matches them against one domain. With --watch, edits to the --catalog file reload the engine live.",
	Args:          cobra.NoArgs,
	RunE:          runRepl,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := replCmd.Flags()
	f.StringVar(&replDomain, "domain", "industry", "Matcher domain: industry, intent, kb, product")
	f.StringVar(&replCatalog, "catalog", "", "Catalog JSON file (default: embedded)")
	f.BoolVar(&replWatch, "watch", false, "Reload the catalog file on change (requires --catalog)")
}

// replBuilders maps the --domain flag to a matcher constructor.
var replBuilders = map[string]func([]ports.Record) (*engine.Engine, error){
	"industry": matchers.Industry,
	"intent":   matchers.Intent,
	"kb":       matchers.Knowledge,
	"product":  matchers.Product,
}

func runRepl(cmd *cobra.Command, args []string) error {
	build, ok := replBuilders[replDomain]
	if !ok {
		err := fmt.Errorf("unknown domain %q (want industry, intent, kb, product)", replDomain)
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		return err
	}

	records, err := loadRecords(replCatalog, replDomain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		return err
	}
	eng, err := build(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		return err
	}

	if replWatch {
		if replCatalog == "" {
			err := fmt.Errorf("--watch requires --catalog")
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
			return err
		}
		watcher, err := catwatch.New([]string{replCatalog})
		if err != nil {
			fmt.Fprintf(os.Stderr, "repl: watch: %v\n", err)
			return err
		}
		defer watcher.Stop()

		go watcher.Run(func(path string) {
			fresh, err := loadRecords(path, replDomain)
			if err != nil {
				// Bad edit: keep serving the last good catalog.
				fmt.Printf("%sreload failed, keeping previous catalog: %v%s\n", colorGray, err, colorReset)
				return
			}
			loaded, skipped := eng.InitRecords(fresh)
			fmt.Printf("%sreloaded %s: %d entities (%d skipped)%s\n", colorGray, path, loaded, skipped, colorReset)
		})
	}

	fmt.Printf("%ssgmatch repl%s │ domain=%s │ ctrl-d to exit\n", colorBold, colorReset, replDomain)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> %s", colorCyan, colorReset)
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		results, err := eng.Query(query, ports.QueryOptions{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
			continue
		}
		printResults(eng, results, "no confident match")
	}
	fmt.Println()
	return scanner.Err()
}
