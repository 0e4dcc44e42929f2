package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sigmagloves/sgmatch/catalogs"
	"github.com/sigmagloves/sgmatch/internal/engine"
	"github.com/sigmagloves/sgmatch/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorGray    = "\033[90m"
)

// loadRecords returns the records for a matcher: the --catalog override file
// when given, the embedded default otherwise.
func loadRecords(override, name string) ([]ports.Record, error) {
	if override == "" {
		return nil, nil // matcher constructors fall back to embedded data
	}
	abs, err := filepath.Abs(override)
	if err != nil {
		return nil, err
	}
	return catalogs.Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

// printResults renders a ranked result list:
//
//	⚡ 2 matches
//	  1. cut-oil-protection  برش در محیط روغنی   0.78  [phrase:برش, hazard:+0.22]
func printResults(e *engine.Engine, results []ports.ScoredResult, noneMsg string) {
	if len(results) == 0 {
		fmt.Printf("%s%s%s\n", colorGray, noneMsg, colorReset)
		return
	}

	fmt.Printf("%s⚡ %d matches%s\n", colorBold, len(results), colorReset)
	for i, r := range results {
		ent, _ := e.Get(r.ID)
		fmt.Printf("  %d. %s%-24s%s %s  %s%.2f%s",
			i+1, colorMagenta, r.ID, colorReset, ent.Name("fa"), colorGreen, r.Score, colorReset)
		if len(r.Reasons) > 0 {
			fmt.Printf("  %s[%s]%s", colorGray, strings.Join(r.Reasons, ", "), colorReset)
		}
		fmt.Println()
	}
}

// hintMap collects the hint flags that are set.
func hintMap(hazard, env, pref string) map[string]string {
	hints := make(map[string]string)
	if hazard != "" {
		hints["hazard"] = hazard
	}
	if env != "" {
		hints["env"] = env
	}
	if pref != "" {
		hints["pref"] = pref
	}
	if len(hints) == 0 {
		return nil
	}
	return hints
}
