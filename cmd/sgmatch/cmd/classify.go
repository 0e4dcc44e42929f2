package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sigmagloves/sgmatch/internal/adapters/ollama"
	"github.com/sigmagloves/sgmatch/internal/matchers"
	"github.com/spf13/cobra"
)

var (
	classifyNoLLM       bool
	classifyOllamaHost  string
	classifyModel       string
	classifyMinLLMScore float64
	classifyJSON        bool
	classifyCatalog     string
)

var classifyCmd = &cobra.Command{
	Use:           "classify <text>",
	Short:         "Classify a work description into an industry",
	Long:          "Maps a free-text Persian/English job description to an industry code, optionally refined by a local Ollama model.",
	Args:          cobra.ExactArgs(1),
	RunE:          runClassify,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := classifyCmd.Flags()
	f.BoolVar(&classifyNoLLM, "no-llm", false, "Disable the Ollama refine step, heuristic only")
	f.StringVar(&classifyOllamaHost, "ollama-host", ollama.DefaultHost, "Ollama host")
	f.StringVar(&classifyModel, "model", ollama.DefaultModel, "Ollama model name")
	f.Float64Var(&classifyMinLLMScore, "min-llm-score", 0.28, "Minimum model confidence to override the heuristic")
	f.BoolVar(&classifyJSON, "json", false, "Emit the result as JSON")
	f.StringVar(&classifyCatalog, "catalog", "", "Industry catalog JSON file (default: embedded)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(classifyCatalog, "industries")
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		return err
	}
	eng, err := matchers.Industry(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		return err
	}

	classifier := &matchers.IndustryClassifier{
		Engine:      eng,
		MinLLMScore: classifyMinLLMScore,
	}
	if !classifyNoLLM {
		client := ollama.New(classifyOllamaHost, classifyModel, 15*time.Second)
		classifier.Pick = func(ctx context.Context, catalog, userText string) (string, float64, string, error) {
			p, err := client.PickCode(ctx, catalog, userText)
			if err != nil {
				return "", 0, "", err
			}
			return p.Code, p.Confidence, p.Reason, nil
		}
	}

	result, err := classifier.Classify(cmd.Context(), args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "classify: %v\n", err)
		return err
	}

	if classifyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s⚡ %s%s │ %s / %s │ %s%.2f%s %s(%s)%s\n",
		colorBold, result.Code, colorReset,
		result.NameFa, result.NameEn,
		colorGreen, result.Score, colorReset,
		colorGray, result.Source, colorReset)
	if result.Reason != "" {
		fmt.Printf("  %s%s%s\n", colorGray, result.Reason, colorReset)
	}
	return nil
}
