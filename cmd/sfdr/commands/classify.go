package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/veridis/sfdr-engine/ai/provider"
	"github.com/veridis/sfdr-engine/config"
	"github.com/veridis/sfdr-engine/engine"
	"github.com/veridis/sfdr-engine/errors"
	"github.com/veridis/sfdr-engine/logger"
)

// ClassifyCmd classifies a document from a file or stdin
var ClassifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a disclosure document",
	Long: `Classify a financial product disclosure into SFDR Article 6, 8, or 9.

Reads the document from the given file, or from stdin when the argument
is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClassify,
}

var (
	classifyDocumentType string
	classifyJSONOutput   bool
	classifyModelMode    string
	classifyTimeout      time.Duration
)

func init() {
	ClassifyCmd.Flags().StringVar(&classifyDocumentType, "document-type", "fund_prospectus", "Document type recorded in the audit trail")
	ClassifyCmd.Flags().BoolVarP(&classifyJSONOutput, "json", "j", false, "Output the full result as JSON")
	ClassifyCmd.Flags().StringVar(&classifyModelMode, "model-mode", "", "Model mode: auto, remote, simulated, or rules (overrides config)")
	ClassifyCmd.Flags().DurationVar(&classifyTimeout, "timeout", 2*time.Minute, "Classification timeout")
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := readDocument(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	if classifyModelMode != "" {
		modeCfg := *cfg
		modeCfg.Model.Mode = classifyModelMode
		cfg = &modeCfg
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	sel, err := provider.New(cfg, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "failed to resolve model provider")
	}

	eng := engine.New(engine.Options{
		Model:     sel.Model,
		ModelName: sel.ModelName,
		Logger:    logger.Logger,
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), classifyTimeout)
	defer cancel()

	result := eng.Classify(ctx, text, classifyDocumentType)

	if classifyJSONOutput {
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to format result")
		}
		fmt.Println(string(output))
		return nil
	}

	printResult(result)
	return nil
}

func readDocument(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", args[0])
	}
	return string(data), nil
}

func printResult(result *engine.ClassificationResult) {
	fmt.Printf("Classification:       %s\n", result.Classification)
	fmt.Printf("Confidence:           %.2f\n", result.Confidence)
	fmt.Printf("Sustainability score: %.2f\n", result.SustainabilityScore)
	fmt.Printf("Compliance status:    %s\n", result.RegulatoryCompliance.Status)
	if result.RegulatoryCompliance.ReviewRequired {
		fmt.Println("Review required:      yes")
	}
	if len(result.KeyIndicators) > 0 {
		fmt.Println("Key indicators:")
		for _, ind := range result.KeyIndicators {
			fmt.Printf("  - %s\n", ind)
		}
	}
	if len(result.RiskFactors) > 0 {
		fmt.Println("Risk factors:")
		for _, risk := range result.RiskFactors {
			fmt.Printf("  - %s\n", risk)
		}
	}
	fmt.Printf("\n%s\n", result.Reasoning)
	if result.AuditTrail != nil {
		fmt.Printf("\nAudit: %s (engine %s, %.3fs)\n",
			result.AuditTrail.ClassificationID,
			result.AuditTrail.EngineVersion,
			result.ProcessingTime)
	}
}
