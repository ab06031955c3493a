// cmd/estimator/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"furnishing-engine/internal/common/config"
	"furnishing-engine/internal/common/logger"
	"furnishing-engine/pkg/autoconfig"
	"furnishing-engine/pkg/budget"
	"furnishing-engine/pkg/catalog"
	"furnishing-engine/pkg/roi"
)

func main() {
	suggestCmd := flag.NewFlagSet("suggest", flag.ExitOnError)
	estimateCmd := flag.NewFlagSet("estimate", flag.ExitOnError)
	roiCmd := flag.NewFlagSet("roi", flag.ExitOnError)

	// Suggest command flags
	sqft := suggestCmd.Int("sqft", 0, "Total square footage of the property")
	guests := suggestCmd.Int("guests", 0, "Desired maximum guest capacity")
	suggestConfig := suggestCmd.String("config", "", "Path to a config file (default: discover configs/config.yaml)")

	// Estimate command flags
	selectionPath := estimateCmd.String("selection", "", "Path to a JSON file with the selected rooms")
	project := estimateCmd.Bool("project", false, "Produce a full project budget with add-ons")
	projectSqft := estimateCmd.Int("sqft", 0, "Square footage (required with -project, drives the design fee)")
	projectGuests := estimateCmd.Int("guests", 0, "Guest capacity recorded on the project")
	estimateConfig := estimateCmd.String("config", "", "Path to a config file (default: discover configs/config.yaml)")

	// ROI command flags
	roiInputPath := roiCmd.String("input", "", "Path to a JSON file with before/after assumptions")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "suggest":
		suggestCmd.Parse(os.Args[2:])
		if *sqft <= 0 || *guests <= 0 {
			fmt.Println("Error: -sqft and -guests are required for suggest.")
			suggestCmd.Usage()
			os.Exit(1)
		}
		cfg, log := mustLoadConfig(*suggestConfig)
		runSuggest(cfg, log, *sqft, *guests)

	case "estimate":
		estimateCmd.Parse(os.Args[2:])
		if *selectionPath == "" {
			fmt.Println("Error: -selection is required for estimate.")
			estimateCmd.Usage()
			os.Exit(1)
		}
		if *project && *projectSqft <= 0 {
			fmt.Println("Error: -sqft is required with -project.")
			estimateCmd.Usage()
			os.Exit(1)
		}
		cfg, log := mustLoadConfig(*estimateConfig)
		runEstimate(cfg, log, *selectionPath, *project, *projectSqft, *projectGuests)

	case "roi":
		roiCmd.Parse(os.Args[2:])
		if *roiInputPath == "" {
			fmt.Println("Error: -input is required for roi.")
			roiCmd.Usage()
			os.Exit(1)
		}
		runROI(*roiInputPath)

	default:
		help()
		os.Exit(1)
	}
}

// mustLoadConfig loads the application config, from an explicit path when
// given, and builds the logger from its logging section.
func mustLoadConfig(path string) (*config.Config, logger.Logger) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return cfg, logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
}

func runSuggest(cfg *config.Config, log logger.Logger, sqft, guests int) {
	rules, err := catalog.LoadRules(cfg.Data.RulesPath)
	if err != nil {
		log.WithError(err).Error("failed to load rules document", nil)
		os.Exit(1)
	}

	clamped := autoconfig.ClampGuestCount(guests, rules)
	if clamped != guests {
		log.Warn("guest count clamped into allowed range", map[string]interface{}{
			"requested": guests,
			"clamped":   clamped,
		})
	}

	result := autoconfig.Compute(sqft, clamped, rules)
	printJSON(result)
}

func runEstimate(cfg *config.Config, log logger.Logger, selectionPath string, project bool, sqft, guests int) {
	itemCat, err := catalog.LoadItems(cfg.Data.ItemsPath)
	if err != nil {
		log.WithError(err).Error("failed to load item catalog", nil)
		os.Exit(1)
	}
	tplCat, err := catalog.LoadTemplates(cfg.Data.TemplatesPath)
	if err != nil {
		log.WithError(err).Error("failed to load room templates", nil)
		os.Exit(1)
	}

	data, err := os.ReadFile(selectionPath)
	if err != nil {
		log.WithError(err).Error("failed to read selection file", nil)
		os.Exit(1)
	}
	var rooms []catalog.SelectedRoom
	if err := json.Unmarshal(data, &rooms); err != nil {
		log.WithError(err).Error("failed to parse selection file", nil)
		os.Exit(1)
	}

	items := catalog.ItemIndex(itemCat.Items)
	templates := catalog.TemplateIndex(tplCat.Templates)
	opts := budget.Options{
		Defaults:           cfg.Budget.ToDefaults(),
		DisableContingency: cfg.Budget.DisableContingency,
		Logger:             log,
	}

	if project {
		specs := catalog.PropertySpecs{SquareFootage: sqft, GuestCapacity: guests}
		printJSON(budget.CalculateProjectEstimate(rooms, templates, items, specs, opts))
		return
	}
	printJSON(budget.CalculateEstimate(rooms, templates, items, opts))
}

func runROI(inputPath string) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	var in roi.Inputs
	if err := json.Unmarshal(data, &in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printJSON(roi.ComputeProjection(in))
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func help() {
	fmt.Println("Usage: estimator <command> [flags]")
	fmt.Println("Commands:")
	fmt.Println("  suggest   Recommend a furnishing configuration for a property")
	fmt.Println("  estimate  Compute a tiered budget for selected rooms")
	fmt.Println("  roi       Project before/after financial gains")
}
