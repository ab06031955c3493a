// cmd/tools/rules-validator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"furnishing-engine/pkg/autoconfig"
	"furnishing-engine/pkg/catalog"
)

func main() {
	path := flag.String("path", "configs/autoconfig-rules.json", "Path to the rules document")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := catalog.ValidateRulesDocument(data); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	rules, err := catalog.LoadRules(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	if err := autoconfig.VerifyRuleCapacities(rules); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s\n", catalog.DescribeRules(rules))
}
