// ABOUTME: Benchmark entry point for retrieval quality evaluation
// ABOUTME: Runs all scenarios and exports a JSON summary
package main

import (
	"flag"
	"fmt"
	"os"

	"flipflops/benchmarks/ragas"
)

func main() {
	verbose := flag.Bool("verbose", false, "Print per-scenario progress and scores")
	output := flag.String("output", "benchmark_results.json", "Path for the JSON results file")
	flag.Parse()

	runner := ragas.NewBenchmarkRunner(*verbose)

	results, err := runner.RunAllTests()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	passed := 0
	for _, result := range results {
		if result.Status == "PASS" {
			passed++
		}
		fmt.Printf("%-6s %s (faithfulness %.2f, recall %.2f)\n",
			result.Status, result.TestName, result.FaithfulnessScore, result.ContextRecallScore)
	}
	fmt.Printf("\n%d/%d scenarios passed\n", passed, len(results))

	if err := runner.ExportResults(results, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	if passed < len(results) {
		os.Exit(1)
	}
}
