package main

import (
	"descstat/cmd/datagen/engine"
	"flag"
	"fmt"
	"os"
)

func main() {
	scenario := flag.String("scenario", "uniform", "Scenario to generate: uniform, normal, salaries")
	outDir := flag.String("out", ".", "Output directory for the dataset file")
	name := flag.String("name", "dataset.txt", "Dataset file name")
	count := flag.Int("count", 1000, "Number of values to generate")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Count:    *count,
		Seed:     *seed,
	}

	fmt.Printf("Generating scenario '%s' (Count: %d, Seed: %d) to %s/%s...\n", cfg.Scenario, cfg.Count, cfg.Seed, *outDir, *name)

	values, err := engine.Generate(cfg)
	if err != nil {
		fmt.Printf("Failed to generate dataset: %v\n", err)
		os.Exit(1)
	}

	if err := engine.Save(*outDir, *name, values); err != nil {
		fmt.Printf("Failed to save dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}
