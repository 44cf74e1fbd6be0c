package engine

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

type GeneratorConfig struct {
	Scenario string // "uniform", "normal" or "salaries"
	Count    int
	Seed     int64
}

// Generate produces a synthetic sample for the given scenario. The same seed
// always yields the same values.
func Generate(cfg GeneratorConfig) ([]float64, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	values := make([]float64, cfg.Count)

	switch cfg.Scenario {
	case "uniform":
		// Flat between 0 and 100.
		for i := range values {
			values[i] = rng.Float64() * 100
		}
	case "normal":
		// Bell curve around 50 with sigma 15.
		for i := range values {
			values[i] = 50 + rng.NormFloat64()*15
		}
	case "salaries":
		// Right-skewed lognormal with a median near 48000, the salary shape
		// from the worked example.
		for i := range values {
			values[i] = math.Exp(math.Log(48000) + rng.NormFloat64()*0.6)
		}
	default:
		return nil, fmt.Errorf("unknown scenario: %s (available: uniform, normal, salaries)", cfg.Scenario)
	}

	return values, nil
}

// Save writes the sample as a newline-separated dataset file under dir.
func Save(dir, name string, values []float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := w.WriteString(strconv.FormatFloat(v, 'f', 2, 64) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
