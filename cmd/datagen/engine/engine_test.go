package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := GeneratorConfig{Scenario: "uniform", Count: 50, Seed: 7}

	first, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(first) != 50 {
		t.Fatalf("Generate() produced %d values, want 50", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed diverges at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGenerateScenarios(t *testing.T) {
	tests := []struct {
		scenario string
		check    func(t *testing.T, values []float64)
	}{
		{"uniform", func(t *testing.T, values []float64) {
			for _, v := range values {
				if v < 0 || v > 100 {
					t.Fatalf("uniform value out of range: %v", v)
				}
			}
		}},
		{"normal", func(t *testing.T, values []float64) {
			var sum float64
			for _, v := range values {
				sum += v
			}
			mean := sum / float64(len(values))
			if mean < 40 || mean > 60 {
				t.Fatalf("normal mean far off center: %v", mean)
			}
		}},
		{"salaries", func(t *testing.T, values []float64) {
			for _, v := range values {
				if v <= 0 {
					t.Fatalf("salary must be positive: %v", v)
				}
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			values, err := Generate(GeneratorConfig{Scenario: tt.scenario, Count: 500, Seed: 42})
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			tt.check(t, values)
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(GeneratorConfig{Scenario: "weibull", Count: 10}); err == nil {
		t.Error("unknown scenario accepted")
	}
	if _, err := Generate(GeneratorConfig{Scenario: "uniform", Count: 0}); err == nil {
		t.Error("zero count accepted")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	if err := Save(dir, "out.txt", []float64{1.5, 2.25}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || lines[0] != "1.50" || lines[1] != "2.25" {
		t.Errorf("unexpected file content: %q", string(data))
	}
}
