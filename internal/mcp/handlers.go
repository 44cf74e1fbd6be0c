package mcp

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"descstat/internal/dataset"
	"descstat/internal/stats"
	"descstat/internal/visuals"
)

// DatasetReport is the response payload for describe_dataset.
type DatasetReport struct {
	File      string        `json:"file"`
	Summary   stats.Summary `json:"summary"`
	Histogram string        `json:"histogram,omitempty"`
}

// QuantileReport is the response payload for get_quantiles.
type QuantileReport struct {
	N         int                `json:"n"`
	Quantiles map[string]float64 `json:"quantiles"`
}

func (s *Server) handleListDatasets() (interface{}, error) {
	datasets, err := dataset.List(s.cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets in %s: %w", s.cfg.DataPath, err)
	}
	return map[string]interface{}{
		"data_path": s.cfg.DataPath,
		"datasets":  datasets,
	}, nil
}

func (s *Server) handleDescribeDataset(file string) (interface{}, error) {
	path, err := s.resolveDatasetPath(file)
	if err != nil {
		return nil, err
	}

	values, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	summary, err := stats.Describe(values, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	report := DatasetReport{File: file, Summary: summary}
	if s.cfg.EnableMermaidCharts {
		report.Histogram = visuals.GenerateHistogram(values, s.cfg.HistogramBins)
	}
	return report, nil
}

func (s *Server) handleDescribeValues(rawValues, rawWeights interface{}) (interface{}, error) {
	values, err := asFloats(rawValues)
	if err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}

	var weights []float64
	if rawWeights != nil {
		weights, err = asFloats(rawWeights)
		if err != nil {
			return nil, fmt.Errorf("weights: %w", err)
		}
	}

	return stats.Describe(values, weights)
}

func (s *Server) handleGetQuantiles(file string, rawValues, rawProbs interface{}) (interface{}, error) {
	probs, err := asFloats(rawProbs)
	if err != nil {
		return nil, fmt.Errorf("probabilities: %w", err)
	}
	if len(probs) == 0 {
		return nil, fmt.Errorf("probabilities must not be empty")
	}

	var values []float64
	switch {
	case file != "":
		path, err := s.resolveDatasetPath(file)
		if err != nil {
			return nil, err
		}
		values, err = dataset.Load(path)
		if err != nil {
			return nil, err
		}
	case rawValues != nil:
		values, err = asFloats(rawValues)
		if err != nil {
			return nil, fmt.Errorf("values: %w", err)
		}
	default:
		return nil, fmt.Errorf("either file or values is required")
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	report := QuantileReport{
		N:         len(values),
		Quantiles: make(map[string]float64, len(probs)),
	}
	for _, p := range probs {
		q, err := stats.Quantile(p, sorted, nil)
		if err != nil {
			return nil, err
		}
		report.Quantiles[fmt.Sprintf("p%g", p*100)] = q
	}
	return report, nil
}

// resolveDatasetPath joins file with the data directory and rejects paths
// escaping it.
func (s *Server) resolveDatasetPath(file string) (string, error) {
	if file == "" {
		return "", fmt.Errorf("file is required")
	}
	if filepath.IsAbs(file) || strings.Contains(file, "..") {
		return "", fmt.Errorf("file must be a plain name inside the data directory: %s", file)
	}
	return filepath.Join(s.cfg.DataPath, file), nil
}

func asFloats(v interface{}) ([]float64, error) {
	raw, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of numbers")
	}
	out := make([]float64, len(raw))
	for i, item := range raw {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("element %d is not a number", i)
		}
		out[i] = f
	}
	return out, nil
}
