package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// Load reads a dataset file: one decimal number per line, blank lines skipped.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	values, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Read parses newline-separated decimal numbers from r. A non-numeric line is
// a parse failure that names the offending line.
func Read(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	var values []float64
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid number %q", line, text)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Info describes a dataset file available in the data directory.
type Info struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

// List enumerates the .txt and .csv dataset files directly under dir,
// sorted by name.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var datasets []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".csv" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, Info{
			Name:      entry.Name(),
			Path:      filepath.Join(dir, entry.Name()),
			SizeBytes: info.Size(),
		})
	}

	slices.SortFunc(datasets, func(a, b Info) int {
		return strings.Compare(a.Name, b.Name)
	})
	return datasets, nil
}
