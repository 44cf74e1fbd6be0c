package mcp

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"descstat/internal/config"
	"descstat/internal/stats"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	content := "32.32\n56.98\n21.52\n44.32\n55.63\n13.75\n43.47\n43.34\n12.34\n"
	if err := os.WriteFile(filepath.Join(dir, "article.txt"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return NewServer(&config.AppConfig{
		DataPath:      dir,
		HistogramBins: 10,
	})
}

func TestHandleListDatasets(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListDatasets()
	if err != nil {
		t.Fatalf("handleListDatasets() error: %v", err)
	}
	m := res.(map[string]interface{})
	if m["data_path"] != s.cfg.DataPath {
		t.Errorf("data_path = %v, want %v", m["data_path"], s.cfg.DataPath)
	}
}

func TestHandleDescribeDataset(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleDescribeDataset("article.txt")
	if err != nil {
		t.Fatalf("handleDescribeDataset() error: %v", err)
	}

	report := res.(DatasetReport)
	if report.Summary.N != 9 {
		t.Errorf("N = %d, want 9", report.Summary.N)
	}
	if math.Abs(report.Summary.Median-43.34) > 1e-9 {
		t.Errorf("Median = %v, want 43.34", report.Summary.Median)
	}
	if report.Histogram != "" {
		t.Errorf("histogram rendered although charts are disabled")
	}
}

func TestHandleDescribeDatasetWithChart(t *testing.T) {
	s := newTestServer(t)
	s.cfg.EnableMermaidCharts = true

	res, err := s.handleDescribeDataset("article.txt")
	if err != nil {
		t.Fatalf("handleDescribeDataset() error: %v", err)
	}
	report := res.(DatasetReport)
	if !strings.Contains(report.Histogram, "xychart-beta") {
		t.Errorf("histogram missing:\n%s", report.Histogram)
	}
}

func TestHandleDescribeDatasetPathEscape(t *testing.T) {
	s := newTestServer(t)

	for _, file := range []string{"", "../etc/passwd", "/etc/passwd"} {
		if _, err := s.handleDescribeDataset(file); err == nil {
			t.Errorf("handleDescribeDataset(%q) did not fail", file)
		}
	}
}

func TestHandleDescribeValues(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleDescribeValues([]interface{}{10.0, 20.0}, []interface{}{3.0, 1.0})
	if err != nil {
		t.Fatalf("handleDescribeValues() error: %v", err)
	}
	summary := res.(stats.Summary)
	if math.Abs(summary.Mean-12.5) > 1e-9 {
		t.Errorf("Mean = %v, want 12.5", summary.Mean)
	}

	if _, err := s.handleDescribeValues([]interface{}{1.0, "two"}, nil); err == nil {
		t.Error("non-numeric element accepted")
	}
	if _, err := s.handleDescribeValues(nil, nil); err == nil {
		t.Error("missing values accepted")
	}
}

func TestHandleGetQuantiles(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleGetQuantiles("article.txt", nil, []interface{}{0.5, 1.0})
	if err != nil {
		t.Fatalf("handleGetQuantiles() error: %v", err)
	}
	report := res.(QuantileReport)
	if report.N != 9 {
		t.Errorf("N = %d, want 9", report.N)
	}
	if math.Abs(report.Quantiles["p50"]-43.34) > 1e-9 {
		t.Errorf("p50 = %v, want 43.34", report.Quantiles["p50"])
	}
	if math.Abs(report.Quantiles["p100"]-56.98) > 1e-9 {
		t.Errorf("p100 = %v, want 56.98", report.Quantiles["p100"])
	}

	// Inline values work without a file.
	res, err = s.handleGetQuantiles("", []interface{}{3.0, 1.0, 2.0}, []interface{}{0.5})
	if err != nil {
		t.Fatalf("handleGetQuantiles() error: %v", err)
	}
	if got := res.(QuantileReport).Quantiles["p50"]; got != 2 {
		t.Errorf("p50 = %v, want 2", got)
	}

	if _, err := s.handleGetQuantiles("", nil, []interface{}{0.5}); err == nil {
		t.Error("missing input accepted")
	}
	if _, err := s.handleGetQuantiles("article.txt", nil, []interface{}{}); err == nil {
		t.Error("empty probabilities accepted")
	}
}

func TestCallToolDispatch(t *testing.T) {
	s := newTestServer(t)

	params, _ := json.Marshal(map[string]interface{}{
		"name":      "describe_dataset",
		"arguments": map[string]interface{}{"file": "article.txt"},
	})
	result, errRes := s.callTool(params)
	if errRes != nil {
		t.Fatalf("callTool() error: %v", errRes)
	}
	content := result.(map[string]interface{})["content"].([]interface{})
	text := content[0].(map[string]interface{})["text"].(string)
	if !strings.Contains(text, "\"median\": 43.34") {
		t.Errorf("unexpected tool output:\n%s", text)
	}

	params, _ = json.Marshal(map[string]interface{}{"name": "no_such_tool"})
	if _, errRes := s.callTool(params); errRes == nil {
		t.Error("unknown tool did not return an error")
	}
}

func TestHandleRequestUnknownMethod(t *testing.T) {
	s := newTestServer(t)
	var buf bytes.Buffer
	s.out = &buf

	s.handleRequest(JSONRPCRequest{JSONRPC: "2.0", ID: 1, Method: "bogus/method"})

	var resp JSONRPCResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Error == nil {
		t.Error("expected a JSON-RPC error for an unknown method")
	}
}
