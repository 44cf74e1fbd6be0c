package visuals

import (
	"fmt"
	"math"
	"strings"
)

// GenerateHistogram creates a Mermaid xychart-beta bar chart of the sample
// distribution using equal-width bins over [min, max].
func GenerateHistogram(values []float64, bins int) string {
	if len(values) == 0 || bins <= 0 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	// Degenerate sample: every observation identical.
	if minV == maxV {
		bins = 1
	}

	counts := make([]int, bins)
	width := (maxV - minV) / float64(bins)
	for _, v := range values {
		idx := bins - 1
		if width > 0 {
			idx = int((v - minV) / width)
			if idx >= bins {
				idx = bins - 1 // max value lands in the last bin
			}
		}
		counts[idx]++
	}

	maxCount := 0
	var labels []string
	var bars []string
	for i, count := range counts {
		lo := minV + float64(i)*width
		labels = append(labels, fmt.Sprintf("\"%.4g\"", lo))
		bars = append(bars, fmt.Sprintf("%d", count))
		if count > maxCount {
			maxCount = count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Sample Distribution\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))

	// Give the bars breathing room above the tallest bin.
	maxY := int(math.Ceil(float64(maxCount) * 1.2))
	if maxY < 1 {
		maxY = 1
	}
	sb.WriteString(fmt.Sprintf("    y-axis \"Count\" 0 --> %d\n", maxY))

	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(bars, ", ")))
	sb.WriteString("```")
	return sb.String()
}
