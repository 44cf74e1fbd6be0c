package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "list_datasets",
				"description": "List the dataset files (.txt/.csv, one decimal number per line) available in the configured data directory.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "describe_dataset",
				"description": "Compute descriptive statistics (n, min, max, mean, median, quartiles, bias-corrected variance, standard deviation) for a dataset file from the data directory.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"file": map[string]interface{}{"type": "string", "description": "Dataset file name relative to the data directory"},
					},
					"required": []string{"file"},
				},
			},
			map[string]interface{}{
				"name":        "describe_values",
				"description": "Compute descriptive statistics for an inline list of numbers, optionally weighted. Weights are frequency weights; the variance divisor is sum(weights)-1.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"values":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}},
						"weights": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}, "description": "Optional, same length as values"},
					},
					"required": []string{"values"},
				},
			},
			map[string]interface{}{
				"name":        "get_quantiles",
				"description": "Compute empirical quantiles (inverted CDF with averaging at discontinuities) for a dataset file or an inline list of numbers.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"file":          map[string]interface{}{"type": "string", "description": "Dataset file name (alternative to values)"},
						"values":        map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}},
						"probabilities": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}, "description": "Probabilities in [0, 1]"},
					},
					"required": []string{"probabilities"},
				},
			},
		},
	}
}
