package cli

import (
	"encoding/json"
	"strings"

	"github.com/vburojevic/probsheet/internal/sheet"
)

// SchemaCmd outputs JSON Schema for probsheet output types
type SchemaCmd struct {
	Type []string `short:"t" help:"Output types to include (sheet,result,stats,error). Default: all"`
}

// Run executes the schema command
func (c *SchemaCmd) Run(globals *Globals) error {
	schemas := map[string]interface{}{
		"sheet":  sheetSchema(),
		"result": resultSchema(),
		"stats":  statsSchema(),
		"error":  errorSchema(),
	}

	// Determine which schemas to output
	typesToOutput := c.Type
	if len(typesToOutput) == 0 {
		typesToOutput = []string{"sheet", "result", "stats", "error"}
	}

	// Build output
	output := map[string]interface{}{
		"$schema":     "http://json-schema.org/draft-07/schema#",
		"title":       "probsheet Output Schemas",
		"description": "Definitions for the problem sheet CSV and probsheet NDJSON output types",
		"definitions": map[string]interface{}{},
	}

	defs := output["definitions"].(map[string]interface{})
	for _, t := range typesToOutput {
		t = strings.ToLower(strings.TrimSpace(t))
		if schema, ok := schemas[t]; ok {
			defs[t] = schema
		}
	}

	// Output as JSON
	encoder := json.NewEncoder(globals.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func sheetSchema() map[string]interface{} {
	columns := make([]interface{}, 0, len(sheet.Header))
	descriptions := map[string]string{
		"Timestamp":      "Session timestamp, passed through from the export",
		"ClientId":       "Client identifier, passed through from the export",
		"Operation":      "Canonical operation name: add, sub, mul, or div",
		"a":              "First operand",
		"b":              "Second operand",
		"c":              "Reserved for non-binary operations; always empty",
		"Duration":       "Session duration in seconds; empty when non-numeric in the export",
		"Score":          "Session score; empty when non-numeric in the export",
		"Mode":           "Session mode",
		"MappedDuration": "Mapped session duration; empty when non-numeric in the export",
		"URL":            "Session URL, passed through from the export",
		"ProblemIndex":   "1-based position of the problem in its session; skips leave gaps",
	}
	for _, col := range sheet.Header {
		columns = append(columns, map[string]interface{}{
			"name":        col,
			"description": descriptions[col],
		})
	}
	return map[string]interface{}{
		"title":       "Problem Sheet CSV",
		"description": "One row per retained arithmetic problem",
		"columns":     columns,
	}
}

func resultSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"title":       "Conversion Result",
		"description": "Emitted on successful conversion with --format ndjson",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":  "string",
				"const": "result",
			},
			"rows": map[string]interface{}{
				"type":        "integer",
				"description": "Number of rows written (excluding the header)",
			},
			"sessions": map[string]interface{}{
				"type":        "integer",
				"description": "Number of session records extracted",
			},
			"output": map[string]interface{}{
				"type":        "string",
				"description": "Path of the written CSV file",
			},
			"elapsed_ms": map[string]interface{}{
				"type":        "integer",
				"description": "Conversion time in milliseconds",
			},
		},
		"required": []string{"type", "rows", "output"},
	}
}

func statsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"title":       "Export Statistics",
		"description": "Emitted by the stats command with --format ndjson",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":  "string",
				"const": "stats",
			},
			"sessions": map[string]interface{}{
				"type":        "integer",
				"description": "Number of session records extracted",
			},
			"problems": map[string]interface{}{
				"type":        "integer",
				"description": "Total problems across all sessions",
			},
			"rows": map[string]interface{}{
				"type":        "integer",
				"description": "Problems that would yield a sheet row",
			},
			"skipped": map[string]interface{}{
				"type":        "integer",
				"description": "Problems dropped by the skip rules",
			},
			"per_operation": map[string]interface{}{
				"type":        "object",
				"description": "Row counts keyed by operation name",
			},
		},
		"required": []string{"type", "sessions", "problems", "rows", "skipped"},
	}
}

func errorSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"title":       "Error",
		"description": "Error message from probsheet",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":  "string",
				"const": "error",
			},
			"code": map[string]interface{}{
				"type":        "string",
				"description": "Error code; exit code 2 for INPUT_NOT_FOUND, 3 for PARSE_FAILED",
				"enum": []string{
					"INPUT_NOT_FOUND",
					"INPUT_UNREADABLE",
					"PARSE_FAILED",
					"WRITE_FAILED",
				},
			},
			"message": map[string]interface{}{
				"type":        "string",
				"description": "Human-readable error description",
			},
		},
		"required": []string{"type", "code", "message"},
	}
}
