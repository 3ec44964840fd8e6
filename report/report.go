// Package report renders matching results for humans (lipgloss terminal
// output) and machines (structured JSON mirroring the analyze schema).
package report

import (
	"encoding/json"
	"io"

	"github.com/huemap-cli/huemap/match"
)

// Output is the complete machine-readable result of one analysis run.
type Output struct {
	Theme   string         `json:"theme" jsonschema:"description=Display name of the analyzed theme."`
	Palette string         `json:"palette" jsonschema:"description=Display name of the reference palette."`
	Metric  match.Metric   `json:"metric" jsonschema:"description=Distance metric used for closest-match selection."`
	Results []match.Result `json:"results"`
	Summary match.Summary  `json:"summary"`
}

// JSON writes the output as a single JSON document.
func (o *Output) JSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	return encoder.Encode(o)
}
