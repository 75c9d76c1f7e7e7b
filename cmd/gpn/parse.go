/*
   Copyright 2026 The GPN Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Part of the gpn CLI - this file implements the 'gpn parse' subcommand.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tablut.dev/gpn/gpncore/model/identifier"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse <identifier>...",
	Short: "Decompose identifiers into their components",
	Long: "Parse each argument and print its style name, side, piece type and " +
		"state. With --output json or yaml, print a structured breakdown instead.",
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "text",
		"output format: text, json or yaml")
}

// breakdown is the structured form emitted by --output json/yaml.
type breakdown struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Style      string `json:"style" yaml:"style"`
	Side       string `json:"side" yaml:"side"`
	Type       string `json:"type" yaml:"type"`
	State      string `json:"state" yaml:"state"`
	Terminal   bool   `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

func newBreakdown(id identifier.Identifier) breakdown {
	return breakdown{
		Identifier: id.String(),
		Style:      id.StyleName(),
		Side:       id.Side().String(),
		Type:       string(id.Type()),
		State:      id.State().String(),
		Terminal:   id.Terminal(),
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	opts := grammar()

	ids := make([]identifier.Identifier, 0, len(args))
	for _, arg := range args {
		id, err := opts.Parse(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	switch parseOutput {
	case "text":
		for _, id := range ids {
			b := newBreakdown(id)
			fmt.Printf("%s\tstyle=%s side=%s type=%s state=%s", b.Identifier, b.Style, b.Side, b.Type, b.State)
			if b.Terminal {
				fmt.Print(" terminal")
			}
			fmt.Println()
		}
	case "json":
		out := make([]breakdown, len(ids))
		for i, id := range ids {
			out[i] = newBreakdown(id)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		out := make([]breakdown, len(ids))
		for i, id := range ids {
			out[i] = newBreakdown(id)
		}
		return yaml.NewEncoder(os.Stdout).Encode(out)
	default:
		return fmt.Errorf("unknown output format %q", parseOutput)
	}
	return nil
}
