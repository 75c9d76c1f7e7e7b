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

// Part of the gpn CLI - this file implements the 'gpn format' subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tablut.dev/gpn/gpncore/model/identifier"
	"tablut.dev/gpn/gpncore/model/piece"
	"tablut.dev/gpn/gpncore/model/side"
)

var (
	formatStyle string
	formatType  string
	formatSide  string
	formatState string
)

var formatCmd = &cobra.Command{
	Use:   "format --style <name> --type <letter> [--side first|second] [--state normal|enhanced|diminished]",
	Short: "Build an identifier from components",
	Long: "Construct an identifier from a style name, a piece type letter, a " +
		"side and a state, and print its textual form. Name and letter are " +
		"case-insensitive; the side decides the casing of the output.",
	Args: cobra.NoArgs,
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().StringVar(&formatStyle, "style", "", "style name (required)")
	formatCmd.Flags().StringVar(&formatType, "type", "", "piece type letter (required)")
	formatCmd.Flags().StringVar(&formatSide, "side", side.FirstPlayerStr, "owning player")
	formatCmd.Flags().StringVar(&formatState, "state", piece.StateNormalStr, "piece state")
	_ = formatCmd.MarkFlagRequired("style")
	_ = formatCmd.MarkFlagRequired("type")
}

func runFormat(cmd *cobra.Command, args []string) error {
	sd, err := side.ParseSide(formatSide)
	if err != nil {
		return err
	}
	st, err := piece.ParseState(formatState)
	if err != nil {
		return err
	}
	if len([]rune(formatType)) != 1 {
		return fmt.Errorf("--type must be a single letter, got %q", formatType)
	}

	id, err := identifier.NewFromParams(formatStyle, sd, []rune(formatType)[0], st)
	if err != nil {
		return err
	}
	fmt.Println(id.String())
	return nil
}
