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

// Part of the gpn CLI - this file implements the 'gpn flip' subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flipCmd = &cobra.Command{
	Use:   "flip <identifier>...",
	Short: "Move identifiers to the other player",
	Long: "Parse each argument and print the same piece owned by the other " +
		"player; both halves change casing together.",
	Args: cobra.MinimumNArgs(1),
	RunE: runFlip,
}

func runFlip(cmd *cobra.Command, args []string) error {
	opts := grammar()
	for _, arg := range args {
		id, err := opts.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Println(id.Flip().String())
	}
	return nil
}
