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

// Part of the gpn CLI - this file implements the 'gpn validate' subcommand.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <identifier>...",
	Short: "Check identifiers against the grammar",
	Long: "Validate each argument against the composite identifier grammar and " +
		"report the first rule it breaks. Exits non-zero if any argument is invalid.",
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := grammar()
	failed := 0
	for _, arg := range args {
		if _, err := opts.Parse(arg); err != nil {
			fmt.Printf("%s\tinvalid\t%v\n", arg, err)
			failed++
			continue
		}
		fmt.Printf("%s\tvalid\n", arg)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d identifiers invalid", failed, len(args))
	}
	return nil
}
