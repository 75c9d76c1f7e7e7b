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

// Part of the gpn CLI - this file wires the root command and shared flags.
package main

import (
	"github.com/spf13/cobra"

	"tablut.dev/gpn/gpncore/model/identifier"
)

var (
	terminalMarker bool
)

var rootCmd = &cobra.Command{
	Use:   "gpn",
	Short: "Game piece notation tool",
	Long: "gpn parses, validates and transforms composite game piece identifiers " +
		"of the form <style>:<piece>, where letter casing encodes the owning player.",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&terminalMarker, "terminal", false,
		"accept the terminal-marker format variant (trailing ')")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(flipCmd)
	rootCmd.AddCommand(versionCmd)
}

// grammar returns the identifier grammar selected by the shared flags.
func grammar() identifier.Options {
	return identifier.Options{TerminalMarker: terminalMarker}
}
