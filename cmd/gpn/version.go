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

// Part of the gpn CLI - this file implements the 'gpn version' subcommand.
package main

import (
	"fmt"

	bsemver "github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

// version is the build version, overridden at link time:
//
//	go build -ldflags "-X main.version=1.2.3" ./cmd/gpn
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gpn version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	v, err := bsemver.Parse(version)
	if err != nil {
		return fmt.Errorf("build version %q is not valid semver: %w", version, err)
	}
	fmt.Printf("gpn %s\n", v.String())
	return nil
}
