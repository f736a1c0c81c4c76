// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runner provides the main function for running the msiproducts binary.
package runner

import (
	"context"
	"fmt"
	"io"

	"github.com/google/msiproducts"
	"github.com/google/msiproducts/binary/cli"
	"github.com/google/msiproducts/binary/platform"
	"github.com/google/msiproducts/guid"
	"github.com/google/msiproducts/log"
	"github.com/google/msiproducts/version"
)

const programName = "msiproducts"

// Run resolves the upgrade code given in the CLI flags, prints the products found to stdout and
// returns the exit code passed to os.Exit() in the main binary.
func Run(flags *cli.Flags, stdout io.Writer) int {
	if flags.PrintVersion {
		fmt.Fprintf(stdout, "%s v%s\n", programName, version.ToolVersion)
		return 0
	}

	closeLog := initLogging(flags)
	defer closeLog()

	arg := flags.UpgradeCode()
	if arg == "" {
		fmt.Fprintln(stdout, "Insufficient arguments")
		log.Errorf("No upgrade code given")
		return -1
	}
	if len(flags.Args) > 1 {
		log.Warnf("Ignoring extra arguments: %v", flags.Args[1:])
	}

	upgradeCode, err := guid.Parse(arg)
	if err != nil {
		fmt.Fprintf(stdout, "Invalid upgrade code: %s\n", arg)
		log.Errorf("Invalid upgrade code: %v", err)
		return 1
	}

	cfg, err := flags.GetScanConfig()
	if err != nil {
		log.Errorf("%v.GetScanConfig(): %v", flags, err)
		return 1
	}

	log.Infof("Resolving products of upgrade code %v", upgradeCode)
	result, err := msiproducts.Scan(context.Background(), upgradeCode, cfg)
	if err != nil {
		log.Errorf("Failed to resolve upgrade code %v: %v", upgradeCode, err)
		return 1
	}
	log.Infof("Found %d products in %v", len(result.Products), result.EndTime.Sub(result.StartTime))

	if err := cli.WriteText(stdout, result); err != nil {
		log.Errorf("Error writing results to stdout: %v", err)
		return 1
	}
	if err := flags.WriteScanResults(result); err != nil {
		log.Errorf("Error writing scan results: %v", err)
		return 1
	}

	return 0
}

// initLogging points the global logger to a log file in the configured directory. The returned
// function restores the previous logger.
func initLogging(flags *cli.Flags) func() {
	prev := log.Current()

	dir := flags.LogDir
	if dir == "" {
		dir = platform.LogDir()
	}
	l, err := log.NewDirLogger(dir, programName, flags.Verbose)
	if err != nil {
		log.SetLogger(&log.DefaultLogger{Verbose: flags.Verbose})
		log.Warnf("Logging to stderr: %v", err)
		return func() { log.SetLogger(prev) }
	}

	log.SetLogger(l)
	log.Debugf("Logging to %s", l.Path())
	return func() {
		log.SetLogger(prev)
		if err := l.Close(); err != nil {
			log.Warnf("Failed to close log file %s: %v", l.Path(), err)
		}
	}
}
