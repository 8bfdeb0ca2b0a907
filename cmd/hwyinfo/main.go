// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwyinfo reports which SIMD levels the running CPU grants, checks
// every granted backend against the scalar reference, and times a kernel
// at each level.
//
// Usage:
//
//	hwyinfo detect [--json]
//	hwyinfo verify [--size 1000]
//	hwyinfo bench [--size 4096] [--duration 200ms]
//
// Flags default from HWYINFO_* environment variables; the process-wide
// HWY_NO_SIMD and HWY_MAX_LEVEL variables are honored as well.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-hwcap/hwy"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logFormat string
	verbose   bool
	maxLevel  string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var g globalFlags
	rootCmd := &cobra.Command{
		Use:          "hwyinfo",
		Short:        "Inspect and verify the SIMD backends of this machine",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.logFormat, "log-format", getEnvStr("HWYINFO_LOG_FORMAT", "text"), "Log format: text or json")
	pf.BoolVarP(&g.verbose, "verbose", "v", getEnvBool("HWYINFO_VERBOSE", false), "Log at debug level")
	pf.StringVar(&g.maxLevel, "max-level", getEnvStr("HWYINFO_MAX_LEVEL", ""), "Cap the levels considered (scalar, baseline, wide, masked-wide)")

	rootCmd.AddCommand(newDetectCmd(&g), newVerifyCmd(&g), newBenchCmd(&g))
	return rootCmd
}

// dispatcher builds the dispatcher every subcommand selects from. The
// environment config applies first; --max-level can only lower it.
func (g *globalFlags) dispatcher(cmd *cobra.Command) (*hwy.Dispatcher, *slog.Logger, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), g.logFormat, g.verbose)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := hwy.ConfigFromEnv()
	if err != nil {
		logger.Warn("ignoring environment config", "error", err)
	}
	if g.maxLevel != "" {
		l, err := hwy.ParseLevel(g.maxLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("--max-level: %w", err)
		}
		cfg.MaxLevel = min(cfg.MaxLevel, l)
	}
	return hwy.NewDispatcher(hwy.WithConfig(cfg), hwy.WithLogger(logger)), logger, nil
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
}

// getEnvStr returns environment variable or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration returns environment variable as duration or default
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// getEnvBool returns environment variable as bool or default
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
