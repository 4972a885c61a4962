// Copyright 2024 StreamNative, Inc.
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

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/streamnative/inflation/cmd/flag"
	"github.com/streamnative/inflation/common/logging"
	"github.com/streamnative/inflation/report"
)

const envPrefix = "INFLATION"

var (
	logLevelStr string
	configFile  string
	conf        = report.NewConfig()

	rootCmd = &cobra.Command{
		Use:   "inflation",
		Short: "Compare the inflation of the Czech and the Slovak Republic",
		Long: `Print the annual inflation rates of the Czech and the Slovak Republic since 1993,
their extremes, and what money kept in cash in each country is worth today.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: configureLogLevel,
		RunE:              exec,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

type LogLevelError string

func (l LogLevelError) Error() string {
	return fmt.Sprintf("unknown log level (%s)", string(l))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.Flags().SortFlags = false
	flag.Amount(rootCmd, &conf.Amount)
	flag.StartYear(rootCmd, &conf.StartYear)
	flag.EndYear(rootCmd, &conf.EndYear)
	flag.Format(rootCmd, &conf.Format)
	flag.MissingYear(rootCmd, &conf.MissingYear)
	rootCmd.Flags().StringVarP(&configFile, "conf", "f", "", "Report config file")
}

func configureLogLevel(*cobra.Command, []string) error {
	logLevel, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return LogLevelError(logLevelStr)
	}
	logging.LogLevel = logLevel
	logging.ConfigureLogger()
	return nil
}

// loadConfig merges, by increasing priority, the defaults, the config
// file, the INFLATION_* environment variables and the flags.
func loadConfig(cmd *cobra.Command) (report.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return report.Config{}, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return report.Config{}, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
		slog.Debug("Loaded config file", slog.String("path", v.ConfigFileUsed()))
	}

	c := report.NewConfig()
	if err := v.Unmarshal(&c); err != nil {
		return report.Config{}, errors.Wrap(err, "failed to load report config")
	}
	return c, nil
}

func exec(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	slog.Debug(
		"Running report",
		slog.Float64("amount", c.Amount),
		slog.Int("start-year", c.StartYear),
		slog.Int("end-year", c.EndYear),
		slog.String("format", string(c.Format)),
		slog.String("missing-year", c.MissingYear),
	)

	_, err = report.Run(cmd.OutOrStdout(), c)
	return err
}

func main() {
	if _, err := maxprocs.Set(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Failed to generate the report", slog.Any("error", err))
		os.Exit(1)
	}
}
