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

// Package report compares how the inflation of two countries eroded the value
// of money kept in cash, and prints the comparison.
package report

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/streamnative/inflation/dataset"
	"github.com/streamnative/inflation/tracker"
)

// Run writes the report comparing the Czech and the Slovak Republic to out.
func Run(out io.Writer, conf Config) (*Summary, error) {
	return RunSeries(out, conf, dataset.Czech(), dataset.Slovak())
}

// RunSeries writes the report comparing two series to out. A single tracker
// is reused for both countries.
func RunSeries(out io.Writer, conf Config, first, second dataset.Series) (*Summary, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	textOut := out
	if conf.Format != FormatText {
		textOut = io.Discard
	}

	d := &driver{
		conf:    conf,
		console: NewConsole(textOut),
		tracker: tracker.New(first.Country),
	}

	summary, err := d.run(first, second)
	if err != nil {
		return nil, err
	}
	if err := d.console.Err(); err != nil {
		return nil, err
	}

	switch conf.Format {
	case FormatJSON:
		err = writeJSON(out, summary)
	case FormatYAML:
		err = writeYAML(out, summary)
	}
	return summary, err
}

type driver struct {
	conf    Config
	console *Console
	tracker *tracker.InflationTracker
}

func (d *driver) run(first, second dataset.Series) (*Summary, error) {
	d.load(first)

	firstSummary, err := d.describe()
	if err != nil {
		return nil, err
	}

	d.tracker.Clear()
	d.console.PrintData(d.tracker)
	d.console.Blank()

	d.tracker.InsertSeries(second.StartYear, second.Rates)
	d.tracker.ChangeCountryName(second.Country)
	d.printHeader()

	secondSummary, err := d.describe()
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Countries: []CountrySummary{*firstSummary, *secondSummary},
	}
	if firstSummary.futureValue > secondSummary.futureValue {
		summary.HigherInflation, summary.LowerInflation = secondSummary.Country, firstSummary.Country
	} else {
		summary.HigherInflation, summary.LowerInflation = firstSummary.Country, secondSummary.Country
	}

	d.console.Printf("%s had a higher inflation rate than %s!\n", summary.HigherInflation, summary.LowerInflation)
	return summary, nil
}

func (d *driver) load(s dataset.Series) {
	d.tracker.ChangeCountryName(s.Country)
	d.tracker.InsertSeries(s.StartYear, s.Rates)
	slog.Debug(
		"Loaded inflation rates",
		slog.String("country", s.Country),
		slog.Int("start-year", s.StartYear),
		slog.Int("end-year", s.EndYear()),
	)
	d.printHeader()
}

func (d *driver) printHeader() {
	d.console.Printf("Data for %s:\n", d.tracker.CountryName())
	d.console.PrintData(d.tracker)
}

// describe prints the extremes and the projection for the country currently
// held by the tracker.
func (d *driver) describe() (*CountrySummary, error) {
	country := d.tracker.CountryName()

	maxRate, err := d.tracker.Max()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get the maximum for %s", country)
	}
	minRate, err := d.tracker.Min()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get the minimum for %s", country)
	}

	slog.Debug(
		"Computed extremes",
		slog.String("tracker", d.tracker.String()),
		slog.String("max", maxRate.String()),
		slog.String("min", minRate.String()),
	)

	d.console.Printf("Maximum was %d: %s\n", maxRate.Year, FormatPercent(maxRate.Rate))
	d.console.Printf("Minimum was %d: %s\n", minRate.Year, FormatPercent(minRate.Rate))

	value, err := d.tracker.FutureValue(d.conf.Amount, d.conf.StartYear, d.conf.EndYear,
		tracker.WithMissingYearPolicy(d.conf.missingYearPolicy()))
	if err != nil && !tracker.IsWarning(err) {
		return nil, errors.Wrapf(err, "failed to project the value of savings in %s", country)
	}
	d.console.Warn(err)

	d.console.Printf("Saving %s for %d years in %d with no interest rate would mean having %s in %d\n",
		FormatMoney(d.conf.Amount),
		d.conf.EndYear-d.conf.StartYear,
		d.conf.StartYear,
		FormatMoney(tracker.Round2(value)),
		d.conf.EndYear,
	)
	d.console.Blank()

	summary := &CountrySummary{
		Country:     country,
		Rates:       d.tracker.Rates(),
		Max:         maxRate,
		Min:         minRate,
		Amount:      d.conf.Amount,
		StartYear:   d.conf.StartYear,
		EndYear:     d.conf.EndYear,
		FutureValue: tracker.Round2(value),
		futureValue: value,
	}
	if highest, ok := d.tracker.Highest(); ok {
		summary.RunningHighest = &highest
	}
	if lowest, ok := d.tracker.Lowest(); ok {
		summary.RunningLowest = &lowest
	}
	for _, w := range multierr.Errors(err) {
		summary.Warnings = append(summary.Warnings, w.Error())
	}
	return summary, nil
}
