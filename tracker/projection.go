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

package tracker

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// MaxProjectionYears bounds the length of a projection.
const MaxProjectionYears = 200

type MissingYearPolicy int

const (
	// MissingYearSkipPolicy treats a year without data as a 0 % rate.
	MissingYearSkipPolicy MissingYearPolicy = iota
	// MissingYearFailPolicy aborts the projection on the first year without data.
	MissingYearFailPolicy
)

func (p MissingYearPolicy) String() string {
	switch p {
	case MissingYearSkipPolicy:
		return "skip"
	case MissingYearFailPolicy:
		return "fail"
	}
	return "unknown"
}

func ParseMissingYearPolicy(s string) (MissingYearPolicy, error) {
	switch s {
	case "skip":
		return MissingYearSkipPolicy, nil
	case "fail":
		return MissingYearFailPolicy, nil
	}
	return MissingYearSkipPolicy, errors.Errorf("unknown missing year policy: '%s'", s)
}

type projectionOptions struct {
	missingYear MissingYearPolicy
}

// ProjectionOption represents an option for [InflationTracker.FutureValue].
type ProjectionOption interface {
	applyProjection(opts *projectionOptions)
}

func newProjectionOptions(opts []ProjectionOption) *projectionOptions {
	projectionOpts := &projectionOptions{
		missingYear: MissingYearSkipPolicy,
	}
	for _, opt := range opts {
		opt.applyProjection(projectionOpts)
	}
	return projectionOpts
}

type missingYearOption struct {
	policy MissingYearPolicy
}

func (o *missingYearOption) applyProjection(opts *projectionOptions) {
	opts.missingYear = o.policy
}

// WithMissingYearPolicy sets how the projection deals with years that have no data.
func WithMissingYearPolicy(policy MissingYearPolicy) ProjectionOption {
	return &missingYearOption{policy}
}

// MissingYearSkip makes the projection warn about a year without data and
// carry on as if the rate for that year was 0 %.
func MissingYearSkip() ProjectionOption {
	return &missingYearOption{MissingYearSkipPolicy}
}

// MissingYearFail makes the projection stop at the first year without data.
func MissingYearFail() ProjectionOption {
	return &missingYearOption{MissingYearFailPolicy}
}

// FutureValue returns what money is worth after the inflation of every year
// in [startYear, endYear), with no interest: each year multiplies the amount
// by (1 - rate).
//
// Anomalies are returned as warnings together with the computed value, see
// [IsWarning]:
//   - startYear >= endYear yields ErrorInvalidRange and money is returned as is.
//   - a year without data yields ErrorMissingYear, and the year is skipped.
//
// With MissingYearFail a year without data is an error and the returned value
// is 0. A range longer than MaxProjectionYears is rejected with
// ErrorRangeTooWide.
func (t *InflationTracker) FutureValue(money float64, startYear, endYear int, opts ...ProjectionOption) (float64, error) {
	options := newProjectionOptions(opts)

	if err := CheckProjectionRange(startYear, endYear); err != nil {
		return 0, err
	}

	var warnings error
	if startYear >= endYear {
		slog.Warn(
			"Incorrect projection range",
			slog.String("country", t.countryName),
			slog.Int("start-year", startYear),
			slog.Int("end-year", endYear),
		)
		warnings = multierr.Append(warnings, newWarning(
			errors.Wrapf(ErrorInvalidRange, "start %d, end %d", startYear, endYear)))
	}

	currentMoney := money
	for year := startYear; year < endYear; year++ {
		rate, found := t.yearlyVal.Get(year)
		if !found {
			if options.missingYear == MissingYearFailPolicy {
				return 0, errors.Wrapf(ErrorMissingYear, "year %d", year)
			}

			slog.Warn(
				"Missing inflation data, assuming 0%",
				slog.String("country", t.countryName),
				slog.Int("year", year),
			)
			warnings = multierr.Append(warnings, newWarning(
				errors.Wrapf(ErrorMissingYear, "year %d", year)))
			continue
		}

		currentMoney *= 1.00 - rate
	}

	slog.Debug(
		"Computed future value",
		slog.String("country", t.countryName),
		slog.Float64("money", money),
		slog.Int("start-year", startYear),
		slog.Int("end-year", endYear),
		slog.Float64("future-value", currentMoney),
	)
	return currentMoney, warnings
}

// CheckProjectionRange fails when [startYear, endYear) spans more than
// MaxProjectionYears. Empty and reversed ranges pass, they are only warned
// about by FutureValue.
func CheckProjectionRange(startYear, endYear int) error {
	if int64(endYear)-int64(startYear) > MaxProjectionYears {
		return errors.Wrapf(ErrorRangeTooWide, "start %d, end %d", startYear, endYear)
	}
	return nil
}
