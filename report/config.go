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

package report

import (
	"math"

	"github.com/pkg/errors"

	"github.com/streamnative/inflation/dataset"
	"github.com/streamnative/inflation/tracker"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"

	DefaultAmount = 5_000_000
)

var (
	ErrorInvalidAmount = errors.New("report: amount must be a finite non negative number")
	ErrorInvalidFormat = errors.New("report: unknown output format")
)

type Config struct {
	// Amount of cash kept over the projection range
	Amount      float64 `mapstructure:"amount"`
	StartYear   int     `mapstructure:"start-year"`
	EndYear     int     `mapstructure:"end-year"`
	Format      Format  `mapstructure:"format"`
	MissingYear string  `mapstructure:"missing-year"`
}

func NewConfig() Config {
	return Config{
		Amount:      DefaultAmount,
		StartYear:   dataset.StartingYear,
		EndYear:     dataset.StartingYear + dataset.NumberOfYears,
		Format:      FormatText,
		MissingYear: tracker.MissingYearSkipPolicy.String(),
	}
}

// Validate checks the settings that cannot be reported as warnings. An
// empty projection range is allowed and only warned about, a range longer
// than tracker.MaxProjectionYears is not.
func (c Config) Validate() error {
	if math.IsNaN(c.Amount) || math.IsInf(c.Amount, 0) || c.Amount < 0 {
		return errors.Wrapf(ErrorInvalidAmount, "amount %v", c.Amount)
	}

	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrorInvalidFormat, "format '%s'", c.Format)
	}

	if _, err := tracker.ParseMissingYearPolicy(c.MissingYear); err != nil {
		return err
	}
	return tracker.CheckProjectionRange(c.StartYear, c.EndYear)
}

func (c Config) missingYearPolicy() tracker.MissingYearPolicy {
	policy, _ := tracker.ParseMissingYearPolicy(c.MissingYear)
	return policy
}

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Set(s string) error {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		*f = Format(s)
		return nil
	}
	return errors.Wrapf(ErrorInvalidFormat, "format '%s'", s)
}

func (*Format) Type() string {
	return "format"
}
