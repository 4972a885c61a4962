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
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/streamnative/inflation/tracker"
)

// CountrySummary holds what the report prints for a single country.
type CountrySummary struct {
	Country string               `json:"country" yaml:"country"`
	Rates   []tracker.YearlyRate `json:"rates" yaml:"rates"`
	Max     tracker.YearlyRate   `json:"max" yaml:"max"`
	Min     tracker.YearlyRate   `json:"min" yaml:"min"`

	// Running extremes kept while inserting, see tracker.InflationTracker.Highest
	RunningHighest *tracker.YearlyRate `json:"runningHighest,omitempty" yaml:"runningHighest,omitempty"`
	RunningLowest  *tracker.YearlyRate `json:"runningLowest,omitempty" yaml:"runningLowest,omitempty"`

	Amount      float64  `json:"amount" yaml:"amount"`
	StartYear   int      `json:"startYear" yaml:"startYear"`
	EndYear     int      `json:"endYear" yaml:"endYear"`
	FutureValue float64  `json:"futureValue" yaml:"futureValue"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	futureValue float64
}

type Summary struct {
	Countries []CountrySummary `json:"countries" yaml:"countries"`
	// Country whose savings lost more value
	HigherInflation string `json:"higherInflation" yaml:"higherInflation"`
	LowerInflation  string `json:"lowerInflation" yaml:"lowerInflation"`
}

func writeJSON(out io.Writer, summary *Summary) error {
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode summary")
	}
	if _, err = out.Write(append(b, "\n"...)); err != nil {
		return errors.Wrap(err, "failed to write summary")
	}
	return nil
}

func writeYAML(out io.Writer, summary *Summary) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(summary); err != nil {
		return errors.Wrap(err, "failed to encode summary")
	}
	return errors.Wrap(encoder.Close(), "failed to write summary")
}
