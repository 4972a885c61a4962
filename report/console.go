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
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/streamnative/inflation/tracker"
)

const (
	warningNoData       = "Found no data to print"
	warningInvalidRange = "Incorrect start year and end year"
	warningMissingYear  = "Incorrect data"
)

// Console is a line oriented sink for the report. The first write error is
// kept and every later write is dropped.
type Console struct {
	out io.Writer
	err error
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.err = errors.Wrap(err, "failed to write report")
	}
}

func (c *Console) Println(args ...any) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintln(c.out, args...); err != nil {
		c.err = errors.Wrap(err, "failed to write report")
	}
}

func (c *Console) Blank() {
	c.Println()
}

// Warn prints one warning line for each error combined in err.
func (c *Console) Warn(err error) {
	for _, e := range multierr.Errors(err) {
		c.Printf("Warning: %s!\n", warningText(e))
	}
}

// PrintData prints every stored rate of t, in insertion order, or a warning
// when there is nothing to print.
func (c *Console) PrintData(t *tracker.InflationTracker) {
	if t.Empty() {
		slog.Debug("Tracker is empty, nothing to print")
		c.Warn(tracker.ErrorNoData)
		return
	}

	t.Each(func(r tracker.YearlyRate) {
		c.Printf("%d | %s\n", r.Year, FormatPercent(r.Rate))
	})
}

func (c *Console) Err() error {
	return c.err
}

func warningText(err error) string {
	switch {
	case errors.Is(err, tracker.ErrorNoData):
		return warningNoData
	case errors.Is(err, tracker.ErrorInvalidRange):
		return warningInvalidRange
	case errors.Is(err, tracker.ErrorMissingYear):
		return warningMissingYear
	}
	return err.Error()
}

// FormatPercent renders a rate as a percentage with two decimals, 0.28 is
// "28.00%".
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(rate*100.0, 'f', 2, 64) + "%"
}

// FormatMoney renders an amount with thousands separators and the shortest
// decimal representation, 1078343.79 is "1,078,343.79".
func FormatMoney(amount float64) string {
	return humanize.Commaf(amount)
}
