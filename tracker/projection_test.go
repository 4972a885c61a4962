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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestFutureValue(t *testing.T) {
	tr := newTestTracker(t)

	value, err := tr.FutureValue(100.0, 1993, 1995)
	assert.NoError(t, err)
	assert.InDelta(t, 64.8, value, 1e-9)

	value, err = tr.FutureValue(100.0, 1994, 1995)
	assert.NoError(t, err)
	assert.InDelta(t, 90.0, value, 1e-9)
}

func TestFutureValue_NegativeRate(t *testing.T) {
	tr := New("x")
	tr.Insert(2015, -0.003)

	value, err := tr.FutureValue(1000.0, 2015, 2016)
	assert.NoError(t, err)
	assert.InDelta(t, 1003.0, value, 1e-9)
}

func TestFutureValue_EmptyRange(t *testing.T) {
	tr := newTestTracker(t)

	for _, test := range []struct {
		name      string
		money     float64
		startYear int
		endYear   int
	}{
		{"same year", 100, 1993, 1993},
		{"same year, no data", 42.5, 3000, 3000},
		{"reversed", 5000000, 1995, 1993},
	} {
		t.Run(test.name, func(t *testing.T) {
			value, err := tr.FutureValue(test.money, test.startYear, test.endYear)
			assert.Equal(t, test.money, value)
			assert.ErrorIs(t, err, ErrorInvalidRange)
			assert.True(t, IsWarning(err))
		})
	}
}

func TestFutureValue_MissingYear(t *testing.T) {
	tr := newTestTracker(t)

	value, err := tr.FutureValue(100.0, 1992, 1996)
	assert.InDelta(t, 64.8, value, 1e-9)
	assert.ErrorIs(t, err, ErrorMissingYear)
	assert.True(t, IsWarning(err))
	assert.Len(t, multierr.Errors(err), 2)

	value, err = tr.FutureValue(100.0, 1992, 1996, MissingYearSkip())
	assert.InDelta(t, 64.8, value, 1e-9)
	assert.True(t, IsWarning(err))

	value, err = tr.FutureValue(100.0, 1992, 1996, MissingYearFail())
	assert.Equal(t, 0.0, value)
	assert.ErrorIs(t, err, ErrorMissingYear)
	assert.False(t, IsWarning(err))

	value, err = tr.FutureValue(100.0, 1993, 1995, WithMissingYearPolicy(MissingYearFailPolicy))
	assert.NoError(t, err)
	assert.InDelta(t, 64.8, value, 1e-9)
}

func TestFutureValue_RangeTooWide(t *testing.T) {
	tr := newTestTracker(t)

	value, err := tr.FutureValue(100.0, 0, 2_000_000_000)
	assert.Equal(t, 0.0, value)
	assert.ErrorIs(t, err, ErrorRangeTooWide)
	assert.False(t, IsWarning(err))

	// the longest allowed range still runs, skipping the years without data
	value, err = tr.FutureValue(100.0, 1993, 1993+MaxProjectionYears)
	assert.InDelta(t, 64.8, value, 1e-9)
	assert.True(t, IsWarning(err))
	assert.Len(t, multierr.Errors(err), MaxProjectionYears-2)
}

func TestCheckProjectionRange(t *testing.T) {
	for _, test := range []struct {
		name      string
		startYear int
		endYear   int
		tooWide   bool
	}{
		{"dataset", 1993, 2023, false},
		{"empty", 2000, 2000, false},
		{"reversed", 2_000_000_000, 0, false},
		{"limit", 1900, 1900 + MaxProjectionYears, false},
		{"over limit", 1900, 1901 + MaxProjectionYears, true},
		{"huge", 0, 2_000_000_000, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := CheckProjectionRange(test.startYear, test.endYear)
			if test.tooWide {
				assert.ErrorIs(t, err, ErrorRangeTooWide)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsWarning(t *testing.T) {
	assert.False(t, IsWarning(nil))
	assert.False(t, IsWarning(ErrorNoData))
	assert.True(t, IsWarning(newWarning(ErrorMissingYear)))
	assert.True(t, IsWarning(multierr.Combine(newWarning(ErrorInvalidRange), newWarning(ErrorMissingYear))))
	assert.False(t, IsWarning(multierr.Combine(newWarning(ErrorInvalidRange), ErrorNoData)))
}

func TestParseMissingYearPolicy(t *testing.T) {
	for _, test := range []struct {
		in          string
		expected    MissingYearPolicy
		expectedErr bool
	}{
		{"skip", MissingYearSkipPolicy, false},
		{"fail", MissingYearFailPolicy, false},
		{"junk", MissingYearSkipPolicy, true},
	} {
		t.Run(test.in, func(t *testing.T) {
			policy, err := ParseMissingYearPolicy(test.in)
			assert.Equal(t, test.expected, policy)
			if test.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, test.in, policy.String())
			}
		})
	}
}
