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
	"fmt"

	"github.com/streamnative/inflation/common/collection"
)

// YearlyRate is a single observation: the inflation rate measured in a year.
// Rates are fractions, 0.28 means 28 %.
type YearlyRate struct {
	Year int     `json:"year" yaml:"year"`
	Rate float64 `json:"rate" yaml:"rate"`
}

func (r YearlyRate) String() string {
	return fmt.Sprintf("%d: %v", r.Year, r.Rate)
}

// InflationTracker keeps the yearly inflation rates of a single country in
// insertion order.
//
// Besides the stored rates, the tracker remembers the highest and lowest
// rates observed while inserting. Those running values are only updated on
// insertion, so after overwriting an existing year they may no longer match
// the stored data; [InflationTracker.Max] and [InflationTracker.Min] always
// scan the current data.
//
// An InflationTracker is not safe for concurrent use.
type InflationTracker struct {
	countryName string
	yearlyVal   collection.Map[int, float64]

	highest *YearlyRate
	lowest  *YearlyRate
}

func New(countryName string) *InflationTracker {
	t := &InflationTracker{
		yearlyVal: collection.NewLinkedMap[int, float64](),
	}
	t.ChangeCountryName(countryName)
	return t
}

// Insert stores the rate for the given year. A year that was already stored
// keeps its position and only gets the new rate.
func (t *InflationTracker) Insert(year int, rate float64) {
	t.yearlyVal.Put(year, rate)

	switch {
	case t.yearlyVal.Size() == 1:
		t.highest = &YearlyRate{Year: year, Rate: rate}
		t.lowest = &YearlyRate{Year: year, Rate: rate}
	case t.highest == nil || rate > t.highest.Rate:
		t.highest = &YearlyRate{Year: year, Rate: rate}
	case t.lowest == nil || rate < t.lowest.Rate:
		// Only reached when the rate is not a new high
		t.lowest = &YearlyRate{Year: year, Rate: rate}
	}
}

// InsertSeries inserts consecutive rates starting at startYear.
func (t *InflationTracker) InsertSeries(startYear int, rates []float64) {
	for i, rate := range rates {
		t.Insert(startYear+i, rate)
	}
}

// Clear drops all the rates, the country name and the running extremes.
func (t *InflationTracker) Clear() {
	t.countryName = ""
	t.yearlyVal.Clear()
	t.highest = nil
	t.lowest = nil
}

func (t *InflationTracker) ChangeCountryName(name string) {
	t.countryName = name
}

func (t *InflationTracker) CountryName() string {
	return t.countryName
}

func (t *InflationTracker) Len() int {
	return t.yearlyVal.Size()
}

func (t *InflationTracker) Empty() bool {
	return t.yearlyVal.Empty()
}

func (t *InflationTracker) Get(year int) (rate float64, found bool) {
	return t.yearlyVal.Get(year)
}

// Years returns the stored years in insertion order.
func (t *InflationTracker) Years() []int {
	return t.yearlyVal.Keys()
}

// Each calls f for every stored rate, in insertion order.
func (t *InflationTracker) Each(f func(r YearlyRate)) {
	t.yearlyVal.Each(func(year int, rate float64) {
		f(YearlyRate{Year: year, Rate: rate})
	})
}

// Rates returns a copy of the stored rates in insertion order.
func (t *InflationTracker) Rates() []YearlyRate {
	res := make([]YearlyRate, 0, t.Len())
	t.Each(func(r YearlyRate) {
		res = append(res, r)
	})
	return res
}

// Max returns the year with the highest rate. On ties the first one in
// insertion order wins.
func (t *InflationTracker) Max() (YearlyRate, error) {
	return t.scan(func(candidate, current float64) bool {
		return candidate > current
	})
}

// Min returns the year with the lowest rate. On ties the first one in
// insertion order wins.
func (t *InflationTracker) Min() (YearlyRate, error) {
	return t.scan(func(candidate, current float64) bool {
		return candidate < current
	})
}

func (t *InflationTracker) scan(better func(candidate, current float64) bool) (YearlyRate, error) {
	if t.yearlyVal.Empty() {
		return YearlyRate{}, ErrorNoData
	}

	var res YearlyRate
	first := true
	t.Each(func(r YearlyRate) {
		if first || better(r.Rate, res.Rate) {
			res = r
			first = false
		}
	})
	return res, nil
}

// Highest returns the running maximum tracked by Insert.
func (t *InflationTracker) Highest() (YearlyRate, bool) {
	if t.highest == nil {
		return YearlyRate{}, false
	}
	return *t.highest, true
}

// Lowest returns the running minimum tracked by Insert. A rate that was
// recorded as a new high is never considered for the running minimum.
func (t *InflationTracker) Lowest() (YearlyRate, bool) {
	if t.lowest == nil {
		return YearlyRate{}, false
	}
	return *t.lowest, true
}

func (t *InflationTracker) String() string {
	return fmt.Sprintf("%s %s", t.countryName, t.yearlyVal)
}
