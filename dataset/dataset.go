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

// Package dataset holds the annual inflation rates of the Czech and the
// Slovak Republic from 1993 to 2022.
package dataset

const (
	StartingYear  = 1993
	NumberOfYears = 30
)

// Series is the list of annual rates of a country, the first one measured
// in StartYear and every following one in the next year.
type Series struct {
	Country   string
	StartYear int
	Rates     []float64
}

// EndYear is the first year after the series.
func (s Series) EndYear() int {
	return s.StartYear + len(s.Rates)
}

var czechRepInfRates = [NumberOfYears]float64{
	0.28, 0.1, 0.091, 0.088, 0.085, 0.107, 0.021, 0.039, 0.047, 0.018, 0.001, 0.028, 0.019, 0.025,
	0.028, 0.063, 0.01, 0.015, 0.019, 0.033, 0.014, 0.004, 0.003, 0.007, 0.025, 0.021, 0.028,
	0.032, 0.038, 0.151,
}

var slovakRepInfRates = [NumberOfYears]float64{
	0.232, 0.134, 0.099, 0.058, 0.061, 0.067, 0.106, 0.12, 0.073, 0.033, 0.085, 0.075, 0.027,
	0.045, 0.028, 0.046, 0.016, 0.01, 0.039, 0.036, 0.014, -0.001, -0.003, -0.005, 0.013, 0.025,
	0.027, 0.019, 0.032, 0.128,
}

func Czech() Series {
	return newSeries("Czech Republic", czechRepInfRates)
}

func Slovak() Series {
	return newSeries("Slovak Republic", slovakRepInfRates)
}

func newSeries(country string, rates [NumberOfYears]float64) Series {
	// arrays are copied by value, callers cannot alter the tables
	return Series{
		Country:   country,
		StartYear: StartingYear,
		Rates:     rates[:],
	}
}
