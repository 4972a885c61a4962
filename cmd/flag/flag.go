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

package flag

import (
	"github.com/spf13/cobra"

	"github.com/streamnative/inflation/report"
)

func Amount(cmd *cobra.Command, conf *float64) {
	cmd.Flags().Float64VarP(conf, "amount", "a", report.DefaultAmount, "Amount of cash kept over the projection range")
}

func StartYear(cmd *cobra.Command, conf *int) {
	cmd.Flags().IntVar(conf, "start-year", *conf, "First year of the projection")
}

func EndYear(cmd *cobra.Command, conf *int) {
	cmd.Flags().IntVar(conf, "end-year", *conf, "Year the projection ends at, excluded")
}

func Format(cmd *cobra.Command, conf *report.Format) {
	cmd.Flags().VarP(conf, "format", "o", "Output format: text, json or yaml")
}

func MissingYear(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVar(conf, "missing-year", *conf, "What to do with years without data in the projection: skip or fail")
}
