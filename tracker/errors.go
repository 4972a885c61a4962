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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	ErrorNoData       = errors.New("tracker: no data")
	ErrorInvalidRange = errors.New("tracker: start year is not before end year")
	ErrorMissingYear  = errors.New("tracker: missing data for year")
	ErrorRangeTooWide = errors.New("tracker: projection range is too wide")
)

// Warning marks an anomaly that did not stop the operation from producing
// a result.
type Warning struct {
	err error
}

func newWarning(err error) error {
	return &Warning{err: err}
}

func (w *Warning) Error() string {
	return "warning: " + w.err.Error()
}

func (w *Warning) Unwrap() error {
	return w.err
}

// IsWarning reports whether err is made only of warnings, in which case the
// value returned along with it is usable.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range multierr.Errors(err) {
		var w *Warning
		if !errors.As(e, &w) {
			return false
		}
	}
	return true
}
