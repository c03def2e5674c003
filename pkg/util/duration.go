/*******************************************************************************
*
* Copyright 2019 SAP SE
*
* Licensed under the Apache License, Version 2.0 (the "License");
* you may not use this file except in compliance with the License.
* You should have received a copy of the License along with this
* program. If not, you may obtain a copy of the License at
*
*     http://www.apache.org/licenses/LICENSE-2.0
*
* Unless required by applicable law or agreed to in writing, software
* distributed under the License is distributed on an "AS IS" BASIS,
* WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
* See the License for the specific language governing permissions and
* limitations under the License.
*
*******************************************************************************/

package util

import (
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidDurationFormat is returned for every duration string that does
// not match <number><unit> with unit one of m, h, d, w.
var ErrInvalidDurationFormat = errors.New("invalid duration format. use <number><unit> where unit is m,h,d,w")

var durationRegex = regexp.MustCompile(`^(\d+)([mhdw])$`)

// ParseDuration converts a compact duration like "30m", "2h", "1d", "1w"
// into a time.Duration. The unit is case-sensitive. Fractional values and
// composites like "1h30m" are rejected.
func ParseDuration(s string) (time.Duration, error) {
	match := durationRegex.FindStringSubmatch(s)
	if match == nil {
		return 0, ErrInvalidDurationFormat
	}

	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidDurationFormat
	}

	var unit time.Duration
	switch match[2] {
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	}

	return time.Duration(value) * unit, nil
}
