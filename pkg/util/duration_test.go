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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	// mapping of input string to expected duration
	tests := map[string]time.Duration{
		"30m":  30 * time.Minute,
		"90m":  90 * time.Minute,
		"2h":   2 * time.Hour,
		"1d":   24 * time.Hour,
		"3d":   3 * 24 * time.Hour,
		"1w":   7 * 24 * time.Hour,
		"007h": 7 * time.Hour,
	}

	for stimuli, expected := range tests {
		actual, err := ParseDuration(stimuli)
		assert.NoError(t, err, "there should be no error parsing '%s'", stimuli)
		assert.Equal(t, expected, actual, "parsing '%s'", stimuli)
	}
}

func TestParseDurationInvalidFormat(t *testing.T) {
	tests := []string{
		"",
		"2",
		"h",
		"2H",
		"2.5h",
		"1h30m",
		" 2h",
		"2h ",
		"-2h",
		"2x",
		"two hours",
		"99999999999999999999h",
	}

	for _, stimuli := range tests {
		_, err := ParseDuration(stimuli)
		assert.Equal(t, ErrInvalidDurationFormat, err, "parsing '%s' should fail", stimuli)
	}
}
