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

package alertmanager

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchers(t *testing.T) {
	matchers, err := ParseMatchers("alertname=HighCPU,severity=critical")
	require.NoError(t, err)
	require.Len(t, matchers, 2)

	assert.Equal(t, "alertname", *matchers[0].Name)
	assert.Equal(t, "HighCPU", *matchers[0].Value)
	assert.False(t, *matchers[0].IsRegex)

	assert.Equal(t, "severity", *matchers[1].Name)
	assert.Equal(t, "critical", *matchers[1].Value)
	assert.False(t, *matchers[1].IsRegex)
}

func TestParseMatchersSplitsOnFirstEquals(t *testing.T) {
	matchers, err := ParseMatchers("query=rate=high")
	require.NoError(t, err)
	require.Len(t, matchers, 1)

	assert.Equal(t, "query", *matchers[0].Name)
	assert.Equal(t, "rate=high", *matchers[0].Value)
}

func TestParseMatchersInvalid(t *testing.T) {
	tests := []string{
		"",
		"alertname",
		"=HighCPU",
		"alertname=HighCPU,severity",
		"alertname=HighCPU,",
	}

	for _, stimuli := range tests {
		_, err := ParseMatchers(stimuli)
		require.Error(t, err, "parsing '%s' should fail", stimuli)
		assert.Equal(t, ErrInvalidMatcher, errors.Cause(err))
	}
}

func TestMatchersToString(t *testing.T) {
	matchers, err := ParseMatchers("alertname=HighCPU,severity=critical")
	require.NoError(t, err)
	assert.Equal(t, "alertname=HighCPU,severity=critical", matchersToString(matchers))
}
