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
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/alertmanager/api/v2/models"
)

// ErrInvalidMatcher is returned when a matcher segment is not of the form label=value.
var ErrInvalidMatcher = errors.New("invalid matcher. use label1=value1,label2=value2")

// ParseMatchers parses a string of the form "label1=value1,label2=value2"
// into a list of equality matchers. A value may itself contain '='; each
// segment is split on the first one.
func ParseMatchers(s string) (models.Matchers, error) {
	matchers := make(models.Matchers, 0)
	for _, segment := range strings.Split(s, ",") {
		parts := strings.SplitN(segment, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Wrapf(ErrInvalidMatcher, "segment %q", segment)
		}

		name, value := parts[0], parts[1]
		isRegex := false
		matchers = append(matchers, &models.Matcher{
			Name:    &name,
			Value:   &value,
			IsRegex: &isRegex,
		})
	}
	return matchers, nil
}

func matchersToString(matchers models.Matchers) string {
	segments := make([]string, 0, len(matchers))
	for _, m := range matchers {
		segments = append(segments, *m.Name+"="+*m.Value)
	}
	return strings.Join(segments, ",")
}
