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

package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the process configuration. It is read from the environment
// once at startup and not mutated afterwards.
type Config struct {
	// MattermostTokens is the set of shared secrets accepted on the
	// slash command endpoint. An empty set rejects every request.
	MattermostTokens []string `envconfig:"MATTERMOST_TOKENS"`

	// AlertmanagerURL is the base URL of the Alertmanager API.
	AlertmanagerURL string `envconfig:"ALERTMANAGER_URL" default:"http://alertmanager:9093"`

	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"7788"`

	// AllowedUsers restricts silence creation to the listed usernames.
	// Empty means no restriction.
	AllowedUsers []string `envconfig:"ALLOWED_USERS"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, errors.Wrap(err, "process environment")
	}

	cfg.MattermostTokens = trimmed(cfg.MattermostTokens)
	cfg.AllowedUsers = trimmed(cfg.AllowedUsers)
	return cfg, nil
}

// HasToken checks whether the given token is one of the configured shared secrets.
func (c Config) HasToken(token string) bool {
	for _, t := range c.MattermostTokens {
		if t == token {
			return true
		}
	}
	return false
}

// IsUserAllowed checks the username against the allow-list.
// An empty allow-list permits everyone.
func (c Config) IsUserAllowed(userName string) bool {
	if len(c.AllowedUsers) == 0 {
		return true
	}
	for _, u := range c.AllowedUsers {
		if u == userName {
			return true
		}
	}
	return false
}

func trimmed(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
