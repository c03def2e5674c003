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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{"MATTERMOST_TOKENS", "ALERTMANAGER_URL", "HOST", "PORT", "ALLOWED_USERS"}

func clearConfigEnv(t *testing.T) {
	for _, key := range configEnvVars {
		t.Setenv(key, "") // registers the restore
		os.Unsetenv(key)
	}
}

func TestNewConfig(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("MATTERMOST_TOKENS", " secret-1, secret-2 ,")
	t.Setenv("ALERTMANAGER_URL", "http://localhost:9093")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8800")
	t.Setenv("ALLOWED_USERS", "alice, bob")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"secret-1", "secret-2"}, cfg.MattermostTokens)
	assert.Equal(t, "http://localhost:9093", cfg.AlertmanagerURL)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8800, cfg.Port)
	assert.Equal(t, []string{"alice", "bob"}, cfg.AllowedUsers)
}

func TestNewConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.MattermostTokens)
	assert.Equal(t, "http://alertmanager:9093", cfg.AlertmanagerURL)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 7788, cfg.Port)
	assert.Empty(t, cfg.AllowedUsers)
}

func TestHasToken(t *testing.T) {
	cfg := Config{MattermostTokens: []string{"secret-1", "secret-2"}}

	assert.True(t, cfg.HasToken("secret-2"))
	assert.False(t, cfg.HasToken("secret-3"))
	assert.False(t, cfg.HasToken(""))
}

func TestIsUserAllowed(t *testing.T) {
	cfg := Config{AllowedUsers: []string{"alice", "bob"}}
	assert.True(t, cfg.IsUserAllowed("alice"))
	assert.False(t, cfg.IsUserAllowed("carol"))

	// an empty allow-list permits everyone
	assert.True(t, Config{}.IsUserAllowed("carol"))
}
