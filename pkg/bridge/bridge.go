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

package bridge

import (
	"context"
	"net/http"

	"silencegate/pkg/alertmanager"
	"silencegate/pkg/api"
	"silencegate/pkg/config"
	"silencegate/pkg/log"
)

// Bridge wires the slash command endpoint to the Alertmanager.
type Bridge struct {
	v1API              *api.API
	logger             log.Logger
	alertmanagerClient *alertmanager.Client

	Config config.Config
}

// New creates a new bridge serving the slash command endpoint.
func New(cfg config.Config, logger log.Logger) *Bridge {
	b := &Bridge{
		Config:             cfg,
		logger:             log.NewLoggerWith(logger, "component", "bridge"),
		alertmanagerClient: alertmanager.New(cfg, logger),
	}

	v1API := api.NewAPI(cfg, logger)

	// the endpoint that accepts the Mattermost slash command
	v1API.AddRoute(http.MethodPost, "/silence", "silenceCommand", b.HandleSilenceCommand)

	b.v1API = v1API
	return b
}

// Run starts the bridge API and blocks until the server stops.
func (b *Bridge) Run() error {
	return b.v1API.Serve()
}

// Shutdown stops the bridge API gracefully.
func (b *Bridge) Shutdown(ctx context.Context) error {
	return b.v1API.Shutdown(ctx)
}
