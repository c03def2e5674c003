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

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"silencegate/pkg/config"
	"silencegate/pkg/log"
	"silencegate/pkg/metrics"
)

// API is the silencegate API struct
type API struct {
	*mux.Router
	logger log.Logger
	server *http.Server

	Config config.Config
}

// NewAPI creates a new API based on the configuration
func NewAPI(cfg config.Config, logger log.Logger) *API {
	logger = log.NewLoggerWith(logger, "component", "api")

	router := mux.NewRouter().StrictSlash(false)

	a := &API{
		Router: router,
		logger: logger,
		Config: cfg,
	}

	router.Methods(http.MethodGet).Path("/").HandlerFunc(a.handleInfo)
	router.Methods(http.MethodGet).Path("/-/ready").HandlerFunc(a.handleReady)
	router.Methods(http.MethodGet).Path("/metrics").Handler(metrics.Handler())

	return a
}

// AddRoute adds a handler to the API and wraps it with request metrics.
func (a *API) AddRoute(method, path, name string, handleFunc http.HandlerFunc) {
	a.Methods(method).Path(path).HandlerFunc(instrument(name, handleFunc))
}

// Serve starts the API and blocks until the server stops.
func (a *API) Serve() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Host, a.Config.Port)
	a.server = &http.Server{Addr: addr, Handler: a}

	a.logger.LogInfo("starting api", "addr", addr)
	if err := a.server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the API gracefully.
func (a *API) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

func (a *API) handleInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"name": "silencegate"}); err != nil {
		a.logger.LogError("error encoding info", err)
	}
}

func (a *API) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ready"}); err != nil {
		a.logger.LogError("error encoding status", err)
	}
}
