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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/pkg/errors"
	"github.com/prometheus/alertmanager/api/v2/models"

	"silencegate/pkg/config"
	"silencegate/pkg/log"
)

const (
	silenceEndpoint = "/api/v2/silences"

	// RequestTimeout bounds a single request to the Alertmanager.
	RequestTimeout = 10 * time.Second
)

// Client posts silences to the Alertmanager.
type Client struct {
	Config config.Config

	logger     log.Logger
	httpClient *http.Client
}

// New creates a new Alertmanager client.
func New(cfg config.Config, logger log.Logger) *Client {
	return &Client{
		Config:     cfg,
		logger:     log.NewLoggerWith(logger, "component", "alertmanager"),
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
}

// CreateSilence creates a silence covering the given matchers for the given
// duration and returns the ID assigned by the Alertmanager.
func (a *Client) CreateSilence(ctx context.Context, matchers models.Matchers, duration time.Duration, comment, userName string) (string, error) {
	if len(matchers) == 0 {
		return "", errors.New("matchers must not be empty")
	}
	if duration <= 0 {
		return "", errors.New("duration must be greater than 0")
	}
	if userName == "" {
		return "", errors.New("user name must not be empty")
	}

	now := time.Now().UTC()
	startsAt := strfmt.DateTime(now)
	endsAt := strfmt.DateTime(now.Add(duration))
	createdBy := fmt.Sprintf("mattermost-bot:%s", userName)
	silenceComment := fmt.Sprintf("%s (created-by: %s)", comment, userName)

	silence := models.PostableSilence{
		Silence: models.Silence{
			Matchers:  matchers,
			StartsAt:  &startsAt,
			EndsAt:    &endsAt,
			CreatedBy: &createdBy,
			Comment:   &silenceComment,
		},
	}

	a.logger.LogInfo("creating silence",
		"silenceMatchers", matchersToString(matchers),
		"silenceDuration", duration,
		"silenceAuthor", createdBy,
	)

	body, err := json.Marshal(silence)
	if err != nil {
		return "", errors.Wrap(err, "encode silence")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Config.AlertmanagerURL+silenceEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "post silence")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errors.Errorf("alertmanager responded with %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var result struct {
		SilenceID string `json:"silenceID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "decode silence response")
	}

	a.logger.LogInfo("created silence", "silenceID", result.SilenceID)
	return result.SilenceID, nil
}

// LinkToSilence creates a link to a silence.
func (a *Client) LinkToSilence(silenceID string) string {
	return fmt.Sprintf("%s/#/silences/%s", a.Config.AlertmanagerURL, silenceID)
}
