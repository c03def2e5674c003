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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/nlopes/slack"
	"github.com/pkg/errors"

	"silencegate/pkg/alertmanager"
	"silencegate/pkg/api"
	"silencegate/pkg/metrics"
	"silencegate/pkg/util"
)

const (
	responseTypeEphemeral = "ephemeral"
	responseTypeInChannel = "in_channel"

	// usageText is shown when the command is invoked with too few arguments.
	usageText = "Usage: /silence <matcher> <duration> <comment>\n" +
		"Example: /silence alertname=HighCPU,severity=critical 2h CPU alert silenced"
)

var errNoTokensConfigured = errors.New("no mattermost tokens configured")

// HandleSilenceCommand responds to the Mattermost slash command.
//
// Every failure past authentication is answered with a 200 and an ephemeral
// message, since Mattermost only renders the body of a 200 response.
func (b *Bridge) HandleSilenceCommand(w http.ResponseWriter, r *http.Request) {
	b.logger.LogDebug("received slash command")

	slashCommand, err := slack.SlashCommandParse(r)
	if err != nil {
		b.logger.LogError("failed to parse slash command", err)
		api.RespondWithError(w, http.StatusBadRequest, "failed to parse slash command")
		return
	}
	if slashCommand.Token == "" || slashCommand.UserName == "" {
		b.logger.LogInfo("rejecting slash command with missing fields")
		api.RespondWithError(w, http.StatusBadRequest, "missing required fields: token, user_name")
		return
	}

	if len(b.Config.MattermostTokens) == 0 {
		b.logger.LogError("cannot authenticate slash command", errNoTokensConfigured)
		api.RespondWithError(w, http.StatusInternalServerError, "no Mattermost tokens configured")
		return
	}
	if !b.Config.HasToken(slashCommand.Token) {
		b.logger.LogWarn("invalid token for slash command", "userName", slashCommand.UserName)
		api.RespondWithError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	if !b.Config.IsUserAllowed(slashCommand.UserName) {
		b.logger.LogInfo("user is not authorized to create silences", "userName", slashCommand.UserName)
		b.respond(w, responseTypeEphemeral, "You are not authorized to create silences.")
		return
	}

	args := strings.Fields(slashCommand.Text)
	if len(args) < 3 {
		b.respond(w, responseTypeEphemeral, usageText)
		return
	}

	matcher := args[0]
	durationString := args[1]
	comment := strings.Join(args[2:], " ")

	duration, err := util.ParseDuration(durationString)
	if err != nil {
		b.logger.LogInfo("invalid duration in slash command", "duration", durationString, "userName", slashCommand.UserName)
		b.respond(w, responseTypeEphemeral, fmt.Sprintf("Error: %s", err))
		return
	}

	matchers, err := alertmanager.ParseMatchers(matcher)
	if err != nil {
		b.logger.LogInfo("invalid matcher in slash command", "matcher", matcher, "userName", slashCommand.UserName)
		b.respond(w, responseTypeEphemeral, fmt.Sprintf("Error: %s", err))
		return
	}

	silenceID, err := b.alertmanagerClient.CreateSilence(r.Context(), matchers, duration, comment, slashCommand.UserName)
	if err != nil {
		b.logger.LogError("error creating silence", err, "matcher", matcher, "userName", slashCommand.UserName)
		metrics.FailedOperationsTotal.WithLabelValues("silence").Inc()
		b.respond(w, responseTypeEphemeral, fmt.Sprintf("An error occurred: %s", err))
		return
	}

	b.logger.LogInfo("created silence", "silenceID", silenceID, "matcher", matcher, "userName", slashCommand.UserName)
	metrics.SuccessfulOperationsTotal.WithLabelValues("silence").Inc()

	b.respond(w, responseTypeInChannel, fmt.Sprintf(
		"🔕 Alert silenced successfully!\n"+
			"Silence ID: %s\n"+
			"Matcher: %s\n"+
			"Duration: %s (%s)\n"+
			"Comment: %s\n"+
			"Created by: %s\n"+
			"See: %s",
		silenceID, matcher, durationString, util.HumanizedDurationString(duration), comment, slashCommand.UserName,
		b.alertmanagerClient.LinkToSilence(silenceID),
	))
}

func (b *Bridge) respond(w http.ResponseWriter, responseType, text string) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(slack.Msg{ResponseType: responseType, Text: text}); err != nil {
		b.logger.LogError("failed to encode response", err)
	}
}
