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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		SuccessfulOperationsTotal,
		FailedOperationsTotal,
	)
}

// MetricNamespace ...
const MetricNamespace = "silencegate"

var (
	// HTTPRequestsTotal ...
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "http_requests_total",
		Help:      "Count of all HTTP requests",
		Namespace: MetricNamespace,
	}, []string{"code", "method", "handler"})

	// SuccessfulOperationsTotal ...
	SuccessfulOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "successful_operations_total",
		Help:      "Count of all successful operations",
		Namespace: MetricNamespace,
	}, []string{"action"})

	// FailedOperationsTotal ...
	FailedOperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "failed_operations_total",
		Help:      "Count of all failed operations",
		Namespace: MetricNamespace,
	}, []string{"action"})
)

// Handler returns the prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
