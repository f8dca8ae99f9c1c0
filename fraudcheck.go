/*
Copyright 2025 Truna Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package fraudcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/truna-id/fraudcheck/config"
	"github.com/truna-id/fraudcheck/contraindicator"
	"github.com/truna-id/fraudcheck/internal/cache"
	"github.com/truna-id/fraudcheck/internal/httpclient"
	"github.com/truna-id/fraudcheck/internal/metrics"
	"github.com/truna-id/fraudcheck/internal/signer"
	"github.com/truna-id/fraudcheck/provider"
)

// Fraudcheck is the main struct for the fraud check service. It wires the
// request builder, signer, retrying client and translator into one
// verification pipeline; callers only ever see VerifyIdentity.
type Fraudcheck struct {
	endpointURL string
	builder     *provider.RequestBuilder
	signer      *signer.Signer
	client      *httpclient.Client
	translator  *contraindicator.Translator
	metrics     *metrics.Metrics
}

// NewFraudcheck initializes the service from the process configuration: it
// connects the mapping store (read-through via Redis), loads the tenant's
// contraindication table once, and builds the signed retrying transport.
func NewFraudcheck() (*Fraudcheck, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	conn, err := contraindicator.ConnectStore(configuration.DataSource.Dns)
	if err != nil {
		return nil, err
	}

	mappingCache, err := cache.NewCache()
	if err != nil {
		return nil, err
	}

	store := contraindicator.NewStore(conn, mappingCache)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	translator, err := contraindicator.LoadTranslator(ctx, store, configuration.Provider.TenantID)
	if err != nil {
		return nil, err
	}

	sgn, err := signer.New(configuration.Provider.HmacKey)
	if err != nil {
		return nil, err
	}

	policy := httpclient.DefaultRetryPolicy()
	policy.MaxRetries = configuration.Provider.MaxRetries
	policy.WaitCap = time.Duration(configuration.Provider.BackoffCapMs) * time.Millisecond
	if configuration.Provider.ZeroRetryWait {
		policy.BaseWait = 0
		policy.WaitCap = 0
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	transport := &http.Client{Timeout: time.Duration(configuration.Provider.TimeoutSec) * time.Second}

	return &Fraudcheck{
		endpointURL: configuration.Provider.EndpointURL,
		builder:     provider.NewRequestBuilder(configuration.Provider.TenantID, configuration.Provider.RequestType),
		signer:      sgn,
		client:      httpclient.New(transport, policy, m),
		translator:  translator,
		metrics:     m,
	}, nil
}

// NewFraudcheckWith wires a service from explicit parts, bypassing the
// config singleton. Used by tests and custom deployments.
func NewFraudcheckWith(endpointURL string, builder *provider.RequestBuilder, sgn *signer.Signer, client *httpclient.Client, translator *contraindicator.Translator, m *metrics.Metrics) *Fraudcheck {
	return &Fraudcheck{
		endpointURL: endpointURL,
		builder:     builder,
		signer:      sgn,
		client:      client,
		translator:  translator,
		metrics:     m,
	}
}
