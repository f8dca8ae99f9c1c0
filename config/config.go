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
package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = "5002"

	DefaultMaxRetries    = 7
	DefaultBackoffCapMs  = 12800
	DefaultTimeoutSec    = 30
	DefaultTenantID      = "default"
	DefaultRequestType   = "fraud"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	SecretKey string `json:"secret_key" envconfig:"FRAUDCHECK_SERVER_SECRET_KEY"`
	Port      string `json:"port" envconfig:"FRAUDCHECK_SERVER_PORT"`
}

// ProviderConfig carries the already-resolved values for the fraud
// intelligence provider: where to send checks, the HMAC key signing them,
// and the tenant/request-type identifiers stamped on every request. Secret
// sourcing (SSM, vaults) happens before this process starts.
type ProviderConfig struct {
	EndpointURL   string `json:"endpoint_url" envconfig:"FRAUDCHECK_PROVIDER_ENDPOINT_URL"`
	HmacKey       string `json:"hmac_key" envconfig:"FRAUDCHECK_PROVIDER_HMAC_KEY"`
	TenantID      string `json:"tenant_id" envconfig:"FRAUDCHECK_PROVIDER_TENANT_ID"`
	RequestType   string `json:"request_type" envconfig:"FRAUDCHECK_PROVIDER_REQUEST_TYPE"`
	MaxRetries    int    `json:"max_retries" envconfig:"FRAUDCHECK_PROVIDER_MAX_RETRIES"`
	BackoffCapMs  int    `json:"backoff_cap_ms" envconfig:"FRAUDCHECK_PROVIDER_BACKOFF_CAP_MS"`
	TimeoutSec    int    `json:"timeout_sec" envconfig:"FRAUDCHECK_PROVIDER_TIMEOUT_SEC"`
	ZeroRetryWait bool   `json:"zero_retry_wait" envconfig:"FRAUDCHECK_PROVIDER_ZERO_RETRY_WAIT"`
}

type DataSourceConfig struct {
	Dns string `json:"dns" envconfig:"FRAUDCHECK_DATA_SOURCE_DNS"`
}

type RedisConfig struct {
	Dns           string `json:"dns" envconfig:"FRAUDCHECK_REDIS_DNS"`
	SkipTLSVerify bool   `json:"skip_tls_verify" envconfig:"FRAUDCHECK_REDIS_SKIP_TLS_VERIFY"`
}

type AuditWebhook struct {
	Url     string            `json:"url" envconfig:"FRAUDCHECK_AUDIT_WEBHOOK_URL"`
	Headers map[string]string `json:"headers"`
}

type Notification struct {
	Audit AuditWebhook `json:"audit"`
}

type Configuration struct {
	ProjectName  string           `json:"project_name" envconfig:"FRAUDCHECK_PROJECT_NAME"`
	Server       ServerConfig     `json:"server"`
	Provider     ProviderConfig   `json:"provider"`
	DataSource   DataSourceConfig `json:"data_source"`
	Redis        RedisConfig      `json:"redis"`
	Notification Notification     `json:"notification"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("fraudcheck", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called fraudcheck.json with your config")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Fraudcheck Server"
	}

	if cnf.Provider.EndpointURL == "" {
		log.Println("Error: Provider endpoint URL is empty. It's a required field.")
		return errors.New("provider endpoint URL is required")
	}

	if cnf.Provider.HmacKey == "" {
		log.Println("Error: Provider HMAC key is empty. It's a required field.")
		return errors.New("provider HMAC key is required")
	}

	if cnf.DataSource.Dns == "" {
		log.Println("Error: Data source DNS is empty. It's a required field.")
		return errors.New("data source DNS is required")
	}

	if cnf.Redis.Dns == "" {
		log.Println("Error: Redis DNS is empty. It's a required field.")
		return errors.New("redis DNS is required")
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.Provider.EndpointURL = strings.TrimSpace(cnf.Provider.EndpointURL)
	cnf.Provider.TenantID = strings.TrimSpace(cnf.Provider.TenantID)
	cnf.DataSource.Dns = strings.TrimSpace(cnf.DataSource.Dns)
	cnf.Redis.Dns = strings.TrimSpace(cnf.Redis.Dns)

	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	if cnf.Provider.TenantID == "" {
		cnf.Provider.TenantID = DefaultTenantID
		log.Printf("Warning: Provider tenant id not specified. Setting default: %s", DefaultTenantID)
	}

	if cnf.Provider.RequestType == "" {
		cnf.Provider.RequestType = DefaultRequestType
	}

	if cnf.Provider.MaxRetries <= 0 {
		cnf.Provider.MaxRetries = DefaultMaxRetries
	}

	if cnf.Provider.BackoffCapMs <= 0 {
		cnf.Provider.BackoffCapMs = DefaultBackoffCapMs
	}

	if cnf.Provider.TimeoutSec <= 0 {
		cnf.Provider.TimeoutSec = DefaultTimeoutSec
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
