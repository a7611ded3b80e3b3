// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendFile  = "file"
	BackendMongo = "mongo"

	TransportRelay = "relay"
	TransportKafka = "kafka"
)

// Load reads the configuration from the given file, or from ./config.yml when path is empty.
// A missing file is not an error; defaults and environment variables apply instead.
func Load(path string) (Configuration, error) {
	v := viper.New()
	configureViper(v, path)
	setDefaults(v)

	if err := readConfiguration(v); err != nil {
		return Configuration{}, err
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return Configuration{}, fmt.Errorf("could not unmarshal configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Configuration{}, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Defaults returns the configuration made of defaults only. It is used when the real
// configuration could not be loaded.
func Defaults() Configuration {
	v := viper.New()
	setDefaults(v)

	var config Configuration
	_ = v.Unmarshal(&config)
	return config
}

// Initialize writes the default configuration to path (./config.yml when empty) without
// overwriting an existing file. Additional values override the defaults.
func Initialize(path string, overrides map[string]any) error {
	v := viper.New()
	configureViper(v, path)
	setDefaults(v)

	for key, value := range overrides {
		v.Set(key, value)
	}

	if path != "" {
		return v.SafeWriteConfigAs(path)
	}
	return v.SafeWriteConfig()
}

func configureViper(v *viper.Viper, path string) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("monitor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func setDefaults(v *viper.Viper) {
	// General
	v.SetDefault("appName", "website-monitor")
	v.SetDefault("version", "dev")
	v.SetDefault("debug", false)

	// Cycle
	v.SetDefault("app.intervalSeconds", 300)
	v.SetDefault("websites.urls", []string{})

	// Probe
	v.SetDefault("probe.timeout", "30s")
	v.SetDefault("probe.userAgent", "HealthChecker/1.0")
	v.SetDefault("probe.delay", "500ns")

	// State
	v.SetDefault("state.backend", BackendFile)
	v.SetDefault("state.dir", os.TempDir())
	v.SetDefault("state.path", "")

	// Mail
	v.SetDefault("mail.subject", "Website Monitor Report")
	v.SetDefault("mail.transport", TransportRelay)
	v.SetDefault("mail.relayUrl", "http://localhost:8025/api/v1/send")
	v.SetDefault("mail.key", "")
	v.SetDefault("mail.timeout", "10s")

	// Api
	v.SetDefault("api.enabled", false)
	v.SetDefault("api.port", 8080)

	// Metrics
	v.SetDefault("metrics.enabled", true)

	// Tracing
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.collectorEndpoint", "localhost:4318")
	v.SetDefault("tracing.https", false)
	v.SetDefault("tracing.debugEnabled", false)
	v.SetDefault("tracing.sampleRatio", 0.1)

	// Mongo
	v.SetDefault("mongo.url", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "monitor")
	v.SetDefault("mongo.collection", "state")

	// Kafka
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "website-monitor-mail")
}

func readConfiguration(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not read configuration file: %w", err)
		}
	}

	v.AutomaticEnv()
	return nil
}
