// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"time"

	"website-monitor/internal/config"
)

func BuildTestConfig(urls ...string) config.Configuration {
	return config.Configuration{
		AppName: "website-monitor",
		Version: "test",
		Debug:   true,
		App: config.App{
			IntervalSeconds: 1,
		},
		Websites: config.Websites{
			Urls: urls,
		},
		Probe: config.Probe{
			Timeout:   2 * time.Second,
			UserAgent: "HealthChecker/1.0",
			Delay:     500 * time.Nanosecond,
		},
		State: config.State{
			Backend: config.BackendFile,
		},
		Mail: config.Mail{
			Subject:   "Website Monitor Report",
			Transport: config.TransportRelay,
			RelayUrl:  "http://relay.local/api/v1/send",
			Timeout:   time.Second,
		},
		Api: config.Api{
			Port: 8080,
		},
		Metrics: config.Metrics{
			Enabled: true,
		},
		Tracing: config.Tracing{
			CollectorEndpoint: "localhost:4318",
			SampleRatio:       1,
		},
		Mongo: config.Mongo{
			Url:        EnvOrDefault("MONGO_URL", "mongodb://localhost:27017"),
			Database:   "monitor",
			Collection: "state",
		},
		Kafka: config.Kafka{
			Brokers: []string{"broker1:9092"},
			Topic:   "website-monitor-mail",
		},
	}
}
