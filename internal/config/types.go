// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

type Configuration struct {
	AppName string `mapstructure:"appName"`
	Version string `mapstructure:"version"`
	Debug   bool   `mapstructure:"debug"`

	App      App      `mapstructure:"app"`
	Websites Websites `mapstructure:"websites"`
	Probe    Probe    `mapstructure:"probe"`

	State State `mapstructure:"state"`
	Mail  Mail  `mapstructure:"mail"`

	Api     Api     `mapstructure:"api"`
	Metrics Metrics `mapstructure:"metrics"`
	Tracing Tracing `mapstructure:"tracing"`

	Mongo Mongo `mapstructure:"mongo"`
	Kafka Kafka `mapstructure:"kafka"`
}

type App struct {
	IntervalSeconds int `mapstructure:"intervalSeconds"`
}

type Websites struct {
	Urls []string `mapstructure:"urls"`
}

type Probe struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"userAgent"`
	Delay     time.Duration `mapstructure:"delay"`
}

type State struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
	Path    string `mapstructure:"path"`
}

type Mail struct {
	Subject   string        `mapstructure:"subject"`
	Transport string        `mapstructure:"transport"`
	RelayUrl  string        `mapstructure:"relayUrl"`
	Key       string        `mapstructure:"key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type Api struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

type Tracing struct {
	CollectorEndpoint string  `mapstructure:"collectorEndpoint"`
	Https             bool    `mapstructure:"https"`
	DebugEnabled      bool    `mapstructure:"debugEnabled"`
	Enabled           bool    `mapstructure:"enabled"`
	SampleRatio       float64 `mapstructure:"sampleRatio"`
}

type Mongo struct {
	Url        string `mapstructure:"url"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type Kafka struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Interval returns the pause between two cycles.
func (c Configuration) Interval() time.Duration {
	return time.Duration(c.App.IntervalSeconds) * time.Second
}
