// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"website-monitor/internal/probe"
)

func EnvOrDefault(name string, fallback string) string {
	value, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	return value
}

// UpResult builds an UP result whose three stages all took d.
func UpResult(d time.Duration) probe.Result {
	connect, response, body := d, d, d
	return probe.Result{
		Status:       probe.StatusUp,
		ConnectTime:  &connect,
		ResponseTime: &response,
		BodyReadTime: &body,
		StatusCode:   http.StatusOK,
	}
}

func DownResult(message string) probe.Result {
	return probe.Result{
		Status: probe.StatusDown,
		Error:  message,
	}
}

// NewOkServer starts a server answering every request with 200 and a short body.
func NewOkServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	t.Cleanup(server.Close)

	return server
}

// ClosedServerUrl returns the url of a server that no longer accepts connections.
func ClosedServerUrl(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	return url
}
