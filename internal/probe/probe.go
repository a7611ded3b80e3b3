// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "HealthChecker/1.0"
)

type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Transport replaces the default transport, mainly for tests.
	Transport http.RoundTripper
}

// Prober performs single timed GET requests. Any response whose body can be read is UP,
// regardless of its status code: the monitor reports reachability, not correctness.
type Prober struct {
	client    *http.Client
	userAgent string
	tracer    trace.Tracer
	logger    zerolog.Logger
}

func New(opts Options, logger zerolog.Logger) *Prober {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	// Every probe dials a fresh connection so that the connect stage and name
	// resolution are measured each time.
	if opts.Transport == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.DisableKeepAlives = true
		opts.Transport = transport
	}

	return &Prober{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: opts.Transport,
		},
		userAgent: opts.UserAgent,
		tracer:    otel.Tracer("website-monitor/probe"),
		logger:    logger,
	}
}

func (p *Prober) Probe(ctx context.Context, url string) Result {
	ctx, span := p.tracer.Start(ctx, "probe",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", url)))
	defer span.End()

	result := p.probe(ctx, url)

	span.SetAttributes(attribute.String("probe.status", string(result.Status)))
	if result.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", result.StatusCode))
	}
	if !result.Up() {
		span.SetStatus(codes.Error, result.Error)
	}

	p.logger.Debug().
		Str("url", url).
		Str("status", string(result.Status)).
		Int("statusCode", result.StatusCode).
		Str("error", result.Error).
		Msg("Probe finished")

	return result
}

func (p *Prober) probe(ctx context.Context, url string) Result {
	var start time.Time
	connect := new(connectTimer)

	clientTrace := &httptrace.ClientTrace{
		GotConn: func(httptrace.GotConnInfo) {
			connect.stop(start)
		},
	}

	request, err := http.NewRequestWithContext(httptrace.WithClientTrace(ctx, clientTrace), http.MethodGet, url, nil)
	if err != nil {
		return Result{Status: StatusDown, Error: fmt.Sprintf("Failed to create request for URL %s: %v", url, err)}
	}
	request.Header.Set("User-Agent", p.userAgent)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(request.Header))

	start = time.Now()
	response, err := p.client.Do(request)
	if err != nil {
		return Result{Status: StatusDown, Error: err.Error()}
	}
	defer response.Body.Close()

	headersReceived := time.Now()
	responseTime := headersReceived.Sub(start)

	// Without a reported connection (e.g. a non-network transport) the connect stage
	// collapses into the response stage.
	connectTime, ok := connect.elapsed()
	if !ok {
		connectTime = responseTime
	}

	if _, err := io.Copy(io.Discard, response.Body); err != nil {
		p.logger.Warn().Err(err).Str("url", url).Msg("Error while reading response body")
		return Result{
			Status:       StatusDown,
			ConnectTime:  &connectTime,
			ResponseTime: &responseTime,
			StatusCode:   response.StatusCode,
			Error:        fmt.Sprintf("Failed to read response body: %v", err),
		}
	}
	bodyReadTime := time.Since(headersReceived)

	return Result{
		Status:       StatusUp,
		ConnectTime:  &connectTime,
		ResponseTime: &responseTime,
		BodyReadTime: &bodyReadTime,
		StatusCode:   response.StatusCode,
	}
}

// connectTimer records the first connection of a request. The transport may report it
// from another goroutine.
type connectTimer struct {
	mu       sync.Mutex
	done     bool
	duration time.Duration
}

func (c *connectTimer) stop(start time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.done {
		c.done = true
		c.duration = time.Since(start)
	}
}

func (c *connectTimer) elapsed() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.duration, c.done
}
