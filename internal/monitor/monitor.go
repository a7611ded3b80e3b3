// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"website-monitor/internal/config"
	"website-monitor/internal/healthcheck"
	"website-monitor/internal/metrics"
	"website-monitor/internal/notify"
	"website-monitor/internal/report"
	"website-monitor/internal/snapshot"
	"website-monitor/internal/state"
)

const initializedMessage = "Website Monitor Initialized"

type Runner interface {
	Run(ctx context.Context, targets []string) healthcheck.Results
}

type Mailer interface {
	Prepare(email notify.Email) (*notify.Envelope, error)
}

// Monitor drives the health check cycles and owns the state manager.
type Monitor struct {
	config   config.Configuration
	runner   Runner
	mailer   Mailer
	state    *state.Manager
	snapshot *snapshot.Holder
	logger   zerolog.Logger
}

func New(cfg config.Configuration, runner Runner, mailer Mailer, manager *state.Manager, holder *snapshot.Holder, logger zerolog.Logger) *Monitor {
	if holder == nil {
		holder = snapshot.NewHolder()
	}

	return &Monitor{
		config:   cfg,
		runner:   runner,
		mailer:   mailer,
		state:    manager,
		snapshot: holder,
		logger:   logger,
	}
}

// Start marks the monitor active and persists the state.
func (m *Monitor) Start(ctx context.Context) {
	_ = m.state.Update(ctx, func(st *state.State) {
		st.Config.Debug = m.config.Debug
		st.IsActive = true
		st.Data = initializedMessage
	})

	m.snapshot.Publish(m.state.State(), nil)
	m.logger.Info().Msgf("Website monitor running with %d websites", len(m.config.Websites.Urls))
}

// Run executes cycles until ctx is cancelled or a cycle fails fatally. Cancellation
// is only observed while sleeping between cycles.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		if _, err := m.RunCycle(context.WithoutCancel(ctx)); err != nil {
			return err
		}

		m.logger.Debug().Msgf("Next cycle in %s", m.config.Interval())
		if err := wait(ctx, m.config.Interval()); err != nil {
			m.logger.Info().Msg("Stopping website monitor")
			return nil
		}
	}
}

// RunCycle probes every target once, mails the report and counts the cycle. Only an
// encryption failure is returned, as *FatalError.
func (m *Monitor) RunCycle(ctx context.Context) (report.Report, error) {
	results := m.runner.Run(ctx, m.config.Websites.Urls)
	rep := report.Render(results)

	m.logger.Info().
		Int("total", rep.Total).
		Int("up", rep.Up).
		Int("down", rep.Down).
		Msg("Health check cycle finished")

	envelope, err := m.mailer.Prepare(notify.Email{
		Subject: m.config.Mail.Subject,
		Body:    rep.Text,
	})
	if err != nil {
		m.logger.Error().Err(err).Msg("Error occurred while preparing to send email")
		metrics.RecordNotificationFailure(string(state.KindEncryption))
		_ = m.state.RecordError(ctx, state.KindEncryption, err)
		m.snapshot.Publish(m.state.State(), &rep)

		return rep, &FatalError{Reason: "could not encrypt report", Err: err}
	}

	if err := envelope.Send(ctx); err != nil {
		m.logger.Error().Err(err).Msg("Error occurred while sending email")
		metrics.RecordNotificationFailure(string(state.KindSend))
		_ = m.state.RecordError(ctx, state.KindSend, err)
	}

	_ = m.state.Update(ctx, func(st *state.State) {
		st.EventCounter++
	})

	current := m.state.State()
	metrics.RecordCycle(current.EventCounter)
	m.snapshot.Publish(current, &rep)

	return rep, nil
}

// wait pauses for d or returns early with the context error once ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
