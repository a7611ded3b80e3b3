// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"fmt"

	"github.com/rs/zerolog"
	"website-monitor/internal/config"
)

// NewTransport builds the transport selected by mail.transport.
func NewTransport(cfg config.Configuration, logger zerolog.Logger) (Transport, error) {
	switch cfg.Mail.Transport {
	case config.TransportRelay:
		return NewRelayTransport(cfg.Mail.RelayUrl, cfg.Mail.Timeout), nil
	case config.TransportKafka:
		transport, err := NewKafkaTransport(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return nil, err
		}
		return transport, nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.Mail.Transport)
	}
}
