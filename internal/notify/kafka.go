// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/burdiyan/kafkautil"
	"github.com/rs/zerolog"
)

// KafkaTransport publishes sealed envelopes to a topic consumed by the mail relay.
type KafkaTransport struct {
	producer sarama.SyncProducer
	topic    string
	logger   zerolog.Logger
}

func NewKafkaTransport(brokers []string, topic string, logger zerolog.Logger) (*KafkaTransport, error) {
	kafkaConfig := sarama.NewConfig()
	kafkaConfig.Producer.Partitioner = kafkautil.NewJVMCompatiblePartitioner
	kafkaConfig.Producer.Return.Successes = true
	kafkaConfig.Producer.RequiredAcks = sarama.WaitForLocal

	producer, err := sarama.NewSyncProducer(brokers, kafkaConfig)
	if err != nil {
		logger.Error().Err(err).Msg("Could not create Kafka producer")
		return nil, err
	}

	return &KafkaTransport{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}, nil
}

func (t *KafkaTransport) Deliver(ctx context.Context, key string, payload []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: t.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := t.producer.SendMessage(msg)
	if err != nil {
		t.logger.Error().Err(err).Msgf("Could not publish mail to topic %s", t.topic)
		return err
	}

	t.logger.Debug().Msgf("Published mail to topic %s at partition %d with offset %d", t.topic, partition, offset)
	return nil
}

func (t *KafkaTransport) Close() error {
	return t.producer.Close()
}
