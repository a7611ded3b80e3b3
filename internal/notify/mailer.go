// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var (
	ErrInvalidKey = errors.New("mail key must be 32 base64 encoded bytes")
	ErrOpen       = errors.New("envelope could not be opened")
)

// Mailer seals emails so that only holders of the shared key can read them.
type Mailer struct {
	key       string
	sender    string
	transport Transport
	logger    zerolog.Logger
}

func NewMailer(key string, sender string, transport Transport, logger zerolog.Logger) *Mailer {
	return &Mailer{
		key:       key,
		sender:    sender,
		transport: transport,
		logger:    logger,
	}
}

// Envelope is a sealed email that is ready to be sent.
type Envelope struct {
	sender    string
	payload   []byte
	transport Transport
}

// Prepare encrypts the email. Any error returned here is an encryption failure.
func (m *Mailer) Prepare(email Email) (*Envelope, error) {
	key, err := decodeKey(m.key)
	if err != nil {
		return nil, err
	}

	plain, err := json.Marshal(email)
	if err != nil {
		return nil, fmt.Errorf("could not encode email: %w", err)
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	payload, err := json.Marshal(sealed{
		Sender:    m.sender,
		Nonce:     nonce[:],
		Data:      secretbox.Seal(nil, plain, &nonce, key),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not encode envelope: %w", err)
	}

	m.logger.Debug().Int("size", len(payload)).Msg("Encrypted report data")

	return &Envelope{
		sender:    m.sender,
		payload:   payload,
		transport: m.transport,
	}, nil
}

func (e *Envelope) Payload() []byte {
	return e.payload
}

func (e *Envelope) Send(ctx context.Context) error {
	if e.transport == nil {
		return errors.New("no mail transport configured")
	}

	if err := e.transport.Deliver(ctx, e.sender, e.payload); err != nil {
		return fmt.Errorf("could not send email: %w", err)
	}
	return nil
}

// Open decrypts a payload produced by Prepare.
func Open(key string, payload []byte) (Email, error) {
	secret, err := decodeKey(key)
	if err != nil {
		return Email{}, err
	}

	var envelope sealed
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Email{}, fmt.Errorf("could not decode envelope: %w", err)
	}
	if len(envelope.Nonce) != nonceSize {
		return Email{}, ErrOpen
	}

	var nonce [nonceSize]byte
	copy(nonce[:], envelope.Nonce)

	plain, ok := secretbox.Open(nil, envelope.Data, &nonce, secret)
	if !ok {
		return Email{}, ErrOpen
	}

	var email Email
	if err := json.Unmarshal(plain, &email); err != nil {
		return Email{}, fmt.Errorf("could not decode email: %w", err)
	}
	return email, nil
}

// GenerateKey returns a fresh random key in the format expected by mail.key.
func GenerateKey() (string, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("could not generate mail key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

func decodeKey(encoded string) (*[keySize]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != keySize {
		return nil, ErrInvalidKey
	}

	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}
