// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"context"
	"time"
)

type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Transport hands a sealed payload over to whatever actually delivers the mail.
type Transport interface {
	Deliver(ctx context.Context, key string, payload []byte) error
}

// sealed is the wire format of an envelope.
type sealed struct {
	Sender    string    `json:"sender"`
	Nonce     []byte    `json:"nonce"`
	Data      []byte    `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}
