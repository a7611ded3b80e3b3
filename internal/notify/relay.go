// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RelayTransport posts the sealed envelope to an HTTP mail relay.
type RelayTransport struct {
	url    string
	client *http.Client
}

func NewRelayTransport(url string, timeout time.Duration) *RelayTransport {
	return &RelayTransport{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (t *RelayTransport) Deliver(ctx context.Context, key string, payload []byte) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create relay request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Sender", key)

	response, err := t.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("relay responded with status %d", response.StatusCode)
	}
	return nil
}
