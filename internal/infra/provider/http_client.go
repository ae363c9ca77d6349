package provider

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	deliverycontext "cepcache/internal/delivery/context"
	"cepcache/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/net/http2"
)

const (
	dialTimeout         = 3 * time.Second
	idleConnTimeout     = 90 * time.Second
	maxIdleConnsPerHost = 16

	// Provider payloads are a few hundred bytes; anything larger is not an address.
	maxPayloadBytes = 64 << 10

	userAgent = "cepcache/1.0"
)

// NewHTTPClient builds the outbound client shared by every provider.
// Deadlines come from the request context, so the client itself has no timeout.
func NewHTTPClient() (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: dialTimeout,
	}

	if _, err := http2.ConfigureTransports(transport); err != nil {
		return nil, errors.Wrap(err, "failed to configure HTTP/2 transport")
	}

	return &http.Client{Transport: transport}, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into dst.
// Every failure is reported as a *service.TransportError.
func getJSON(ctx context.Context, client *http.Client, providerName, url string, header http.Header, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return service.NewTransportError(providerName, 0, errors.WithStack(err))
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return service.NewTransportError(providerName, 0, errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPayloadBytes))

		return service.NewTransportError(providerName, resp.StatusCode, errors.New("non-success response"))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(dst); err != nil {
		return service.NewTransportError(providerName, resp.StatusCode, errors.Wrap(err, "failed to decode payload"))
	}

	return nil
}

// malformed reports a payload that decoded but cannot be mapped to an address.
func malformed(providerName string, format string, args ...any) error {
	return service.NewTransportError(providerName, http.StatusOK, errors.Errorf(format, args...))
}
