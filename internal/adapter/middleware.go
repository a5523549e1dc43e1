// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"time"

	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

// WithBearerToken attaches "Authorization: Bearer <token>" to every request.
// A token stored in the request context by [utils.WithToken] wins over src.
// Requests whose context was marked with [utils.WithoutAuth], or for which
// no token is available, go out without the header.
func WithBearerToken(src TokenSource) ClientOption {
	return func(c *resty.Client) {
		c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			ctx := req.Context()
			if utils.IsAuthSkipped(ctx) {
				return nil
			}

			token, ok := utils.GetTokenFromContext(ctx)
			if !ok && src != nil {
				token = src.Token(ctx)
			}
			if token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})
	}
}

// WithFailureNotifications publishes one message to n for every failed
// call: "Error <status>: <message>" for a non-2xx response and
// "Error: <cause>" when no response arrived. The failure is still returned
// to the caller.
func WithFailureNotifications(n Notifier) ClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.IsError() {
				n.Publish(failureMessage(resp))
			}
			return nil
		})

		c.OnError(func(_ *resty.Request, err error) {
			if hasHTTPResponse(err) {
				// OnAfterResponse has already seen it.
				return
			}
			n.Publish(networkFailureMessage(err))
		})
	}
}

// WithTraceID sets [TraceIDHeader] to a fresh id on every request.
func WithTraceID(gen IDGenerator) ClientOption {
	return func(c *resty.Client) {
		c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader(TraceIDHeader, gen.Generate())
			return nil
		})
	}
}

// WithRequestLogging writes one log line per call: debug for success,
// warn for a non-2xx response and error for a transport failure.
func WithRequestLogging(log *logger.Logger) ClientOption {
	return func(c *resty.Client) {
		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			event := log.Debug()
			if resp.IsError() {
				event = log.Warn()
			}

			event.
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Str("trace_id", resp.Request.Header.Get(TraceIDHeader)).
				Int("status", resp.StatusCode()).
				Dur("elapsed", resp.Time()).
				Msg("http call completed")
			return nil
		})

		c.OnError(func(req *resty.Request, err error) {
			log.Error().
				Err(err).
				Str("method", req.Method).
				Str("url", req.URL).
				Str("trace_id", req.Header.Get(TraceIDHeader)).
				Time("at", time.Now()).
				Msg("http call completed with error")
		})
	}
}

// hasHTTPResponse reports whether err carries a response the server actually
// sent. resty wraps transport failures in a ResponseError too, with an empty
// Response that has no RawResponse.
func hasHTTPResponse(err error) bool {
	var respErr *resty.ResponseError
	if !errors.As(err, &respErr) || respErr.Response == nil {
		return false
	}
	return respErr.Response.RawResponse != nil
}
