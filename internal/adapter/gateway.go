// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/doin-client/internal/config"
	"github.com/MKhiriev/doin-client/internal/utils"
	"github.com/MKhiriev/doin-client/models"
	"github.com/go-resty/resty/v2"
)

// ClientOption registers behaviour on the gateway's resty client.
type ClientOption func(*resty.Client)

// Gateway issues HTTP calls against the backend base URL and normalises
// their failures. It is the only place where requests are executed.
type Gateway struct {
	client *utils.HTTPClient
}

// NewGateway builds a gateway for adapterCfg.HTTPAddress and applies opts
// in order. Hooks registered by opts run for every call.
func NewGateway(adapterCfg config.ClientAdapter, opts ...ClientOption) *Gateway {
	client := utils.NewHTTPClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	for _, opt := range opts {
		opt(client.Client)
	}

	return &Gateway{client: client}
}

// NewRequest returns a request bound to ctx.
func (g *Gateway) NewRequest(ctx context.Context) *resty.Request {
	return g.client.R().SetContext(ctx)
}

// Execute runs req and returns the response of a 2xx call. Transport
// failures are wrapped in [ErrNetwork]; non-2xx responses are mapped by
// mapHTTPError.
func (g *Gateway) Execute(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrNetwork, method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return resp, fmt.Errorf("%s %s: %w", method, path, err)
	}

	return resp, nil
}

// Get issues GET path?query and returns the response body.
func (g *Gateway) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req := g.NewRequest(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	return g.body(g.Execute(req, http.MethodGet, path))
}

// Post issues POST path with body encoded as JSON. A nil body sends none.
func (g *Gateway) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return g.withBody(ctx, http.MethodPost, path, body)
}

// Delete issues DELETE path.
func (g *Gateway) Delete(ctx context.Context, path string) ([]byte, error) {
	return g.body(g.Execute(g.NewRequest(ctx), http.MethodDelete, path))
}

// Upload sends file as the multipart form field "file".
func (g *Gateway) Upload(ctx context.Context, method, path string, file models.FileUpload, progress func(models.UploadProgress)) ([]byte, error) {
	reader := newProgressReader(file.Reader, file.Size, progress)
	req := g.NewRequest(ctx).SetFileReader("file", file.Name, reader)

	return g.body(g.Execute(req, method, path))
}

func (g *Gateway) withBody(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := g.NewRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	return g.body(g.Execute(req, method, path))
}

func (g *Gateway) body(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
