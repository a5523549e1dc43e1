// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

type httpImageAdapter struct {
	gateway *Gateway
}

// NewHTTPImageAdapter returns the REST implementation of [ImageAdapter].
func NewHTTPImageAdapter(gateway *Gateway) ImageAdapter {
	return &httpImageAdapter{gateway: gateway}
}

func (h *httpImageAdapter) Get(ctx context.Context, id int64) ([]byte, error) {
	body, err := h.gateway.Get(ctx, "/images/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("get image request: %w", err)
	}

	data, err := DecodeImageData(string(body))
	if err != nil {
		return nil, fmt.Errorf("get image response: %w", err)
	}
	return data, nil
}

// DecodeImageData decodes a base64 image payload. The payload may be a JSON
// string and may carry a "data:<mime>;base64," prefix.
func DecodeImageData(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if gjson.Valid(raw) && gjson.Parse(raw).Type == gjson.String {
		raw = gjson.Parse(raw).String()
	}
	if i := strings.Index(raw, ";base64,"); strings.HasPrefix(raw, "data:") && i >= 0 {
		raw = raw[i+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
	return data, nil
}
