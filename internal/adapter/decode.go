// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/doin-client/models"
	"github.com/tidwall/gjson"
)

func decodeJSON[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return v, nil
}

// decodePage reads a Spring page envelope. A bare JSON array is returned
// as a single, last page.
func decodePage[T any](body []byte) (models.Page[T], error) {
	if !gjson.ValidBytes(body) {
		return models.Page[T]{}, fmt.Errorf("%w: invalid json", ErrDecode)
	}

	root := gjson.ParseBytes(body)
	if root.IsArray() {
		content, err := decodeJSON[[]T]([]byte(root.Raw))
		if err != nil {
			return models.Page[T]{}, err
		}
		return models.Page[T]{
			Content:       content,
			Size:          len(content),
			TotalPages:    1,
			TotalElements: int64(len(content)),
			Last:          true,
		}, nil
	}

	page, err := decodeJSON[models.Page[T]](body)
	if err != nil {
		return models.Page[T]{}, err
	}
	if !root.Get("last").Exists() {
		page.Last = page.Number+1 >= page.TotalPages
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	return page, nil
}

// decodeList accepts either a bare array or a page envelope and returns
// only the elements.
func decodeList[T any](body []byte) ([]T, error) {
	page, err := decodePage[T](body)
	if err != nil {
		return nil, err
	}
	return page.Content, nil
}

// decodeToken reads {"token": "..."} or a raw, possibly quoted, token string.
func decodeToken(body []byte) (string, error) {
	if gjson.ValidBytes(body) {
		root := gjson.ParseBytes(body)
		switch {
		case root.IsObject():
			if t := strings.TrimSpace(root.Get("token").String()); t != "" {
				return t, nil
			}
			return "", fmt.Errorf("%w: no token in response", ErrDecode)
		case root.Type == gjson.String:
			body = []byte(root.String())
		}
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrDecode)
	}
	return token, nil
}

// decodeValidateResult reads {valid|success: bool, message?: string}.
func decodeValidateResult(body []byte) (models.ValidateResult, error) {
	if !gjson.ValidBytes(body) {
		return models.ValidateResult{}, fmt.Errorf("%w: invalid json", ErrDecode)
	}

	root := gjson.ParseBytes(body)
	valid := root.Get("valid")
	if !valid.Exists() {
		valid = root.Get("success")
	}

	return models.ValidateResult{
		Valid:   valid.Bool(),
		Message: root.Get("message").String(),
	}, nil
}
