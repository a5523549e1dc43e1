// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeToken(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "object", body: `{"token":"a.b.c"}`, want: "a.b.c"},
		{name: "raw", body: "a.b.c\n", want: "a.b.c"},
		{name: "json string", body: `"a.b.c"`, want: "a.b.c"},
		{name: "object without token", body: `{"user":"x"}`, wantErr: true},
		{name: "empty", body: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeToken([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDecode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePage_LastDerivedFromTotals(t *testing.T) {
	page, err := decodePage[int]([]byte(`{"content":[1,2],"number":1,"totalPages":2}`))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, page.Content)
	assert.True(t, page.Last)
}

func TestDecodePage_Invalid(t *testing.T) {
	_, err := decodePage[int]([]byte(`{"content":`))
	assert.ErrorIs(t, err, ErrDecode)
}

func TestDecodeValidateResult_NotJSON(t *testing.T) {
	_, err := decodeValidateResult([]byte("yes"))
	assert.ErrorIs(t, err, ErrDecode)
}
