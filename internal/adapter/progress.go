// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"io"

	"github.com/MKhiriev/doin-client/models"
)

type sizer interface {
	Len() int
}

// progressReader reports every read of the wrapped reader to onProgress.
type progressReader struct {
	r          io.Reader
	sent       int64
	total      int64
	onProgress func(models.UploadProgress)
}

func newProgressReader(r io.Reader, total int64, onProgress func(models.UploadProgress)) io.Reader {
	if onProgress == nil {
		return r
	}
	if total <= 0 {
		if s, ok := r.(sizer); ok {
			total = int64(s.Len())
		}
	}

	return &progressReader{r: r, total: total, onProgress: onProgress}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.onProgress(models.UploadProgress{Sent: p.sent, Total: p.total})
	}
	return n, err
}
