// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/doin-client/internal/logger"
	"github.com/MKhiriev/doin-client/migrations"
)

// builder builds sqlite statements with "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
