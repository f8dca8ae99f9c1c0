/*
Copyright 2025 Truna Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package contraindicator

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/truna-id/fraudcheck/internal/cache"
)

// mappingTTL bounds how stale a cached tenant mapping may get. Translators
// hold their table for their own lifetime anyway; the TTL only matters for
// the next construction.
const mappingTTL = time.Hour

// Store is the system of record for contraindication mappings: the keyed
// table translating provider fraud codes into internal contraindicator
// codes, per tenant. Reads go through an optional cache.
type Store struct {
	conn  *sql.DB
	cache cache.Cache
}

func NewStore(conn *sql.DB, cache cache.Cache) *Store {
	return &Store{conn: conn, cache: cache}
}

// ConnectStore opens the Postgres connection backing the mapping table and
// ensures the table exists.
func ConnectStore(dns string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open mapping store")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "mapping store unreachable")
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contraindication_mappings (
			tenant_id TEXT NOT NULL,
			fraud_code TEXT NOT NULL,
			contraindicator_code TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			PRIMARY KEY (tenant_id, fraud_code)
		)
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mapping table")
	}
	return db, nil
}

func cacheKey(tenantID string) string {
	return fmt.Sprintf("contraindication_mappings:%s", tenantID)
}

// Mappings returns the fraud-code to contraindicator-code table for a
// tenant, reading through the cache when one is configured.
func (s *Store) Mappings(ctx context.Context, tenantID string) (map[string]string, error) {
	if s.cache != nil {
		var cached map[string]string
		if err := s.cache.Get(ctx, cacheKey(tenantID), &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT fraud_code, contraindicator_code
		FROM contraindication_mappings
		WHERE tenant_id = $1
	`, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load contraindication mappings")
	}
	defer rows.Close()

	mappings := make(map[string]string)
	for rows.Next() {
		var fraudCode, internalCode string
		if err := rows.Scan(&fraudCode, &internalCode); err != nil {
			return nil, errors.Wrap(err, "failed to scan contraindication mapping")
		}
		mappings[fraudCode] = internalCode
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read contraindication mappings")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(tenantID), mappings, mappingTTL); err != nil {
			return mappings, nil // cache write failures never block a read
		}
	}
	return mappings, nil
}

// SeedMapping inserts or replaces one mapping row and invalidates the
// tenant's cached table.
func (s *Store) SeedMapping(ctx context.Context, tenantID, fraudCode, contraindicatorCode string) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO contraindication_mappings (tenant_id, fraud_code, contraindicator_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_id, fraud_code)
		DO UPDATE SET contraindicator_code = EXCLUDED.contraindicator_code
	`, tenantID, fraudCode, contraindicatorCode)
	if err != nil {
		return errors.Wrap(err, "failed to seed contraindication mapping")
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKey(tenantID)); err != nil {
			return errors.Wrap(err, "mapping seeded but cache invalidation failed")
		}
	}
	return nil
}
