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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMappingsLoadsTenantTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"fraud_code", "contraindicator_code"}).
		AddRow("FR01", "A02").
		AddRow("FR02", "A01")

	mock.ExpectQuery("SELECT fraud_code, contraindicator_code").
		WithArgs("tenant-1").
		WillReturnRows(rows)

	store := NewStore(db, nil)
	mappings, err := store.Mappings(context.Background(), "tenant-1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"FR01": "A02", "FR02": "A01"}, mappings)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMappingsUnknownTenantIsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT fraud_code, contraindicator_code").
		WithArgs("tenant-2").
		WillReturnRows(sqlmock.NewRows([]string{"fraud_code", "contraindicator_code"}))

	store := NewStore(db, nil)
	mappings, err := store.Mappings(context.Background(), "tenant-2")
	assert.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestSeedMappingUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO contraindication_mappings").
		WithArgs("tenant-1", "FR01", "A02").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db, nil)
	err = store.SeedMapping(context.Background(), "tenant-1", "FR01", "A02")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadTranslatorUsesStoreTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT fraud_code, contraindicator_code").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"fraud_code", "contraindicator_code"}).AddRow("FR01", "A02"))

	translator, err := LoadTranslator(context.Background(), NewStore(db, nil), "tenant-1")
	assert.NoError(t, err)

	out, err := translator.Translate([]string{"FR01"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A02"}, out)
}
