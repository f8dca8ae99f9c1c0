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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNilFraudCodes indicates a caller bug: translators always expect a
// real, possibly empty, slice.
var ErrNilFraudCodes = errors.New("fraud codes must not be nil")

// Translator maps provider fraud codes to internal contraindicator codes.
// The table is captured once at construction and is read-only for the
// translator's lifetime; picking up new mappings means building a new
// translator.
type Translator struct {
	tenantID string
	mappings map[string]string
}

// NewTranslator builds a translator over an already-loaded mapping table.
func NewTranslator(tenantID string, mappings map[string]string) *Translator {
	if mappings == nil {
		mappings = map[string]string{}
	}
	return &Translator{tenantID: tenantID, mappings: mappings}
}

// LoadTranslator builds a translator from the store's table for the tenant.
func LoadTranslator(ctx context.Context, store *Store, tenantID string) (*Translator, error) {
	mappings, err := store.Mappings(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return NewTranslator(tenantID, mappings), nil
}

// Translate maps each known fraud code to its contraindicator code,
// preserving input order. Unmapped codes are dropped and logged as a
// warning naming exactly which codes had no mapping; they never fail the
// pipeline. A nil input is a precondition violation.
func (t *Translator) Translate(fraudCodes []string) ([]string, error) {
	if fraudCodes == nil {
		return nil, ErrNilFraudCodes
	}

	translated := make([]string, 0, len(fraudCodes))
	var unmapped []string
	for _, code := range fraudCodes {
		internal, ok := t.mappings[code]
		if !ok {
			unmapped = append(unmapped, code)
			continue
		}
		translated = append(translated, internal)
	}

	if len(unmapped) > 0 {
		logrus.Warnf("no contraindicator mapping for tenant %s fraud codes: %v", t.tenantID, unmapped)
	}
	return translated, nil
}
