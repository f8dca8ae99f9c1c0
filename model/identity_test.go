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
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestAddressType(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	past := today.AddDate(-2, 0, 0)
	earlier := today.AddDate(-5, 0, 0)
	future := today.AddDate(1, 0, 0)

	tests := []struct {
		name       string
		validFrom  *time.Time
		validUntil *time.Time
		want       AddressType
	}{
		{"no dates is current", nil, nil, AddressTypeCurrent},
		{"valid from in the past is current", datePtr(past), nil, AddressTypeCurrent},
		{"valid from today is current", datePtr(today), nil, AddressTypeCurrent},
		{"valid from in the future is unknown", datePtr(future), nil, AddressTypeUnknown},
		{"valid until in the past is previous", nil, datePtr(past), AddressTypePrevious},
		{"valid until today is previous", nil, datePtr(today), AddressTypePrevious},
		{"full past window is previous", datePtr(earlier), datePtr(past), AddressTypePrevious},
		{"valid until in the future is unknown", datePtr(earlier), datePtr(future), AddressTypeUnknown},
		{"inverted window is unknown", datePtr(past), datePtr(earlier), AddressTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := Address{Street: "1 Main Street", ValidFrom: tt.validFrom, ValidUntil: tt.validUntil}
			assert.Equal(t, tt.want, addr.Type(today))
		})
	}
}

func TestIdentityValidate(t *testing.T) {
	identity := Identity{
		FirstName: "Kenneth",
		Surname:   "Decerqueira",
		DOB:       time.Date(1965, 7, 8, 0, 0, 0, 0, time.UTC),
		Addresses: []Address{{Street: "8 Hadley Road", PostTown: "Bath", PostCode: "BA2 5AA"}},
	}
	assert.Empty(t, identity.Validate())
}

func TestIdentityValidateMissingFields(t *testing.T) {
	identity := Identity{}
	errs := identity.Validate()
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "first name is required")
	assert.Contains(t, errs, "surname is required")
	assert.Contains(t, errs, "at least one address is required")
}

func TestIdentityValidateFutureDOB(t *testing.T) {
	identity := Identity{
		FirstName: "Kenneth",
		Surname:   "Decerqueira",
		DOB:       time.Now().AddDate(1, 0, 0),
		Addresses: []Address{{Street: "8 Hadley Road"}},
	}
	errs := identity.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "date of birth must not be in the future", errs[0])
}

func TestNewFraudCheckResultNeverNilCodes(t *testing.T) {
	result := NewFraudCheckResult(nil, "txn_1")
	assert.True(t, result.ExecutedSuccessfully)
	assert.NotNil(t, result.ThirdPartyFraudCodes)
	assert.Empty(t, result.ThirdPartyFraudCodes)
	assert.Equal(t, "txn_1", result.TransactionID)
}
