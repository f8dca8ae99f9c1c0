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
package provider

import (
	"time"

	"github.com/pkg/errors"

	"github.com/truna-id/fraudcheck/model"
)

// ErrNilIdentity indicates a caller bug: the builder is never to be invoked
// without an identity.
var ErrNilIdentity = errors.New("identity must not be nil")

const (
	NameTypeGiven  = "GivenName"
	NameTypeFamily = "FamilyName"
)

// RequestHeader carries the tenant and correlation fields the provider
// requires on every check.
type RequestHeader struct {
	TenantID          string `json:"tenant_id"`
	RequestType       string `json:"request_type"`
	ClientReferenceID string `json:"client_reference_id"`
	MessageTime       string `json:"message_time"`
}

// NameComponent is one ordered part of the applicant's name, tagged with
// the provider's component type.
type NameComponent struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// RequestAddress is the provider-shaped projection of a model.Address. The
// address type may be empty when the validity window resolves to neither
// current nor previous; such addresses are still forwarded and the provider
// applies its own rules.
type RequestAddress struct {
	AddressType    string `json:"address_type,omitempty"`
	BuildingNumber string `json:"building_number,omitempty"`
	BuildingName   string `json:"building_name,omitempty"`
	Street         string `json:"street,omitempty"`
	Locality       string `json:"locality,omitempty"`
	PostTown       string `json:"post_town,omitempty"`
	PostCode       string `json:"post_code,omitempty"`
	Country        string `json:"country,omitempty"`
}

// Applicant is the provider's view of the claimed identity.
type Applicant struct {
	Names       []NameComponent  `json:"names"`
	DateOfBirth string           `json:"date_of_birth"`
	Addresses   []RequestAddress `json:"addresses"`
}

// OutboundRequest is the wire request posted to the provider. Immutable
// once built; one OutboundRequest per verification attempt, with the same
// serialized body reused across retries of that attempt.
type OutboundRequest struct {
	Header    RequestHeader `json:"header"`
	Applicant Applicant     `json:"payload"`
}

// RequestBuilder converts internal identity records into the provider's
// wire shape, stamping each request with a fresh correlation id and a
// truncated-to-seconds UTC timestamp. Deliberately not idempotent: two
// builds for the same identity produce two distinct, traceable requests.
type RequestBuilder struct {
	tenantID    string
	requestType string
	now         func() time.Time
}

func NewRequestBuilder(tenantID, requestType string) *RequestBuilder {
	return &RequestBuilder{tenantID: tenantID, requestType: requestType, now: time.Now}
}

// Build maps an identity to an OutboundRequest. A nil identity is a
// precondition violation, not a recoverable failure.
func (b *RequestBuilder) Build(identity *model.Identity) (*OutboundRequest, error) {
	if identity == nil {
		return nil, ErrNilIdentity
	}

	now := b.now().UTC().Truncate(time.Second)

	names := []NameComponent{{Type: NameTypeGiven, Name: identity.FirstName}}
	if identity.MiddleNames != "" {
		names = append(names, NameComponent{Type: NameTypeGiven, Name: identity.MiddleNames})
	}
	names = append(names, NameComponent{Type: NameTypeFamily, Name: identity.Surname})

	addresses := make([]RequestAddress, 0, len(identity.Addresses))
	for _, addr := range identity.Addresses {
		addresses = append(addresses, RequestAddress{
			AddressType:    string(addr.Type(now)),
			BuildingNumber: addr.BuildingNumber,
			BuildingName:   addr.BuildingName,
			Street:         addr.Street,
			Locality:       addr.Locality,
			PostTown:       addr.PostTown,
			PostCode:       addr.PostCode,
			Country:        addr.Country,
		})
	}

	return &OutboundRequest{
		Header: RequestHeader{
			TenantID:          b.tenantID,
			RequestType:       b.requestType,
			ClientReferenceID: model.GenerateUUIDWithPrefix("chk"),
			MessageTime:       now.Format(time.RFC3339),
		},
		Applicant: Applicant{
			Names:       names,
			DateOfBirth: identity.DOB.Format("2006-01-02"),
			Addresses:   addresses,
		},
	}, nil
}
