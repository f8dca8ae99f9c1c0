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
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/truna-id/fraudcheck/model"
)

const dateLayout = "2006-01-02"

// VerifyAddress is the API shape of one address history entry. Dates come
// in as YYYY-MM-DD strings.
type VerifyAddress struct {
	BuildingNumber string `json:"building_number"`
	BuildingName   string `json:"building_name"`
	Street         string `json:"street"`
	Locality       string `json:"locality"`
	PostTown       string `json:"post_town"`
	PostCode       string `json:"post_code"`
	Country        string `json:"country"`
	ValidFrom      string `json:"valid_from"`
	ValidUntil     string `json:"valid_until"`
}

// VerifyIdentityRequest is the POST /verifications body.
type VerifyIdentityRequest struct {
	FirstName   string          `json:"first_name"`
	MiddleNames string          `json:"middle_names"`
	Surname     string          `json:"surname"`
	DOB         string          `json:"dob"`
	Addresses   []VerifyAddress `json:"addresses"`
}

func validDateFormat(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return errors.New("please format dates as 'YYYY-MM-DD' (e.g., 1965-07-08)")
	}
	return nil
}

// ValidateVerifyIdentityRequest checks the request is well-formed enough to
// convert; domain invariants are re-checked by the verification pipeline.
func (r *VerifyIdentityRequest) ValidateVerifyIdentityRequest() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.Surname, validation.Required),
		validation.Field(&r.DOB, validation.Required, validation.By(validDateFormat)),
		validation.Field(&r.Addresses, validation.Required),
	)
}

// ToIdentity converts the request into the domain identity. Call only
// after validation; a malformed date here is a defect.
func (r *VerifyIdentityRequest) ToIdentity() (*model.Identity, error) {
	dob, err := time.Parse(dateLayout, r.DOB)
	if err != nil {
		return nil, err
	}

	addresses := make([]model.Address, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addr := model.Address{
			BuildingNumber: a.BuildingNumber,
			BuildingName:   a.BuildingName,
			Street:         a.Street,
			Locality:       a.Locality,
			PostTown:       a.PostTown,
			PostCode:       a.PostCode,
			Country:        a.Country,
		}
		if a.ValidFrom != "" {
			from, err := time.Parse(dateLayout, a.ValidFrom)
			if err != nil {
				return nil, err
			}
			addr.ValidFrom = &from
		}
		if a.ValidUntil != "" {
			until, err := time.Parse(dateLayout, a.ValidUntil)
			if err != nil {
				return nil, err
			}
			addr.ValidUntil = &until
		}
		addresses = append(addresses, addr)
	}

	return &model.Identity{
		FirstName:   r.FirstName,
		MiddleNames: r.MiddleNames,
		Surname:     r.Surname,
		DOB:         dob,
		Addresses:   addresses,
	}, nil
}
