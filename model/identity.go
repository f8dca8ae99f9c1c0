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
)

// AddressType classifies an address by its validity window.
type AddressType string

const (
	AddressTypeCurrent  AddressType = "CURRENT"
	AddressTypePrevious AddressType = "PREVIOUS"
	// AddressTypeUnknown means the validity dates do not resolve to a
	// current or previous address (e.g. a future-dated valid_from) and the
	// caller decides what to do with it.
	AddressTypeUnknown AddressType = ""
)

// Address is a single entry in an identity's address history. ValidFrom and
// ValidUntil bound the period the subject lived there; either may be absent.
type Address struct {
	BuildingNumber string     `json:"building_number"`
	BuildingName   string     `json:"building_name"`
	Street         string     `json:"street"`
	Locality       string     `json:"locality"`
	PostTown       string     `json:"post_town"`
	PostCode       string     `json:"post_code"`
	Country        string     `json:"country"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
}

// Type derives the address classification from its validity window. The
// derivation is pure and re-evaluated on every call against the supplied
// reference date (normally today).
//
// CURRENT: no valid_until, and valid_from absent or not after the reference.
// PREVIOUS: valid_until on or before the reference, and valid_from absent or
// strictly before both the reference and valid_until.
// Anything else is AddressTypeUnknown.
func (a *Address) Type(today time.Time) AddressType {
	if a.ValidUntil == nil {
		if a.ValidFrom == nil || !a.ValidFrom.After(today) {
			return AddressTypeCurrent
		}
		return AddressTypeUnknown
	}

	if a.ValidUntil.After(today) {
		return AddressTypeUnknown
	}
	if a.ValidFrom == nil {
		return AddressTypePrevious
	}
	if a.ValidFrom.Before(today) && a.ValidUntil.After(*a.ValidFrom) {
		return AddressTypePrevious
	}
	return AddressTypeUnknown
}

// Identity is the claimed identity submitted for a fraud check: name parts,
// date of birth and an ordered address history.
type Identity struct {
	FirstName   string                 `json:"first_name"`
	MiddleNames string                 `json:"middle_names,omitempty"`
	Surname     string                 `json:"surname"`
	DOB         time.Time              `json:"dob"`
	Addresses   []Address              `json:"addresses"`
	MetaData    map[string]interface{} `json:"meta_data,omitempty"`
}

func dobNotInFuture(value interface{}) error {
	dob, ok := value.(time.Time)
	if !ok {
		return errors.New("invalid date of birth")
	}
	if dob.After(time.Now()) {
		return errors.New("date of birth must not be in the future")
	}
	return nil
}

// Validate checks the domain invariants required before a verification can
// be attempted. Failures are caller-correctable and come back as a list of
// messages, never a panic.
func (i *Identity) Validate() []string {
	err := validation.ValidateStruct(i,
		validation.Field(&i.FirstName, validation.Required.Error("first name is required")),
		validation.Field(&i.Surname, validation.Required.Error("surname is required")),
		validation.Field(&i.DOB, validation.Required.Error("date of birth is required"), validation.By(dobNotInFuture)),
		validation.Field(&i.Addresses, validation.Required.Error("at least one address is required")),
	)
	if err == nil {
		return nil
	}

	var messages []string
	if verrs, ok := err.(validation.Errors); ok {
		for _, field := range []string{"first_name", "surname", "dob", "addresses"} {
			if ferr, found := verrs[field]; found {
				messages = append(messages, ferr.Error())
			}
		}
		return messages
	}
	return []string{err.Error()}
}
