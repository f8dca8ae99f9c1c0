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

import "fmt"

// ValidateResponse checks that an informational reply has the structure the
// mapper needs to traverse it safely. It returns a list of findings; an
// empty list means the payload is usable. A failed validation is a failed
// check, never a panic, and the findings are logged for diagnosis only.
func ValidateResponse(raw *RawResponse) []string {
	var findings []string

	if raw.Payload == nil {
		return []string{"response payload is missing"}
	}
	if len(raw.Payload.DecisionElements) == 0 {
		return []string{"response payload contains no decision elements"}
	}
	for i, element := range raw.Payload.DecisionElements {
		if element.Rules == nil {
			findings = append(findings, fmt.Sprintf("decision element %d is missing its rules section", i))
		}
	}
	return findings
}
