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
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestTranslateEmptyInput(t *testing.T) {
	translator := NewTranslator("tenant-1", map[string]string{"X": "A01"})

	out, err := translator.Translate([]string{})
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTranslateNilInputFailsFast(t *testing.T) {
	translator := NewTranslator("tenant-1", map[string]string{"X": "A01"})

	out, err := translator.Translate(nil)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrNilFraudCodes)
}

func TestTranslateDropsUnmappedCodes(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	translator := NewTranslator("tenant-1", map[string]string{"X": "A01"})

	out, err := translator.Translate([]string{"X", "Y"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A01"}, out)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Contains(t, entry.Message, "Y")
		assert.Contains(t, entry.Message, "tenant-1")
	}
}

func TestTranslatePreservesOrder(t *testing.T) {
	translator := NewTranslator("tenant-1", map[string]string{
		"FR01": "A02",
		"FR02": "A01",
		"FR03": "A05",
	})

	out, err := translator.Translate([]string{"FR03", "FR01", "FR02"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A05", "A02", "A01"}, out)
}

func TestTranslateDuplicatesKept(t *testing.T) {
	translator := NewTranslator("tenant-1", map[string]string{"FR01": "A02"})

	out, err := translator.Translate([]string{"FR01", "FR01"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A02", "A02"}, out)
}

func TestNewTranslatorNilTable(t *testing.T) {
	translator := NewTranslator("tenant-1", nil)

	out, err := translator.Translate([]string{"anything"})
	assert.NoError(t, err)
	assert.Empty(t, out)
}
