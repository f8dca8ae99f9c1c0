package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignIsDeterministic(t *testing.T) {
	s, err := New("test-key")
	assert.NoError(t, err)

	first := s.Sign([]byte(`{"a":1}`))
	second := s.Sign([]byte(`{"a":1}`))
	assert.Equal(t, first, second)
	assert.Len(t, first, 64) // hex of a sha256 digest
}

func TestSignKnownVector(t *testing.T) {
	// RFC 4231 test case 2
	s, err := New("Jefe")
	assert.NoError(t, err)
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		s.Sign([]byte("what do ya want for nothing?")))
}

func TestSignDiffersByKey(t *testing.T) {
	a, _ := New("key-a")
	b, _ := New("key-b")
	assert.NotEqual(t, a.Sign([]byte("body")), b.Sign([]byte("body")))
}

func TestNewRejectsEmptyKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}
