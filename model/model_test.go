package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUUIDWithPrefix(t *testing.T) {
	id := GenerateUUIDWithPrefix("chk")
	assert.Contains(t, id, "chk_")

	other := GenerateUUIDWithPrefix("chk")
	assert.NotEqual(t, id, other)
}
