package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceKindValid(t *testing.T) {
	for _, k := range KnownResourceKinds {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, ResourceKind("kafka").Valid())
	assert.False(t, ResourceKind("").Valid())
}

func TestResourceProperty(t *testing.T) {
	res := &Resource{Properties: map[string]string{PropUser: "user0"}}
	assert.Equal(t, "user0", res.Property(PropUser))
	assert.Equal(t, "", res.Property(PropChecksum))

	var empty Resource
	assert.Equal(t, "", empty.Property(PropUser))
}

func TestWrongResourceKindErrorMessage(t *testing.T) {
	err := &WrongResourceKindError{Name: "jdbc0", Kind: ResourceKindSpark}
	assert.Contains(t, err.Error(), "jdbc0")
	assert.Contains(t, err.Error(), "spark")
	assert.Contains(t, err.Error(), "jdbc")
}
