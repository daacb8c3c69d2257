package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMalaysianPhone(t *testing.T) {
	for _, ok := range []string{"+60123456789", "0123456789", "012-3456789", "60198765432"} {
		assert.True(t, ValidMalaysianPhone(ok), ok)
	}
	for _, bad := range []string{"", "12345", "+441234567890", "015-1234567890"} {
		assert.False(t, ValidMalaysianPhone(bad), bad)
	}
}

func TestValidMalaysianPostcode(t *testing.T) {
	assert.True(t, ValidMalaysianPostcode("50480"))
	assert.True(t, ValidMalaysianPostcode("01000"))
	assert.False(t, ValidMalaysianPostcode("5048"))
	assert.False(t, ValidMalaysianPostcode("504800"))
	assert.False(t, ValidMalaysianPostcode("ABCDE"))
}

func TestValidJakimZone(t *testing.T) {
	for _, ok := range []string{"WLY01", "SGR01", "JHR02", "PNG01"} {
		assert.True(t, ValidJakimZone(ok), ok)
	}
	for _, bad := range []string{"", "wly01", "WLY1", "WL01", "WLY012"} {
		assert.False(t, ValidJakimZone(bad), bad)
	}
}
