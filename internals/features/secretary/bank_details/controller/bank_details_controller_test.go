package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIFSCPattern(t *testing.T) {
	valid := []string{"SBIN0001234", "HDFC0QWERTY", "ICIC0000001"}
	for _, code := range valid {
		assert.True(t, ifscPattern.MatchString(code), code)
	}

	invalid := []string{
		"SBIN1001234", // fifth character must be zero
		"SBI00001234", // only three bank letters
		"SBIN000123",  // branch too short
		"sbin0001234", // lowercase is normalized before matching
		"SBIN00012345",
	}
	for _, code := range invalid {
		assert.False(t, ifscPattern.MatchString(code), code)
	}
}
