package utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGravatarURL(t *testing.T) {
	url := GetGravatarURL("laura@school.test", 120)
	assert.Contains(t, url, "https://www.gravatar.com/avatar/")
	assert.Contains(t, url, "s=120")

	// Address is normalized before hashing.
	assert.Equal(t, GetGravatarURL("laura@school.test", 120), GetGravatarURL("  LAURA@School.Test ", 120))

	// Non-positive sizes fall back to the default.
	assert.Contains(t, GetGravatarURL("laura@school.test", 0), fmt.Sprintf("s=%d", DefaultAvatarSize))

	// Unknown addresses resolve to the placeholder avatar.
	assert.Contains(t, GetGravatarURL("laura@school.test", 0), "d=mp")
}
