package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewsHasMedia(t *testing.T) {
	assert.False(t, (&News{MediaKind: MEDIA_NONE}).HasMedia())
	assert.True(t, (&News{MediaKind: MEDIA_IMAGE}).HasMedia())
	assert.True(t, (&News{MediaKind: MEDIA_VIDEO}).HasMedia())
	assert.False(t, (&News{}).HasMedia())
}

func TestNewsIsExpired(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, (&News{ExpiresAt: now.Add(time.Minute)}).IsExpired(now))
	assert.True(t, (&News{ExpiresAt: now.Add(-time.Minute)}).IsExpired(now))
	// Exactly at expiry counts as expired.
	assert.True(t, (&News{ExpiresAt: now}).IsExpired(now))
}
