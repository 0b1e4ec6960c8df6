package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// DefaultAvatarSize is the pixel size used for profile avatars when the
// caller does not ask for a specific one.
const DefaultAvatarSize = 200

// GetGravatarURL builds the avatar URL shown for accounts that have not
// uploaded a profile image. The address is normalized (trimmed, lowercased)
// before hashing so the same account always maps to the same avatar, and the
// "mystery person" placeholder is requested for addresses Gravatar does not
// know.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = DefaultAvatarSize
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d&d=mp", hex.EncodeToString(sum[:]), size)
}
