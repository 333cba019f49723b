package utils

import (
	"fmt"
	"net/url"
)

// AvatarURL builds the default profile picture for an account from its
// display name.
func AvatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=667eea&color=fff", url.QueryEscape(name))
}
