package user

import (
	"os"
	"os/user"
)

// lookupCurrent is replaced in tests
var lookupCurrent = user.Current

// GetCurrentUsername returns the name recorded as a snapshot's author.
// FETE_USER wins, then the OS account, then $USER, then "unknown".
func GetCurrentUsername() string {
	if name := os.Getenv("FETE_USER"); name != "" {
		return name
	}
	if u, err := lookupCurrent(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
