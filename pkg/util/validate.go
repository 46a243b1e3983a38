package util

import (
	"errors"
	"regexp"
)

var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// IsVideoID validates identifiers used as storage keys and object names.
func IsVideoID(id string) error {
	if !videoIDRe.MatchString(id) {
		return errors.New("invalid video id")
	}
	return nil
}
