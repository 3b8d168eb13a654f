// Package device derives a human readable name and a stable fingerprint
// from a User-Agent string. Logins are audit-logged with both so users can
// recognize their own sessions.
package device

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent renders a display name like "Chrome on Mac OS X".
func ParseUserAgent(rawUA string) string {
	if rawUA == "" {
		return "Unknown Device"
	}
	ua := useragent.New(rawUA)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}
	osName := ua.OSInfo().Name
	if osName == "" {
		osName = ua.Platform()
	}
	if osName == "" {
		osName = "Unknown OS"
	}
	return strings.TrimSpace(fmt.Sprintf("%s on %s", browser, osName))
}

// Service computes device fingerprints. A disabled service produces empty
// fingerprints so callers need no conditional.
type Service struct {
	enabled bool
}

func NewService(enabled bool) *Service {
	return &Service{enabled: enabled}
}

// ComputeFingerprint hashes the browser family, its major version and the
// OS. Minor version bumps keep the fingerprint stable; major ones change it.
func (s *Service) ComputeFingerprint(rawUA string) string {
	if !s.enabled {
		return ""
	}
	ua := useragent.New(rawUA)
	browser, version := ua.Browser()
	major, _, _ := strings.Cut(version, ".")
	osName := ua.OSInfo().Name

	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s", browser, major, osName))
	return hex.EncodeToString(sum[:])
}
