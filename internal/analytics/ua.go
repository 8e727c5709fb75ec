// Package analytics derives the grouping fields stored with each visitor
// event from the raw user-agent and referrer strings, so aggregation
// works even for clients that send only the raw values.
package analytics

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	SourceDirect   = "Direct"
	DeviceDesktop  = "Desktop"
	DeviceTablet   = "Tablet"
	DeviceMobile   = "Mobile"
	BrowserUnknown = "Other"
)

var (
	tabletRe = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	mobileRe = regexp.MustCompile(`(?i)mobile|android|iphone|ipod|iemobile|blackberry|kindle|webos|hpwos|opera m(obi|ini)`)
)

// BrowserName matches known vendor tokens. Order matters: Chrome embeds
// "Safari" in its UA, and Edge embeds both.
func BrowserName(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Edg"):
		return "Edge"
	case strings.Contains(userAgent, "OPR"), strings.Contains(userAgent, "Opera"):
		return "Opera"
	case strings.Contains(userAgent, "Chrome"):
		return "Chrome"
	case strings.Contains(userAgent, "Safari"):
		return "Safari"
	}
	return BrowserUnknown
}

// TrafficSource classifies the referrer against known platforms, falls
// back to the referrer's host, and finally to "Direct" for none.
func TrafficSource(referrer string) string {
	if referrer == "" {
		return SourceDirect
	}

	ref := strings.ToLower(referrer)
	switch {
	case strings.Contains(ref, "google"):
		return "Google"
	case strings.Contains(ref, "facebook"):
		return "Facebook"
	case strings.Contains(ref, "instagram"):
		return "Instagram"
	case strings.Contains(ref, "twitter"), strings.Contains(ref, "t.co"):
		return "Twitter"
	case strings.Contains(ref, "linkedin"):
		return "LinkedIn"
	case strings.Contains(ref, "youtube"):
		return "YouTube"
	case strings.Contains(ref, "bing"):
		return "Bing"
	}

	if u, err := url.Parse(referrer); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	return BrowserUnknown
}

// DeviceType checks tablet patterns before mobile ones: an Android
// tablet UA contains "Android" without "Mobile".
func DeviceType(userAgent string) string {
	if tabletRe.MatchString(userAgent) {
		return DeviceTablet
	}

	lower := strings.ToLower(userAgent)
	if strings.Contains(lower, "android") && !strings.Contains(lower, "mobi") {
		return DeviceTablet
	}

	if mobileRe.MatchString(userAgent) {
		return DeviceMobile
	}
	return DeviceDesktop
}
