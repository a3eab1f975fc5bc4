package useragent

import (
	"log/slog"
	"strings"
)

// UserAgent contains the classification of a user agent string
type UserAgent struct {
	// Raw user agent string
	userAgent string

	deviceType DeviceType
	bot        string

	browser Browser
	os      OS
}

// Source provides the user agent to classify when the caller does not pass one,
// typically the sanitized header of the current request.
type Source func() string

// Parse classifies ua on every axis at once. Empty input yields an unknown
// device with no browser and no OS.
func Parse(ua string) UserAgent {
	result := UserAgent{
		userAgent:  ua,
		deviceType: DetectDeviceType(ua),
	}
	result.browser, _ = ParseBrowser(ua)
	result.os, _ = ParseOS(ua)
	if result.deviceType == DeviceTypeBot {
		result.bot, _ = DetectBot(ua)
	}
	return result
}

// ParseFrom classifies the string returned by src. A nil source is treated as empty input.
func ParseFrom(src Source) UserAgent {
	if src == nil {
		return Parse("")
	}
	return Parse(src())
}

// String returns the raw user agent string
func (ua UserAgent) String() string { return ua.userAgent }

// DeviceType returns the device category
func (ua UserAgent) DeviceType() DeviceType { return ua.deviceType }

// BrowserName returns the browser label, or an empty string when not detected
func (ua UserAgent) BrowserName() string { return ua.browser.Name }

// BrowserVer returns the browser version
func (ua UserAgent) BrowserVer() string { return ua.browser.Version }

// BrowserInfo returns the browser name and version
func (ua UserAgent) BrowserInfo() Browser { return ua.browser }

// OS returns the operating system label, or an empty string when not detected
func (ua UserAgent) OS() string { return ua.os.Name }

// OSVersion returns the operating system version
func (ua UserAgent) OSVersion() string { return ua.os.Version }

// OSInfo returns the operating system name and version
func (ua UserAgent) OSInfo() OS { return ua.os }

// BotName returns the bot product token for bots, otherwise an empty string
func (ua UserAgent) BotName() string { return ua.bot }

// IsBot reports whether the user agent was classified as a crawler or automated client.
func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceTypeBot }

// IsTablet reports whether the raw user agent looks like a tablet.
// A bot spoofing a tablet still returns true; DeviceType applies precedence.
func (ua UserAgent) IsTablet() bool { return IsTablet(ua.userAgent) }

// IsMobile reports whether the raw user agent looks like a phone. Tablets are never mobile.
func (ua UserAgent) IsMobile() bool { return IsMobile(ua.userAgent) }

// IsDesktop reports whether the raw user agent is neither mobile, tablet nor bot.
func (ua UserAgent) IsDesktop() bool { return IsDesktop(ua.userAgent) }

// IsUnknown returns true if nothing could be classified
func (ua UserAgent) IsUnknown() bool {
	return ua.deviceType == DeviceTypeUnknown || ua.deviceType == ""
}

// Formatted returns "<Browser> on <OS>".
func (ua UserAgent) Formatted() string {
	return formatted(ua.browser.Name, ua.os.Name)
}

// IsBrowser compares the detected browser with name, ignoring case.
func (ua UserAgent) IsBrowser(name string) bool { return equalLabel(ua.browser.Name, name) }

// IsOS compares the detected operating system with name, ignoring case.
func (ua UserAgent) IsOS(name string) bool { return equalLabel(ua.os.Name, name) }

// IsDeviceType compares the device type with t, ignoring case.
func (ua UserAgent) IsDeviceType(t string) bool {
	if ua.userAgent == "" {
		return false
	}
	return equalLabel(string(ua.deviceType), t)
}

// LogValue implements slog.LogValuer.
func (ua UserAgent) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("device", string(ua.deviceType))}
	if ua.browser.Name != "" {
		attrs = append(attrs, slog.String("browser", ua.browser.Name))
	}
	if ua.os.Name != "" {
		attrs = append(attrs, slog.String("os", ua.os.Name))
	}
	if ua.bot != "" {
		attrs = append(attrs, slog.String("bot", ua.bot))
	}
	return slog.GroupValue(attrs...)
}

// Formatted returns "<Browser> on <OS>" for ua, using UnknownBrowser and
// UnknownOS for the axes that are not detected.
func Formatted(ua string) string {
	browser, _ := DetectBrowser(ua)
	os, _ := DetectOS(ua)
	return formatted(browser, os)
}

func formatted(browser, os string) string {
	if browser == "" {
		browser = UnknownBrowser
	}
	if os == "" {
		os = UnknownOS
	}
	return browser + " on " + os
}

// IsBrowser reports whether the browser detected in ua equals name, ignoring case.
func IsBrowser(name, ua string) bool {
	browser, ok := DetectBrowser(ua)
	return ok && equalLabel(browser, name)
}

// IsOS reports whether the operating system detected in ua equals name, ignoring case.
func IsOS(name, ua string) bool {
	os, ok := DetectOS(ua)
	return ok && equalLabel(os, name)
}

// IsDeviceType reports whether the device type of ua equals t, ignoring case.
// Empty input never matches, not even "unknown".
func IsDeviceType(t, ua string) bool {
	if ua == "" {
		return false
	}
	return equalLabel(string(DetectDeviceType(ua)), t)
}

func equalLabel(detected, name string) bool {
	return detected != "" && strings.EqualFold(detected, name)
}
