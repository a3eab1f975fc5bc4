package useragent

import (
	"strings"
)

// keywordList is an ordered set of lower-case substrings.
type keywordList []string

func (k keywordList) contains(lowerUA string) bool {
	for _, keyword := range k {
		if strings.Contains(lowerUA, keyword) {
			return true
		}
	}
	return false
}

var (
	tabletKeywords = keywordList{"tablet", "playbook", "kindle", "silk", "surface"}
	mobileKeywords = keywordList{
		"mobile", "iphone", "ipod", "android", "blackberry",
		"windows phone", "webos", "opera mini", "opera mobi", "iemobile",
	}
)

// IsTablet reports whether ua belongs to a tablet.
// Android tablets omit the "Mobile" token that Android phones send.
func IsTablet(ua string) bool {
	if ua == "" {
		return false
	}
	return isTablet(strings.ToLower(ua))
}

func isTablet(lowerUA string) bool {
	if strings.Contains(lowerUA, "ipad") {
		return true
	}
	if strings.Contains(lowerUA, "android") && !strings.Contains(lowerUA, "mobile") {
		return true
	}
	return tabletKeywords.contains(lowerUA)
}

// IsMobile reports whether ua belongs to a phone. Tablets are never mobile.
func IsMobile(ua string) bool {
	if ua == "" {
		return false
	}
	return isMobile(strings.ToLower(ua))
}

func isMobile(lowerUA string) bool {
	if isTablet(lowerUA) {
		return false
	}
	return mobileKeywords.contains(lowerUA)
}

// IsBot reports whether ua contains any known crawler or automation signature.
func IsBot(ua string) bool {
	return containsAnyBotSignature(ua)
}

// DetectBot returns the product token of the bot found leftmost in ua.
func DetectBot(ua string) (string, bool) {
	return findBotToken(ua)
}

// IsDesktop reports whether ua is neither mobile, tablet nor bot.
// Empty input is not a desktop.
func IsDesktop(ua string) bool {
	if ua == "" {
		return false
	}
	lowerUA := strings.ToLower(ua)
	return !isMobile(lowerUA) && !isTablet(lowerUA) && !containsAnyBotSignature(ua)
}

// DetectDeviceType classifies ua with bot taking precedence over tablet,
// tablet over mobile and mobile over desktop.
func DetectDeviceType(ua string) DeviceType {
	if ua == "" {
		return DeviceTypeUnknown
	}
	lowerUA := strings.ToLower(ua)

	switch {
	case containsAnyBotSignature(ua):
		return DeviceTypeBot
	case isTablet(lowerUA):
		return DeviceTypeTablet
	case isMobile(lowerUA):
		return DeviceTypeMobile
	case IsDesktop(ua):
		return DeviceTypeDesktop
	}
	return DeviceTypeUnknown
}
