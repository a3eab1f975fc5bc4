package api

import "github.com/dmitrymomot/uadetect/pkg/useragent"

// Detection is the serialized classification of one user agent.
type Detection struct {
	UserAgent      string `json:"user_agent"`
	DeviceType     string `json:"device_type"`
	Browser        string `json:"browser,omitempty"`
	BrowserVersion string `json:"browser_version,omitempty"`
	OS             string `json:"os,omitempty"`
	OSVersion      string `json:"os_version,omitempty"`
	Bot            string `json:"bot,omitempty"`
	IsMobile       bool   `json:"is_mobile"`
	IsTablet       bool   `json:"is_tablet"`
	IsDesktop      bool   `json:"is_desktop"`
	IsBot          bool   `json:"is_bot"`
	Formatted      string `json:"formatted"`
	Description    string `json:"description"`
}

// NewDetection flattens ua. The description is localized through l when it
// is not nil.
func NewDetection(ua useragent.UserAgent, l useragent.Localizer, lang string) Detection {
	return Detection{
		UserAgent:      ua.String(),
		DeviceType:     ua.DeviceType().String(),
		Browser:        ua.BrowserName(),
		BrowserVersion: ua.BrowserVer(),
		OS:             ua.OS(),
		OSVersion:      ua.OSVersion(),
		Bot:            ua.BotName(),
		IsMobile:       ua.IsMobile(),
		IsTablet:       ua.IsTablet(),
		IsDesktop:      ua.IsDesktop(),
		IsBot:          ua.IsBot(),
		Formatted:      ua.Formatted(),
		Description:    ua.Describe(l, lang),
	}
}
