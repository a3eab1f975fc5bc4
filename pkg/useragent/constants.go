package useragent

// DeviceType is the category of device that made the request.
type DeviceType string

// Device types, listed in classification precedence order.
const (
	// DeviceTypeBot identifies automated crawlers, bots, and spiders
	DeviceTypeBot DeviceType = "bot"

	// DeviceTypeTablet identifies tablet devices (iPad, Android tablets, etc.)
	DeviceTypeTablet DeviceType = "tablet"

	// DeviceTypeMobile identifies smartphones and feature phones
	DeviceTypeMobile DeviceType = "mobile"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop DeviceType = "desktop"

	// DeviceTypeUnknown is used when the device type cannot be determined
	DeviceTypeUnknown DeviceType = "unknown"
)

// String returns the device type as a plain string.
func (d DeviceType) String() string { return string(d) }

// Browser labels produced by DetectBrowser.
const (
	BrowserElectron       = "Electron"
	BrowserAndroidWebView = "Android WebView"
	BrowserIOSWebView     = "iOS WebView"
	BrowserChromeIOS      = "Chrome iOS"
	BrowserFirefoxIOS     = "Firefox iOS"
	BrowserDuckDuckGoIOS  = "DuckDuckGo iOS"
	BrowserSafariMobile   = "Safari Mobile"
	BrowserSamsung        = "Samsung Browser"
	BrowserUC             = "UC Browser"
	BrowserEdge           = "Edge"
	BrowserOpera          = "Opera"
	BrowserBrave          = "Brave"
	BrowserVivaldi        = "Vivaldi"
	BrowserChromeOS       = "Chrome OS"
	BrowserChromeMobile   = "Chrome Mobile"
	BrowserChrome         = "Chrome"
	BrowserFirefox        = "Firefox"
	BrowserSafari         = "Safari"
	BrowserIE             = "Internet Explorer"
)

// Operating system labels produced by DetectOS.
const (
	OSiOS       = "iOS"
	OSAndroid   = "Android"
	OSWindows11 = "Windows 11"
	OSWindows10 = "Windows 10"
	OSWindows   = "Windows"
	OSMacOS     = "macOS"
	OSLinux     = "Linux"
	OSChromeOS  = "Chrome OS"
	OSUbuntu    = "Ubuntu"
)

// Fallback labels used by Formatted when an axis is not detected.
const (
	UnknownBrowser = "Unknown Browser"
	UnknownOS      = "Unknown OS"
)
