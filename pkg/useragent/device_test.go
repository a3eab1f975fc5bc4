package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/uadetect/pkg/useragent"

	"github.com/stretchr/testify/assert"
)

func TestDetectDeviceType(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ua       string
		expected useragent.DeviceType
	}{
		{name: "Desktop Chrome", ua: chromeWindowsUA, expected: useragent.DeviceTypeDesktop},
		{name: "Desktop Safari", ua: safariMacUA, expected: useragent.DeviceTypeDesktop},
		{name: "Chrome OS", ua: chromeOSUA, expected: useragent.DeviceTypeDesktop},
		{name: "Electron app", ua: electronUA, expected: useragent.DeviceTypeDesktop},
		{name: "Unrecognized string", ua: "some completely unknown user agent", expected: useragent.DeviceTypeDesktop},
		{name: "iPhone", ua: safariIPhoneUA, expected: useragent.DeviceTypeMobile},
		{name: "Android phone", ua: chromeAndroidUA, expected: useragent.DeviceTypeMobile},
		{name: "BlackBerry", ua: blackBerryUA, expected: useragent.DeviceTypeMobile},
		{name: "webOS", ua: webOSUA, expected: useragent.DeviceTypeMobile},
		{name: "iPad", ua: safariIPadUA, expected: useragent.DeviceTypeTablet},
		{name: "Android tablet", ua: chromeTabletUA, expected: useragent.DeviceTypeTablet},
		{name: "Kindle", ua: kindleUA, expected: useragent.DeviceTypeTablet},
		{name: "Surface", ua: "Mozilla/5.0 (Windows NT 10.0; Surface Pro)", expected: useragent.DeviceTypeTablet},
		{name: "Googlebot", ua: googlebotUA, expected: useragent.DeviceTypeBot},
		{name: "Googlebot smartphone", ua: googlebotMobileUA, expected: useragent.DeviceTypeBot},
		{name: "Bingbot", ua: bingbotUA, expected: useragent.DeviceTypeBot},
		{name: "Facebook crawler", ua: facebookUA, expected: useragent.DeviceTypeBot},
		{name: "curl", ua: curlUA, expected: useragent.DeviceTypeBot},
		{name: "Headless Chrome", ua: headlessUA, expected: useragent.DeviceTypeBot},
		{name: "Empty", ua: "", expected: useragent.DeviceTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, useragent.DetectDeviceType(tc.ua))
		})
	}
}

func TestTabletDetection(t *testing.T) {
	t.Parallel()

	t.Run("iPad in any case is a tablet and never mobile", func(t *testing.T) {
		for _, ua := range []string{safariIPadUA, "IPAD", "ipad mobile", "Mozilla/5.0 (iPad; iPhone OS)"} {
			assert.True(t, useragent.IsTablet(ua), ua)
			assert.False(t, useragent.IsMobile(ua), ua)
		}
	})

	t.Run("Android without Mobile is a tablet", func(t *testing.T) {
		for _, ua := range []string{chromeTabletUA, "android", "Linux; ANDROID 12"} {
			assert.True(t, useragent.IsTablet(ua), ua)
			assert.False(t, useragent.IsMobile(ua), ua)
		}
	})

	t.Run("Android with Mobile is a phone", func(t *testing.T) {
		for _, ua := range []string{chromeAndroidUA, samsungBrowserUA, "Android Mobile"} {
			assert.False(t, useragent.IsTablet(ua), ua)
			assert.True(t, useragent.IsMobile(ua), ua)
		}
	})

	t.Run("tablet keywords", func(t *testing.T) {
		for _, keyword := range []string{"Tablet", "PlayBook", "Kindle", "Silk", "Surface"} {
			ua := "Mozilla/5.0 (" + keyword + ")"
			assert.True(t, useragent.IsTablet(ua), ua)
			assert.True(t, useragent.IsTablet(strings.ToUpper(ua)), ua)
		}
	})
}

func TestMobileKeywords(t *testing.T) {
	t.Parallel()
	keywords := []string{
		"Mobile", "iPhone", "iPod", "BlackBerry", "Windows Phone",
		"webOS", "Opera Mini", "Opera Mobi", "IEMobile",
	}
	for _, keyword := range keywords {
		ua := "Mozilla/5.0 (" + keyword + ")"
		assert.True(t, useragent.IsMobile(ua), ua)
		assert.False(t, useragent.IsDesktop(ua), ua)
	}
}

func TestBotDetection(t *testing.T) {
	t.Parallel()

	t.Run("bot wins over mobile and tablet tokens", func(t *testing.T) {
		assert.True(t, useragent.IsMobile(googlebotMobileUA))
		assert.True(t, useragent.IsBot(googlebotMobileUA))
		assert.Equal(t, useragent.DeviceTypeBot, useragent.DetectDeviceType(googlebotMobileUA))

		tabletBot := "Mozilla/5.0 (iPad) AdsBot-Google-Mobile"
		assert.True(t, useragent.IsTablet(tabletBot))
		assert.Equal(t, useragent.DeviceTypeBot, useragent.DetectDeviceType(tabletBot))
	})

	t.Run("bot signatures ignore case", func(t *testing.T) {
		assert.True(t, useragent.IsBot("SomeSPIDER/1.0"))
		assert.True(t, useragent.IsBot("python-requests/2.31.0"))
		assert.True(t, useragent.IsBot("WhatsApp/2.23.20.0"))
	})

	t.Run("browsers are not bots", func(t *testing.T) {
		for _, ua := range []string{chromeWindowsUA, safariIPhoneUA, duckDuckGoIOSUA, electronUA} {
			assert.False(t, useragent.IsBot(ua), ua)
		}
	})
}

func TestDetectBot(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "Googlebot", ua: googlebotUA, expected: "Googlebot"},
		{name: "Bingbot", ua: bingbotUA, expected: "bingbot"},
		{name: "Facebook", ua: facebookUA, expected: "facebookexternalhit"},
		{name: "curl", ua: curlUA, expected: "curl"},
		{name: "Headless Chrome", ua: headlessUA, expected: "HeadlessChrome"},
		{name: "leftmost signature wins over table order", ua: "python-requests/2.31 spider", expected: "python-requests"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			name, ok := useragent.DetectBot(tc.ua)
			assert.True(t, ok)
			assert.Equal(t, tc.expected, name)
		})
	}

	name, ok := useragent.DetectBot(chromeWindowsUA)
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestDevicePredicateInvariants(t *testing.T) {
	t.Parallel()
	valid := map[useragent.DeviceType]bool{
		useragent.DeviceTypeMobile:  true,
		useragent.DeviceTypeTablet:  true,
		useragent.DeviceTypeDesktop: true,
		useragent.DeviceTypeBot:     true,
		useragent.DeviceTypeUnknown: true,
	}

	for _, ua := range corpus {
		mobile := useragent.IsMobile(ua)
		tablet := useragent.IsTablet(ua)
		bot := useragent.IsBot(ua)
		desktop := useragent.IsDesktop(ua)
		deviceType := useragent.DetectDeviceType(ua)

		assert.Equal(t, !mobile && !tablet && !bot, desktop, ua)
		assert.False(t, mobile && tablet, ua)
		assert.True(t, valid[deviceType], ua)
		if bot {
			assert.Equal(t, useragent.DeviceTypeBot, deviceType, ua)
		}
		assert.True(t, useragent.IsDeviceType(string(deviceType), ua), ua)
	}
}

func TestEmptyInput(t *testing.T) {
	t.Parallel()

	assert.False(t, useragent.IsMobile(""))
	assert.False(t, useragent.IsTablet(""))
	assert.False(t, useragent.IsDesktop(""))
	assert.False(t, useragent.IsBot(""))
	assert.Equal(t, useragent.DeviceTypeUnknown, useragent.DetectDeviceType(""))
	assert.False(t, useragent.IsDeviceType("unknown", ""))

	_, ok := useragent.DetectBot("")
	assert.False(t, ok)
}
