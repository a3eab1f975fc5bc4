package useragent

import (
	"regexp"
	"strings"
)

// Signature is a single detection rule of an ordered table.
// A signature matches when Pattern matches the input and Exclude, if set, does not.
// Exclude carries the tokens a more specific signature earlier in the table
// already claims, so a generic rule never shadows them.
type Signature struct {
	Label   string
	Pattern *regexp.Regexp
	Exclude *regexp.Regexp
}

// Match reports whether the signature applies to ua.
func (s Signature) Match(ua string) bool {
	if !s.Pattern.MatchString(ua) {
		return false
	}
	return s.Exclude == nil || !s.Exclude.MatchString(ua)
}

// version returns the first non-empty capture group of Pattern.
func (s Signature) version(ua string) string {
	matches := s.Pattern.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return ""
	}
	for _, m := range matches[1:] {
		if m == "" {
			continue
		}
		// Limit version length to avoid excessively long versions
		if len(m) > maxVersionLength {
			m = m[:maxVersionLength]
		}
		return strings.ReplaceAll(m, "_", ".")
	}
	return ""
}

const maxVersionLength = 20

func signature(label, pattern, exclude string) Signature {
	s := Signature{
		Label:   label,
		Pattern: regexp.MustCompile(`(?i)` + pattern),
	}
	if exclude != "" {
		s.Exclude = regexp.MustCompile(`(?i)` + exclude)
	}
	return s
}

// Browser signatures, most specific first. Reordering entries changes results:
// Edge, Opera and friends all carry a Chrome token, and every iOS browser
// carries a Safari token.
var browserSignatures = []Signature{
	// Embedded application shells
	signature(BrowserElectron, `Electron/([\d.]+)`, ""),

	// Mobile WebViews
	signature(BrowserAndroidWebView, `Android.*;\s?wv\).*?Chrome/([\d.]+)`, ""),
	signature(BrowserIOSWebView, `(?:iPhone|iPad|iPod).*AppleWebKit/([\d.]+)`, `Safari/`),

	// Mobile browsers with their own product token
	signature(BrowserChromeIOS, `CriOS/([\d.]+)`, ""),
	signature(BrowserFirefoxIOS, `FxiOS/([\d.]+)`, ""),
	signature(BrowserDuckDuckGoIOS, `(?:iPhone|iPad|iPod).*(?:DuckDuckGo|Ddg)/([\d.]+)`, ""),
	// Also matches the AOSP stock browser ("Version/4.0 Mobile Safari") on Android.
	signature(BrowserSafariMobile, `Version/([\d.]+).*Mobile.*Safari/`, `CriOS|FxiOS|EdgiOS|OPiOS|OPT/|DuckDuckGo|Ddg/|Chrome|Chromium|SamsungBrowser|UC ?Browser|UCWEB`),
	signature(BrowserSamsung, `SamsungBrowser/([\d.]+)`, ""),
	signature(BrowserUC, `UC ?Browser/([\d.]+)|UCWEB`, ""),

	// Desktop browsers with unambiguous tokens
	signature(BrowserEdge, `Edg(?:e|A|iOS)?/([\d.]+)`, ""),
	signature(BrowserOpera, `(?:OPR|OPiOS|OPT|Opera(?: Mini| Mobi)?)/([\d.]+)`, ""),
	signature(BrowserBrave, `\bBrave\b(?:/([\d.]+))?`, ""),
	signature(BrowserVivaldi, `Vivaldi/([\d.]+)`, ""),
	signature(BrowserChromeOS, `CrOS .*?Chrome/([\d.]+)`, ""),

	// Generic engines
	signature(BrowserChromeMobile, `(?:Chrome|Chromium)/([\d.]+).*Mobile`, chromeForks),
	signature(BrowserChrome, `(?:Chrome|Chromium)/([\d.]+)`, chromeForks),
	signature(BrowserFirefox, `Firefox/([\d.]+)`, `FxiOS|SeaMonkey`),
	signature(BrowserSafari, `Version/([\d.]+).*Safari/`, `Chrome|Chromium|CriOS|FxiOS`),

	// Legacy
	signature(BrowserIE, `MSIE ([\d.]+)|Trident/.*rv:([\d.]+)`, ""),
}

const chromeForks = `Edg(?:e|A|iOS)?/|OPR/|Opera|Brave|Vivaldi|SamsungBrowser`

// OS signatures, most specific first.
var osSignatures = []Signature{
	signature(OSiOS, `(?:iPhone|iPad|iPod)(?:.*?OS ([\d_]+))?`, ""),
	signature(OSAndroid, `Android(?:[ /]([\d.]+))?`, ""),
	signature(OSWindows11, `Windows NT 11\.0|Windows 11|Win11`, ""),
	signature(OSWindows10, `Windows NT 10\.0`, ""),
	signature(OSWindows, `Windows NT ([\d.]+)`, ""),
	signature(OSMacOS, `Macintosh(?:.*?Mac OS X ([\d_.]+))?|Mac OS X ([\d_.]+)|macOS`, ""),
	signature(OSLinux, `Linux`, `Android`),
	signature(OSChromeOS, `CrOS`, ""),
	signature(OSUbuntu, `Ubuntu`, ""),
}

// Bot signatures are plain substrings. Only presence matters, so they are
// compiled into a single alternation instead of being scanned one by one.
var botSignatures = []string{
	"bot",
	"crawl",
	"spider",
	"slurp",
	"mediapartners-google",
	"facebookexternalhit",
	"facebookcatalog",
	"ia_archiver",
	"archiver",
	"bingpreview",
	"google-inspectiontool",
	"apis-google",
	"feedfetcher",
	"headlesschrome",
	"phantomjs",
	"lighthouse",
	"pagespeed",
	"gtmetrix",
	"pingdom",
	"python-requests",
	"python-urllib",
	"curl/",
	"wget/",
	"go-http-client",
	"libwww-perl",
	"httpclient",
	"scrapy",
	"whatsapp",
	"embedly",
	"skypeuripreview",
	"vkshare",
	"w3c_validator",
}

var botPattern = compileAlternation(botSignatures)

func compileAlternation(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}
