package useragent

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// DetectBrowser returns the label of the first browser signature matching ua.
func DetectBrowser(ua string) (string, bool) {
	s, ok := findFirstMatch(browserSignatures, ua)
	return s.Label, ok
}

// ParseBrowser is DetectBrowser plus the version captured by the matching signature.
// Version is empty when the signature carries none (e.g. Brave without a Brave/ token).
func ParseBrowser(ua string) (Browser, bool) {
	s, ok := findFirstMatch(browserSignatures, ua)
	if !ok {
		return Browser{}, false
	}
	return Browser{Name: s.Label, Version: s.version(ua)}, true
}
