package useragent

// OS represents operating system information
type OS struct {
	Name    string
	Version string
}

// DetectOS returns the label of the first OS signature matching ua.
func DetectOS(ua string) (string, bool) {
	s, ok := findFirstMatch(osSignatures, ua)
	return s.Label, ok
}

// ParseOS is DetectOS plus the captured version, with iOS and macOS
// underscores normalized to dots ("17_0" becomes "17.0").
func ParseOS(ua string) (OS, bool) {
	s, ok := findFirstMatch(osSignatures, ua)
	if !ok {
		return OS{}, false
	}
	return OS{Name: s.Label, Version: s.version(ua)}, true
}
