package i18n

import "strings"

// SplitLocalePath extracts the leading locale segment from a request path.
// It returns the locale, the remainder of the path (always starting with
// "/", "/" for a locale root), and whether the segment named a supported
// locale. Paths without a leading segment are unsupported.
func SplitLocalePath(path string) (Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, rest, _ := strings.Cut(trimmed, "/")
	if !IsSupported(seg) {
		return "", path, false
	}
	if rest == "" {
		return Locale(seg), "/", true
	}
	return Locale(seg), "/" + rest, true
}

// SwitchLocalePath rewrites path from one locale prefix to another,
// preserving all trailing segments and any query string. Switching to the
// current locale is a no-op. The locale root ("/en" or "/en/") maps to the
// bare root of the target locale, without a trailing slash.
func SwitchLocalePath(path string, from, to Locale) string {
	if from == to {
		return path
	}
	rest, query, _ := strings.Cut(path, "?")
	if query != "" {
		query = "?" + query
	}
	locale, tail, ok := SplitLocalePath(rest)
	if !ok || locale != from {
		return path
	}
	if tail == "/" {
		return "/" + string(to) + query
	}
	return "/" + string(to) + tail + query
}
