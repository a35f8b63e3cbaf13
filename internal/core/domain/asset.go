package domain

import (
	"path"
	"strings"
)

// InlineMarkerPrefix marks a resolved entry as literal markup instead of a file path.
const InlineMarkerPrefix = "<!--"

// AssetKind classifies a resolved asset entry.
type AssetKind int

const (
	// AssetOther is a file with an extension that is neither script nor stylesheet.
	AssetOther AssetKind = iota
	// AssetScript is a JavaScript file.
	AssetScript
	// AssetStylesheet is a CSS file.
	AssetStylesheet
	// AssetInline is inline markup, such as a conditional comment block.
	AssetInline
)

// String returns the string representation of the AssetKind.
func (k AssetKind) String() string {
	switch k {
	case AssetScript:
		return "script"
	case AssetStylesheet:
		return "stylesheet"
	case AssetInline:
		return "inline"
	default:
		return "other"
	}
}

// Extension returns the bundle key suffix for bundleable kinds, or "" otherwise.
func (k AssetKind) Extension() string {
	switch k {
	case AssetScript:
		return ".js"
	case AssetStylesheet:
		return ".css"
	default:
		return ""
	}
}

// IsInlineMarkup reports whether the entry is inline markup rather than a path.
func IsInlineMarkup(entry string) bool {
	return strings.HasPrefix(strings.TrimLeft(entry, " \t\r\n"), InlineMarkerPrefix)
}

// IsPattern reports whether a link contains glob meta characters and should be
// expanded against the static directories.
func IsPattern(link string) bool {
	return !IsInlineMarkup(link) && strings.ContainsAny(link, "*?[{")
}

// ClassifyAsset returns the kind of a resolved entry.
// Query strings and fragments are ignored and extensions compare case-insensitively.
func ClassifyAsset(entry string) AssetKind {
	if IsInlineMarkup(entry) {
		return AssetInline
	}

	p := entry
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}

	switch strings.ToLower(path.Ext(p)) {
	case ".js":
		return AssetScript
	case ".css":
		return AssetStylesheet
	default:
		return AssetOther
	}
}

// Links is the result of resolving an asset reference: entries placed in the
// document head and entries placed at the end of the body.
type Links struct {
	Head []string
	Body []string
}

// All returns the head entries followed by the body entries.
func (l Links) All() []string {
	all := make([]string, 0, len(l.Head)+len(l.Body))
	all = append(all, l.Head...)
	return append(all, l.Body...)
}

// Append adds the entries of other after the entries of l, per placement.
func (l *Links) Append(other Links) {
	l.Head = append(l.Head, other.Head...)
	l.Body = append(l.Body, other.Body...)
}

// FilterBundleable keeps the entries that may be bundled, in order.
// Inline markup and unknown extensions are always dropped; scripts are dropped
// unless includeScripts is set.
func FilterBundleable(entries []string, includeScripts bool) []string {
	kept := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch ClassifyAsset(entry) {
		case AssetScript:
			if includeScripts {
				kept = append(kept, entry)
			}
		case AssetStylesheet:
			kept = append(kept, entry)
		default:
		}
	}
	return kept
}
