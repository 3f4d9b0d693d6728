// Package plugin holds the domain model for MicroDrop plugin registration:
// package names as supplied by the package manager, the plugin identifiers
// derived from them, and the hook mode selecting which registration action
// runs.
package plugin

import "strings"

// NamespacePrefix is the distribution namespace marker that package names are
// expected to begin with. Stripping is by length, not by match: the first
// NamespacePrefixLen bytes are removed regardless of their content.
const NamespacePrefix = "microdrop."

// NamespacePrefixLen is the number of leading bytes removed from a package
// name when deriving the plugin identifier.
const NamespacePrefixLen = len(NamespacePrefix)

// PackageName is the raw distribution package name handed to a hook by the
// package manager. The value may legitimately be absent (the installer does
// not always export it), so presence is tracked explicitly rather than
// conflated with the empty string.
type PackageName struct {
	value   string
	present bool
}

// NewPackageName returns a present PackageName carrying value.
func NewPackageName(value string) PackageName {
	return PackageName{value: value, present: true}
}

// AbsentPackageName returns the not-provided PackageName.
func AbsentPackageName() PackageName {
	return PackageName{}
}

// Value returns the raw package name. It is the empty string when absent.
func (p PackageName) Value() string {
	return p.value
}

// Present reports whether a package name was supplied at all.
func (p PackageName) Present() bool {
	return p.present
}

// Identifier is the normalized programmatic name used to enable or disable a
// plugin: the package name with the namespace prefix stripped and hyphens
// replaced by underscores.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// Resolve derives the plugin identifier from a package name.
//
// The transform is mechanical: drop the first NamespacePrefixLen bytes, then
// replace every hyphen with an underscore. No case folding, no trimming, no
// validation of the result. Names shorter than the prefix resolve to the
// empty identifier; names without hyphens pass through unchanged.
func Resolve(pkg PackageName) Identifier {
	raw := pkg.Value()
	if len(raw) <= NamespacePrefixLen {
		return ""
	}
	return Identifier(strings.ReplaceAll(raw[NamespacePrefixLen:], "-", "_"))
}
