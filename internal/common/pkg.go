package common

import (
	"path"
	"strings"
	"unicode"
)

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// PkgPath joins a module path and a slash-separated directory into an import path.
func PkgPath(module, dir string) string {
	if dir == "" || dir == "." {
		return module
	}

	return path.Join(module, path.Clean(dir))
}

// PkgName derives a valid package clause name from an import path: the last
// element, lower-cased, with characters that are not letters, digits or
// underscores removed.
func PkgName(pkgPath string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}

		return -1
	}, PkgAlias(pkgPath))

	if name == "" || unicode.IsDigit(rune(name[0])) {
		return "pkg" + name
	}

	return name
}
