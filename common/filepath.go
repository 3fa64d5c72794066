package common

import (
	"net/url"
	"path/filepath"
	"runtime"
)

// FilePathClean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//   C:\H\ -> C:/H
func FilePathClean(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// FilePathToURI turns a cleaned path into a file:// URI.
func FilePathToURI(path string) string {
	if runtime.GOOS == "windows" {
		// file:///C:/path
		path = "/" + path
	}
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}
