package notioncontent

import (
	"strings"

	"github.com/google/uuid"
)

// IsRootPath reports whether path names the root container.
func IsRootPath(path string) bool {
	return path == "" || path == "/"
}

// IsRootDirPath reports whether path names the root container in any of its
// directory spellings.
func IsRootDirPath(path string) bool {
	return IsRootPath(path) || path == "./" || path == "/."
}

// ResolvePagePath maps an accessor path onto a page id. The namespace is
// intentionally flat: parent-directory segments and nested paths resolve to
// ErrNotFound rather than anything on the remote service. A trailing
// markdown suffix is stripped. Callers handle the root path themselves; it
// names the container, not a page.
func ResolvePagePath(path string) (string, error) {
	if strings.Contains(path, "..") || strings.Contains(path, "/") {
		return "", accessError("resolve", path, ErrNotFound, nil)
	}

	id := strings.TrimSuffix(path, MarkdownSuffix)
	if id == "" {
		return "", accessError("resolve", path, ErrNotFound, nil)
	}
	return CanonicalPageID(id), nil
}

// CanonicalPageID rewrites undashed 32-hex page ids into their dashed UUID
// form; the Notion API accepts both but reports the dashed one. Anything
// that is not a UUID passes through unchanged.
func CanonicalPageID(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return id
}
