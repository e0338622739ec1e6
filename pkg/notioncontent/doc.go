// Package notioncontent exposes a Notion workspace through a uniform
// read-only storage interface: Stat for metadata, Read for rendered content,
// and List for enumerating the pages of a configured database.
//
// Paths form a flat namespace: "<page-id>.md" entries directly under the
// root. Page properties are normalized into a flat typed map and can be
// prepended to rendered markdown as a deterministic frontmatter header. The
// remote transport and the block renderer are collaborators behind the
// Client and Renderer interfaces; an HTTP implementation lives under the
// notionapi subpackage and an in-memory one under memory.
//
// All remote failures are translated once, at the collaborator boundary,
// into a closed set of error kinds (ErrInvalidInput, ErrPermissionDenied,
// ErrNotFound, ErrNotADirectory, ErrUnsupported, ErrUnexpected) matchable
// with errors.Is.
package notioncontent
