package notioncontent

import (
	"sort"
	"strings"
)

// frontmatterEscaper escapes every occurrence of a backslash, newline, or
// double quote exactly once, which matches escaping backslashes first and
// the other two afterwards.
var frontmatterEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	`"`, `\"`,
)

// ApplyFrontmatter prepends a deterministic metadata header to body. Entries
// are sorted by key (bytewise ascending) so repeated calls over the same map
// produce byte-identical output regardless of the remote service's field
// ordering. An empty map returns the body unchanged; no empty header block
// is ever emitted.
func ApplyFrontmatter(props PropertyMap, body string) string {
	if len(props) == 0 {
		return body
	}

	keys := make([]string, 0, len(props))
	for key := range props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("---\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(`: "`)
		b.WriteString(frontmatterEscaper.Replace(props[key].String()))
		b.WriteString("\"\n")
	}
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String()
}
