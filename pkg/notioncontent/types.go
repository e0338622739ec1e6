package notioncontent

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MarkdownContentType is the content type reported for every rendered page.
const MarkdownContentType = "text/markdown"

// MarkdownSuffix is appended to page ids to form entry names, and stripped
// from paths when resolving them back to ids.
const MarkdownSuffix = ".md"

// PropertyKind is the domain type for normalized property value kinds.
type PropertyKind string

// Property kind constants (typed).
const (
	KindText      PropertyKind = "text"
	KindNumber    PropertyKind = "number"
	KindBoolean   PropertyKind = "boolean"
	KindTextList  PropertyKind = "text_list"
	KindTimestamp PropertyKind = "timestamp"
)

// PropertyValue is one normalized page property. Exactly one payload field is
// meaningful, selected by Kind. Values are constructed through the typed
// constructors below; a zero PropertyValue is not valid.
type PropertyValue struct {
	Kind      PropertyKind
	Text      string
	Number    float64
	Boolean   bool
	TextList  []string
	Timestamp time.Time
}

// TextValue returns a text property value.
func TextValue(s string) PropertyValue {
	return PropertyValue{Kind: KindText, Text: s}
}

// NumberValue returns a numeric property value.
func NumberValue(f float64) PropertyValue {
	return PropertyValue{Kind: KindNumber, Number: f}
}

// BooleanValue returns a boolean property value.
func BooleanValue(b bool) PropertyValue {
	return PropertyValue{Kind: KindBoolean, Boolean: b}
}

// TextListValue returns a list-of-text property value.
func TextListValue(items []string) PropertyValue {
	return PropertyValue{Kind: KindTextList, TextList: items}
}

// TimestampValue returns a timestamp property value, normalized to UTC.
func TimestampValue(t time.Time) PropertyValue {
	return PropertyValue{Kind: KindTimestamp, Timestamp: t.UTC()}
}

// String renders the value with the single stringification rule shared by
// every consumer: text verbatim, numbers and booleans in their canonical
// decimal form, lists joined with ", ", timestamps as RFC 3339.
func (v PropertyValue) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Boolean)
	case KindTextList:
		return strings.Join(v.TextList, ", ")
	case KindTimestamp:
		return v.Timestamp.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

// MarshalJSON emits the bare payload, so a PropertyMap serializes as a flat
// JSON object of primitive values.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindText:
		return json.Marshal(v.Text)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindBoolean:
		return json.Marshal(v.Boolean)
	case KindTextList:
		return json.Marshal(v.TextList)
	case KindTimestamp:
		return json.Marshal(v.Timestamp.UTC().Format(time.RFC3339))
	default:
		return nil, fmt.Errorf("unknown property kind %q", v.Kind)
	}
}

// PropertyMap maps field display names to normalized values. Iteration order
// is undefined; consumers needing determinism sort by key.
type PropertyMap map[string]PropertyValue

// ObjectInfo is the metadata returned by Stat.
type ObjectInfo struct {
	Path         string
	IsDir        bool
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Entry is one item of a directory listing.
type Entry struct {
	Path        string
	ContentType string
}

// ListWindow bounds a windowed listing: skip Offset items, then collect up to
// Limit. Limit must be positive.
type ListWindow struct {
	Offset int
	Limit  int
}

// ListResult is the outcome of a windowed listing. Visited counts every item
// the pagination loop saw, which can exceed len(PageIDs) when a window is
// applied.
type ListResult struct {
	PageIDs []string
	Visited int
}

// ByteRange selects a byte slice of an object's content. Length < 0 means
// "to the end".
type ByteRange struct {
	Offset int64
	Length int64
}

// FullRange selects the whole content.
var FullRange = ByteRange{Offset: 0, Length: -1}

// IsFull reports whether the range covers the entire content.
func (r ByteRange) IsFull() bool {
	return r.Offset == 0 && r.Length < 0
}

// Capability declares which accessor operations are available.
type Capability struct {
	Stat bool
	Read bool
	List bool
}

// EntryIterator is a forward-only, single-pass enumerator over listing
// entries. It is produced once per List call and is not restartable.
type EntryIterator struct {
	entries []Entry
	idx     int
}

// NewEntryIterator creates an iterator over the given entries.
func NewEntryIterator(entries []Entry) *EntryIterator {
	return &EntryIterator{entries: entries}
}

// Next returns the next entry, or false once the iterator is exhausted.
func (it *EntryIterator) Next() (Entry, bool) {
	if it.idx >= len(it.entries) {
		return Entry{}, false
	}
	entry := it.entries[it.idx]
	it.idx++
	return entry, true
}
