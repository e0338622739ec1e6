package notioncontent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/notion-content/pkg/notioncontent"
	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestNormalizeProperty(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		property notionapi.Property
		want     notioncontent.PropertyValue
		wantNone bool
	}{
		{
			name: "title concatenates and trims runs",
			property: notionapi.Property{
				Type: notionapi.PropertyTypeTitle,
				Title: []notionapi.RichText{
					{PlainText: "  Hello "},
					{PlainText: "World  "},
				},
			},
			want: notioncontent.TextValue("Hello World"),
		},
		{
			name: "whitespace-only title yields no value",
			property: notionapi.Property{
				Type:  notionapi.PropertyTypeTitle,
				Title: []notionapi.RichText{{PlainText: "   "}},
			},
			wantNone: true,
		},
		{
			name: "rich text",
			property: notionapi.Property{
				Type:     notionapi.PropertyTypeRichText,
				RichText: []notionapi.RichText{{PlainText: "notes"}},
			},
			want: notioncontent.TextValue("notes"),
		},
		{
			name:     "empty rich text yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeRichText},
			wantNone: true,
		},
		{
			name: "select uses option name",
			property: notionapi.Property{
				Type:   notionapi.PropertyTypeSelect,
				Select: &notionapi.SelectOption{Name: "In Progress"},
			},
			want: notioncontent.TextValue("In Progress"),
		},
		{
			name:     "unset select yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeSelect},
			wantNone: true,
		},
		{
			name: "status uses option name",
			property: notionapi.Property{
				Type:   notionapi.PropertyTypeStatus,
				Status: &notionapi.SelectOption{Name: "Done"},
			},
			want: notioncontent.TextValue("Done"),
		},
		{
			name: "multi-select collects option names",
			property: notionapi.Property{
				Type: notionapi.PropertyTypeMultiSelect,
				MultiSelect: []notionapi.SelectOption{
					{Name: "a"}, {Name: "b"},
				},
			},
			want: notioncontent.TextListValue([]string{"a", "b"}),
		},
		{
			name:     "empty multi-select yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeMultiSelect},
			wantNone: true,
		},
		{
			name:     "unchecked checkbox still carries a value",
			property: notionapi.Property{Type: notionapi.PropertyTypeCheckbox, Checkbox: false},
			want:     notioncontent.BooleanValue(false),
		},
		{
			name:     "checked checkbox",
			property: notionapi.Property{Type: notionapi.PropertyTypeCheckbox, Checkbox: true},
			want:     notioncontent.BooleanValue(true),
		},
		{
			name:     "number",
			property: notionapi.Property{Type: notionapi.PropertyTypeNumber, Number: floatPtr(42.5)},
			want:     notioncontent.NumberValue(42.5),
		},
		{
			name:     "unset number yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeNumber},
			wantNone: true,
		},
		{
			name:     "url",
			property: notionapi.Property{Type: notionapi.PropertyTypeURL, URL: strPtr("https://example.com")},
			want:     notioncontent.TextValue("https://example.com"),
		},
		{
			name:     "unset url yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeURL},
			wantNone: true,
		},
		{
			name:     "email",
			property: notionapi.Property{Type: notionapi.PropertyTypeEmail, Email: strPtr("a@b.io")},
			want:     notioncontent.TextValue("a@b.io"),
		},
		{
			name:     "phone number",
			property: notionapi.Property{Type: notionapi.PropertyTypePhoneNumber, PhoneNumber: strPtr("+15550100")},
			want:     notioncontent.TextValue("+15550100"),
		},
		{
			name: "date uses its start component",
			property: notionapi.Property{
				Type: notionapi.PropertyTypeDate,
				Date: &notionapi.DateValue{
					Start: &notionapi.DateTime{Time: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)},
				},
			},
			want: notioncontent.TimestampValue(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "absent date yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeDate},
			wantNone: true,
		},
		{
			name:     "created time is always present",
			property: notionapi.Property{Type: notionapi.PropertyTypeCreatedTime, CreatedTime: timePtr(createdAt)},
			want:     notioncontent.TimestampValue(createdAt),
		},
		{
			name:     "last edited time when present",
			property: notionapi.Property{Type: notionapi.PropertyTypeLastEditedTime, LastEditedTime: timePtr(createdAt)},
			want:     notioncontent.TimestampValue(createdAt),
		},
		{
			name:     "absent last edited time yields no value",
			property: notionapi.Property{Type: notionapi.PropertyTypeLastEditedTime},
			wantNone: true,
		},
		{
			name: "people collects names and skips nameless users",
			property: notionapi.Property{
				Type: notionapi.PropertyTypePeople,
				People: []notionapi.User{
					{ID: "u1", Name: "Ada"},
					{ID: "u2"},
					{ID: "u3", Name: "Grace"},
				},
			},
			want: notioncontent.TextListValue([]string{"Ada", "Grace"}),
		},
		{
			name: "people without names yields no value",
			property: notionapi.Property{
				Type:   notionapi.PropertyTypePeople,
				People: []notionapi.User{{ID: "u1"}},
			},
			wantNone: true,
		},
		{
			name:     "unknown kind is dropped, not an error",
			property: notionapi.Property{Type: "rollup"},
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := notioncontent.NormalizeProperty(tt.property)

			if tt.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Normalized values are never empty: a field either carries real content or
// is omitted entirely.
func TestNormalizePropertyNeverEmpty(t *testing.T) {
	empties := []notionapi.Property{
		{Type: notionapi.PropertyTypeTitle},
		{Type: notionapi.PropertyTypeRichText, RichText: []notionapi.RichText{{PlainText: ""}}},
		{Type: notionapi.PropertyTypeSelect, Select: &notionapi.SelectOption{Name: ""}},
		{Type: notionapi.PropertyTypeStatus},
		{Type: notionapi.PropertyTypeMultiSelect, MultiSelect: []notionapi.SelectOption{{Name: ""}}},
		{Type: notionapi.PropertyTypeNumber},
		{Type: notionapi.PropertyTypeURL, URL: strPtr("")},
		{Type: notionapi.PropertyTypeEmail},
		{Type: notionapi.PropertyTypePhoneNumber},
		{Type: notionapi.PropertyTypeDate, Date: &notionapi.DateValue{}},
		{Type: notionapi.PropertyTypePeople},
	}

	for _, prop := range empties {
		_, ok := notioncontent.NormalizeProperty(prop)
		assert.False(t, ok, "property type %s should yield no value", prop.Type)
	}
}

func TestNormalizeProperties(t *testing.T) {
	props := map[string]notionapi.Property{
		"Name":   {ID: "title", Type: notionapi.PropertyTypeTitle, Title: []notionapi.RichText{{PlainText: "Doc"}}},
		"Done":   {ID: "chk", Type: notionapi.PropertyTypeCheckbox, Checkbox: true},
		"Empty":  {ID: "rt", Type: notionapi.PropertyTypeRichText},
		"Rollup": {ID: "ru", Type: "rollup"},
	}

	normalized := notioncontent.NormalizeProperties(props)

	assert.Len(t, normalized, 2)
	assert.Equal(t, notioncontent.TextValue("Doc"), normalized["Name"])
	assert.Equal(t, notioncontent.BooleanValue(true), normalized["Done"])
	assert.NotContains(t, normalized, "Empty")
	assert.NotContains(t, normalized, "Rollup")
}

func TestNormalizePropertiesByID(t *testing.T) {
	props := map[string]notionapi.Property{
		"Name": {ID: "title", Type: notionapi.PropertyTypeTitle, Title: []notionapi.RichText{{PlainText: "Doc"}}},
		"Done": {ID: "chk", Type: notionapi.PropertyTypeCheckbox, Checkbox: false},
	}

	normalized := notioncontent.NormalizePropertiesByID(props)

	assert.Len(t, normalized, 2)
	assert.Equal(t, notioncontent.TextValue("Doc"), normalized["title"])
	assert.Equal(t, notioncontent.BooleanValue(false), normalized["chk"])
}
