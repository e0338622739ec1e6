package notioncontent

import (
	"strings"

	"github.com/tendant/notion-content/pkg/notioncontent/notionapi"
)

// NormalizeProperty flattens one raw page property into a typed value. The
// second return is false when the property carries no representable value:
// empty rich text, unset selects, missing numbers and so on never surface as
// empty strings or empty lists. Unrecognized property kinds are dropped the
// same way rather than treated as errors, so new Notion schema kinds degrade
// gracefully.
func NormalizeProperty(prop notionapi.Property) (PropertyValue, bool) {
	switch prop.Type {
	case notionapi.PropertyTypeTitle:
		return richTextValue(prop.Title)
	case notionapi.PropertyTypeRichText:
		return richTextValue(prop.RichText)
	case notionapi.PropertyTypeSelect:
		return optionValue(prop.Select)
	case notionapi.PropertyTypeStatus:
		return optionValue(prop.Status)
	case notionapi.PropertyTypeMultiSelect:
		return optionListValue(prop.MultiSelect)
	case notionapi.PropertyTypeCheckbox:
		// Checkbox always carries a value; false is still a value.
		return BooleanValue(prop.Checkbox), true
	case notionapi.PropertyTypeNumber:
		if prop.Number == nil {
			return PropertyValue{}, false
		}
		return NumberValue(*prop.Number), true
	case notionapi.PropertyTypeURL:
		return stringValue(prop.URL)
	case notionapi.PropertyTypeEmail:
		return stringValue(prop.Email)
	case notionapi.PropertyTypePhoneNumber:
		return stringValue(prop.PhoneNumber)
	case notionapi.PropertyTypeDate:
		if prop.Date == nil || prop.Date.Start == nil {
			return PropertyValue{}, false
		}
		return TimestampValue(prop.Date.Start.Time), true
	case notionapi.PropertyTypeCreatedTime:
		if prop.CreatedTime == nil {
			return PropertyValue{}, false
		}
		return TimestampValue(*prop.CreatedTime), true
	case notionapi.PropertyTypeLastEditedTime:
		if prop.LastEditedTime == nil {
			return PropertyValue{}, false
		}
		return TimestampValue(*prop.LastEditedTime), true
	case notionapi.PropertyTypePeople:
		names := make([]string, 0, len(prop.People))
		for _, person := range prop.People {
			if person.Name != "" {
				names = append(names, person.Name)
			}
		}
		if len(names) == 0 {
			return PropertyValue{}, false
		}
		return TextListValue(names), true
	default:
		return PropertyValue{}, false
	}
}

// NormalizeProperties flattens every property of a page, keyed by field
// display name. Fields without a representable value are omitted.
func NormalizeProperties(props map[string]notionapi.Property) PropertyMap {
	normalized := make(PropertyMap, len(props))
	for name, prop := range props {
		if value, ok := NormalizeProperty(prop); ok {
			normalized[name] = value
		}
	}
	return normalized
}

// NormalizePropertiesByID is like NormalizeProperties but keyed by the
// property's schema identifier instead of its display name.
func NormalizePropertiesByID(props map[string]notionapi.Property) PropertyMap {
	normalized := make(PropertyMap, len(props))
	for _, prop := range props {
		if prop.ID == "" {
			continue
		}
		if value, ok := NormalizeProperty(prop); ok {
			normalized[prop.ID] = value
		}
	}
	return normalized
}

func richTextValue(runs []notionapi.RichText) (PropertyValue, bool) {
	trimmed := strings.TrimSpace(notionapi.PlainTextAll(runs))
	if trimmed == "" {
		return PropertyValue{}, false
	}
	return TextValue(trimmed), true
}

func optionValue(option *notionapi.SelectOption) (PropertyValue, bool) {
	if option == nil || option.Name == "" {
		return PropertyValue{}, false
	}
	return TextValue(option.Name), true
}

func optionListValue(options []notionapi.SelectOption) (PropertyValue, bool) {
	names := make([]string, 0, len(options))
	for _, option := range options {
		if option.Name != "" {
			names = append(names, option.Name)
		}
	}
	if len(names) == 0 {
		return PropertyValue{}, false
	}
	return TextListValue(names), true
}

func stringValue(s *string) (PropertyValue, bool) {
	if s == nil || *s == "" {
		return PropertyValue{}, false
	}
	return TextValue(*s), true
}
