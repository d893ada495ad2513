package bankfile

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// NACHA records are exactly 94 characters.
const nachaRecordLength = 94

// renderFixed serializes a record struct into its fixed-width line. Every
// exported field must carry a `fixed:"width"` or `fixed:"width,numeric"`
// tag; widths must sum to nachaRecordLength. Numeric fields are zero-padded
// on the left and must fit their width; text fields are space-padded on the
// right and truncated when too long.
func renderFixed(record any) (string, error) {
	value := reflect.ValueOf(record)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	recordType := value.Type()

	var sb strings.Builder
	total := 0
	for i := 0; i < recordType.NumField(); i++ {
		field := recordType.Field(i)
		tag := field.Tag.Get("fixed")
		if tag == "" {
			return "", fmt.Errorf("%s.%s: missing fixed tag", recordType.Name(), field.Name)
		}
		width, numeric, err := parseFixedTag(tag)
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", recordType.Name(), field.Name, err)
		}

		var rendered string
		switch fv := value.Field(i).Interface().(type) {
		case string:
			if numeric {
				rendered, err = padNumeric(fv, width)
			} else {
				rendered = padText(fv, width)
			}
		case int64:
			rendered, err = padNumeric(strconv.FormatInt(fv, 10), width)
		case int:
			rendered, err = padNumeric(strconv.Itoa(fv), width)
		default:
			return "", fmt.Errorf("%s.%s: unsupported field type %T", recordType.Name(), field.Name, fv)
		}
		if err != nil {
			return "", fmt.Errorf("%s.%s: %w", recordType.Name(), field.Name, err)
		}
		sb.WriteString(rendered)
		total += width
	}

	if total != nachaRecordLength {
		return "", fmt.Errorf("%s: field widths sum to %d, want %d", recordType.Name(), total, nachaRecordLength)
	}
	return sb.String(), nil
}

func parseFixedTag(tag string) (width int, numeric bool, err error) {
	parts := strings.Split(tag, ",")
	width, err = strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return 0, false, fmt.Errorf("invalid fixed width %q", parts[0])
	}
	for _, opt := range parts[1:] {
		if opt == "numeric" {
			numeric = true
		}
	}
	return width, numeric, nil
}

func padText(value string, width int) string {
	if len(value) > width {
		return value[:width]
	}
	return value + strings.Repeat(" ", width-len(value))
}

func padNumeric(value string, width int) (string, error) {
	if value == "" {
		value = "0"
	}
	if len(value) > width {
		return "", fmt.Errorf("numeric value %q overflows width %d", value, width)
	}
	return strings.Repeat("0", width-len(value)) + value, nil
}
