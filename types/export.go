package types

import (
	"bytes"
	"encoding/json"
	"errors"
)

const (
	// RelationshipsKey is the object key holding the record list when an
	// export uses the keyed shape (following.json)
	RelationshipsKey = "relationships_following"

	// StringListKey is the record field holding the sub-record list
	StringListKey = "string_list_data"

	// HrefKey is the sub-record field holding the account URL
	HrefKey = "href"
)

var (
	// ErrUnrecognizedShape is returned when a document is valid JSON but
	// matches neither recognized export shape
	ErrUnrecognizedShape = errors.New("unrecognized export shape")

	// ErrNotAnObject is returned when a record or sub-record is not a JSON object
	ErrNotAnObject = errors.New("not a JSON object")

	// ErrNoStringList is returned when a record has no usable sub-record list
	ErrNoStringList = errors.New("missing or invalid " + StringListKey)

	// ErrNoHref is returned when a sub-record carries no account URL
	ErrNoHref = errors.New("missing " + HrefKey)

	// ErrBadHref is returned when a sub-record's account URL is not a string
	ErrBadHref = errors.New(HrefKey + " is not a string")
)

// Shape identifies the top-level layout of a relationship export
type Shape int

const (
	// ShapeList is a top-level JSON array of relationship records
	// (followers_1.json)
	ShapeList Shape = iota

	// ShapeKeyed is a top-level JSON object whose RelationshipsKey field
	// holds the record list (following.json)
	ShapeKeyed
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// Export is a relationship export resolved to one of the two recognized
// shapes. Records are kept raw so malformed entries can be validated and
// skipped one at a time.
type Export struct {
	Shape   Shape
	Records []json.RawMessage
}

// Record is a relationship record after validation. Sub-records are kept
// raw for the same per-entry skip semantics.
type Record struct {
	StringListData []json.RawMessage
}

// DecodeExport resolves the top-level shape of an export document once,
// up front. A JSON parse error is returned as-is; structurally valid
// documents of any other layout yield ErrUnrecognizedShape.
func DecodeExport(data []byte) (*Export, error) {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var records []json.RawMessage
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return &Export{Shape: ShapeList, Records: records}, nil

	case len(trimmed) > 0 && trimmed[0] == '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}

		raw, ok := doc[RelationshipsKey]
		if !ok {
			return nil, ErrUnrecognizedShape
		}

		var records []json.RawMessage
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, ErrUnrecognizedShape
		}
		return &Export{Shape: ShapeKeyed, Records: records}, nil

	default:
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, ErrUnrecognizedShape
	}
}

// ParseRecord validates a single raw relationship record
func ParseRecord(raw json.RawMessage) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, ErrNotAnObject
	}

	entries, ok := fields[StringListKey]
	if !ok {
		return nil, ErrNoStringList
	}

	var subRecords []json.RawMessage
	if err := json.Unmarshal(entries, &subRecords); err != nil {
		return nil, ErrNoStringList
	}

	return &Record{StringListData: subRecords}, nil
}

// ParseEntry validates a single raw sub-record and returns its account URL
func ParseEntry(raw json.RawMessage) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", ErrNotAnObject
	}

	href, ok := fields[HrefKey]
	if !ok {
		return "", ErrNoHref
	}

	var url string
	if err := json.Unmarshal(href, &url); err != nil {
		return "", ErrBadHref
	}

	return url, nil
}
