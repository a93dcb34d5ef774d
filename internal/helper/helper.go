package helper

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TryParseFloat interprets an untyped bill line-item value as a float64.
// It accepts the numeric types the bson decoder produces plus numeric
// strings; anything else yields nil. It never panics and never errors,
// so malformed upstream data propagates as absence, not failure.
func TryParseFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int32:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return nil
		}
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Float64Ptr returns a pointer to f. Convenience for building test fixtures
// and optional request fields.
func Float64Ptr(f float64) *float64 {
	return &f
}

// ConvertStringsToObjectID converts a slice of hex strings to ObjectIDs,
// rejecting the whole slice on the first invalid entry.
func ConvertStringsToObjectID(s []string) ([]primitive.ObjectID, error) {
	ss := make([]primitive.ObjectID, 0, len(s))
	for _, v := range s {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, err
		}
		ss = append(ss, oid)
	}
	return ss, nil
}
