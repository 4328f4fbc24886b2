package models

// JSONValue is a generic type to represent any decoded JSON value.
// The concrete types produced by the decoder are: nil, bool, int64,
// float64, string, JSONObject, and JSONArray.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
// Duplicate keys in the source overwrite earlier values (last occurrence wins).
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// IntermediateRepresentation holds a decoded document in a form that's
// easy for the analyzer and formatter to work with.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the document is an array vs an object
}

// Kind returns a short name for the concrete kind of a decoded value.
// Whether a number is "int" or "float" is decided by the decoder from the
// source lexeme (presence of a decimal point), not by its magnitude.
func Kind(v JSONValue) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case JSONObject:
		return "object"
	case JSONArray:
		return "array"
	default:
		return "unknown"
	}
}
