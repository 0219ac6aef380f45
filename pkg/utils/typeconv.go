package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultLanguage is the language picked out of localized SDE fields.
const DefaultLanguage = "en"

// Localized extracts a localized string from a nested language map. Flat
// values are returned unchanged and absent fields yield nil.
func Localized(obj map[string]interface{}, field, lang string) interface{} {
	val, ok := obj[field]
	if !ok || val == nil {
		return nil
	}
	if m, ok := val.(map[string]interface{}); ok {
		return m[lang]
	}
	return val
}

// Legacy converts a value for the legacy schema: booleans become 1/0,
// everything else passes through.
func Legacy(val interface{}) interface{} {
	if b, ok := val.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return val
}

// ConvertToInt coerces the numeric representations found in decoded SDE
// data to an int64.
func ConvertToInt(val interface{}) (int64, error) {
	switch v := val.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// FormatValue renders a row value as a CSV field. nil renders empty.
func FormatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]interface{}, []interface{}:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var romanNumerals = [...]string{
	"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
}

// Roman returns the numeral used in celestial names. Indices past XX fall
// back to decimal.
func Roman(n int64) string {
	if n >= 0 && n < int64(len(romanNumerals)) {
		return romanNumerals[n]
	}
	return strconv.FormatInt(n, 10)
}
