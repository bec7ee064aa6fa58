package utils

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// StripCodeFence removes a surrounding markdown code block (``` or ```json)
// that chat models often wrap around JSON replies.
func StripCodeFence(s string) string {
	cleaned := strings.TrimSpace(s)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.TrimPrefix(cleaned, "```")
	// drop an info string such as "json" on the opening fence line
	if i := strings.IndexByte(cleaned, '\n'); i >= 0 && !strings.ContainsAny(cleaned[:i], "{[") {
		cleaned = cleaned[i+1:]
	} else {
		cleaned = strings.TrimPrefix(cleaned, "json")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// FlexibleFloat decodes a JSON number, a numeric string such as "24,945.00", or null
type FlexibleFloat struct {
	Value *float64
}

func (f *FlexibleFloat) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op, which would leave num at zero
	if isJSONNull(data) {
		f.Value = nil
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.Value = &num
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		cleaned := strings.TrimSpace(strings.ReplaceAll(str, ",", ""))
		if cleaned == "" {
			f.Value = nil
			return nil
		}
		num, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return err
		}
		f.Value = &num
		return nil
	}

	f.Value = nil
	return nil
}

// FlexibleString decodes a JSON string, a number (rendered without exponent) or null
type FlexibleString struct {
	Value *string
}

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		f.Value = nil
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			f.Value = nil
			return nil
		}
		f.Value = &str
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		s := num.String()
		f.Value = &s
		return nil
	}

	f.Value = nil
	return nil
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
