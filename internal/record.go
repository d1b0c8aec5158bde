package internal

import (
	"bytes"
	"encoding/json"
)

// ExceptionInfo is the nested "exception" object some Java layouts attach.
type ExceptionInfo struct {
	ExceptionType *string
	Message       *string
}

// LogRecord is one decoded JSON log line. Optional fields are nil when the
// key is missing or null.
type LogRecord struct {
	Timestamp  string
	LoggerName string
	Level      string
	Message    string
	StackTrace *string
	ExcInfo    *string
	Exception  *ExceptionInfo
}

// TryHandleJson decodes d into out. It reports false when d is not a single
// JSON object, when a required field is missing or null, or when any known
// field has the wrong type. Keys are matched case-sensitively and unknown keys
// are ignored.
func TryHandleJson(d []byte, out *LogRecord) bool {
	// Duplicate keys are not rejected; the last occurrence wins.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(d, &raw); err != nil || raw == nil {
		return false
	}

	var rec LogRecord
	if !requiredString(raw, "timestamp", &rec.Timestamp) ||
		!requiredString(raw, "loggerName", &rec.LoggerName) ||
		!requiredString(raw, "level", &rec.Level) ||
		!requiredString(raw, "message", &rec.Message) {
		return false
	}

	var ok bool
	if rec.StackTrace, ok = optionalString(raw, "stackTrace"); !ok {
		return false
	}
	if rec.ExcInfo, ok = optionalString(raw, "exc_info"); !ok {
		return false
	}
	if rec.Exception, ok = tryHandleException(raw["exception"]); !ok {
		return false
	}

	*out = rec
	return true
}

func tryHandleException(v json.RawMessage) (*ExceptionInfo, bool) {
	if isNull(v) {
		return nil, true
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(v, &raw); err != nil {
		return nil, false
	}

	var (
		exc ExceptionInfo
		ok  bool
	)
	if exc.ExceptionType, ok = optionalString(raw, "exceptionType"); !ok {
		return nil, false
	}
	if exc.Message, ok = optionalString(raw, "message"); !ok {
		return nil, false
	}
	return &exc, true
}

func requiredString(raw map[string]json.RawMessage, key string, dst *string) bool {
	s, ok := optionalString(raw, key)
	if !ok || s == nil {
		return false
	}
	*dst = *s
	return true
}

// optionalString returns nil for a missing or null key and false when the
// value is present but not a string.
func optionalString(raw map[string]json.RawMessage, key string) (*string, bool) {
	v, found := raw[key]
	if !found || isNull(v) {
		return nil, true
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil, false
	}
	return &s, true
}

func isNull(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}
