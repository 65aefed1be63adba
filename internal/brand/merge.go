package brand

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotJSONObject is returned when a model reply does not decode to a JSON object.
var ErrNotJSONObject = errors.New("model reply is not a JSON object")

// mergeReport lists the reply fields that could not be used.
type mergeReport struct {
	Rejected []string
}

func (r *mergeReport) reject(path string) {
	r.Rejected = append(r.Rejected, path)
}

// mergeOver decodes a sanitized model reply over fallback, field by field.
//
// Objects merge recursively. Scalars and arrays from the reply replace the
// fallback value wholesale. A null, or a value whose JSON kind differs from
// the fallback's, keeps the fallback value. Arrays are checked element by
// element, so one mistyped element keeps the whole fallback array. Keys outside T are dropped when
// decoding. When keys is non-empty only those top-level keys are read from
// the reply.
func mergeOver[T any](raw string, fallback T, keys ...string) (T, mergeReport, error) {
	var report mergeReport

	var reply map[string]any
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return fallback, report, fmt.Errorf("%w: %v", ErrNotJSONObject, err)
	}
	if reply == nil {
		return fallback, report, ErrNotJSONObject
	}
	if len(keys) > 0 {
		reply = pick(reply, keys)
	}

	base, err := toMap(fallback)
	if err != nil {
		return fallback, report, err
	}

	merged := mergeValue("", base, reply, &report)

	data, err := json.Marshal(merged)
	if err != nil {
		return fallback, report, err
	}

	var out T
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return fallback, report, err
		}
		// an empty fallback array gives no element to check against; the field keeps its zero value
		report.reject(typeErr.Field)
	}
	return out, report, nil
}

func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func pick(m map[string]any, keys []string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

func mergeValue(path string, base, over any, report *mergeReport) any {
	if over == nil {
		return base
	}
	if base == nil {
		// not in the fallback: optional field or unknown key, decoding decides
		return over
	}

	switch b := base.(type) {
	case map[string]any:
		o, ok := over.(map[string]any)
		if !ok {
			report.reject(path)
			return base
		}
		out := make(map[string]any, len(b)+len(o))
		for k, v := range b {
			out[k] = v
		}
		for k, v := range o {
			out[k] = mergeValue(join(path, k), b[k], v, report)
		}
		return out

	case []any:
		if conforms(b, over) {
			return over
		}
		report.reject(path)
		return base

	default:
		if fmt.Sprintf("%T", base) != fmt.Sprintf("%T", over) {
			report.reject(path)
			return base
		}
		return over
	}
}

// conforms reports whether v has the JSON shape of the fallback value
// template. Array elements are checked against the fallback's first element,
// and object keys the fallback lacks are left to decoding. A string list also
// takes a non-blank comma string or an object with a usable "tone".
func conforms(template, v any) bool {
	if template == nil || v == nil {
		return true
	}
	switch t := template.(type) {
	case map[string]any:
		o, ok := v.(map[string]any)
		if !ok {
			return false
		}
		for k, val := range o {
			if !conforms(t[k], val) {
				return false
			}
		}
		return true

	case []any:
		switch o := v.(type) {
		case []any:
			if len(t) == 0 {
				return true
			}
			for _, e := range o {
				if e == nil || !conforms(t[0], e) {
					return false
				}
			}
			return true
		case string:
			return isStringList(t) && len(splitList(o)) > 0
		case map[string]any:
			tone, ok := o["tone"]
			return ok && tone != nil && isStringList(t) && conforms(t, tone)
		}
		return false

	default:
		return fmt.Sprintf("%T", template) == fmt.Sprintf("%T", v)
	}
}

// isStringList reports whether a fallback array holds strings, which means
// the target field accepts the looser StringList shapes.
func isStringList(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	for _, v := range arr {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
