package lottie

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Vectors are decoded from the generic values produced by encoding/json
// (float64, json.Number, []any, map[string]any) and encoded back as flat
// numeric arrays. A nil value is rejected by the FromJSON functions; only
// UnmarshalJSON treats null as absent, as encoding/json does.

// Vector1DFromJSON decodes a Vector1D from a number, a numeric array (the
// first element is used) or an object with a numeric "value" field.
func Vector1DFromJSON(v any) (Vector1D, error) {
	switch tv := normalize(v).(type) {
	case []any:
		if len(tv) < 1 {
			return Vector1D{}, decodeFailed("Vector1D", "empty array", nil)
		}
		f, err := elementAt("Vector1D", tv, 0)
		if err != nil {
			return Vector1D{}, err
		}
		return Vector1D{Value: f}, nil
	case map[string]any:
		f, err := field("Vector1D", tv, "value")
		if err != nil {
			return Vector1D{}, err
		}
		return Vector1D{Value: f}, nil
	}
	f, ok := number(v)
	if !ok {
		return Vector1D{}, decodeFailed("Vector1D", fmt.Sprintf("unsupported value of type %T", v), nil)
	}
	return Vector1D{Value: f}, nil
}

// Vector2DFromJSON decodes a Vector2D from an array of two or three numbers
// (a third component is ignored) or an object with numeric "x" and "y".
func Vector2DFromJSON(v any) (Vector2D, error) {
	switch tv := normalize(v).(type) {
	case []any:
		if len(tv) != 2 && len(tv) != 3 {
			return Vector2D{}, decodeFailed("Vector2D", fmt.Sprintf("array of length %d, want 2 or 3", len(tv)), nil)
		}
		x, err := elementAt("Vector2D", tv, 0)
		if err != nil {
			return Vector2D{}, err
		}
		y, err := elementAt("Vector2D", tv, 1)
		if err != nil {
			return Vector2D{}, err
		}
		return Vector2D{X: x, Y: y}, nil
	case map[string]any:
		x, err := field("Vector2D", tv, "x")
		if err != nil {
			return Vector2D{}, err
		}
		y, err := field("Vector2D", tv, "y")
		if err != nil {
			return Vector2D{}, err
		}
		return Vector2D{X: x, Y: y}, nil
	}
	return Vector2D{}, decodeFailed("Vector2D", fmt.Sprintf("unsupported value of type %T", v), nil)
}

// Vector3DFromJSON decodes a Vector3D from an array of two or three numbers
// or an object with numeric "x", "y" and optional "z". A missing z is 0,
// which is how the format stores 2D positions.
func Vector3DFromJSON(v any) (Vector3D, error) {
	switch tv := normalize(v).(type) {
	case []any:
		if len(tv) != 2 && len(tv) != 3 {
			return Vector3D{}, decodeFailed("Vector3D", fmt.Sprintf("array of length %d, want 2 or 3", len(tv)), nil)
		}
		var out [3]float64
		for i := range tv {
			f, err := elementAt("Vector3D", tv, i)
			if err != nil {
				return Vector3D{}, err
			}
			out[i] = f
		}
		return Vector3D{X: out[0], Y: out[1], Z: out[2]}, nil
	case map[string]any:
		x, err := field("Vector3D", tv, "x")
		if err != nil {
			return Vector3D{}, err
		}
		y, err := field("Vector3D", tv, "y")
		if err != nil {
			return Vector3D{}, err
		}
		var z float64
		if _, present := tv["z"]; present {
			if z, err = field("Vector3D", tv, "z"); err != nil {
				return Vector3D{}, err
			}
		}
		return Vector3D{X: x, Y: y, Z: z}, nil
	}
	return Vector3D{}, decodeFailed("Vector3D", fmt.Sprintf("unsupported value of type %T", v), nil)
}

// ToJSON returns v as a one-element numeric array.
func (v Vector1D) ToJSON() any {
	return []any{v.Value}
}

// ToJSON returns v as a two-element numeric array.
func (v Vector2D) ToJSON() any {
	return []any{v.X, v.Y}
}

// ToJSON returns v as a three-element numeric array.
func (v Vector3D) ToJSON() any {
	return []any{v.X, v.Y, v.Z}
}

// MarshalJSON implements json.Marshaler.
func (v Vector1D) MarshalJSON() ([]byte, error) { return json.Marshal(v.ToJSON()) }

// MarshalJSON implements json.Marshaler.
func (v Vector2D) MarshalJSON() ([]byte, error) { return json.Marshal(v.ToJSON()) }

// MarshalJSON implements json.Marshaler.
func (v Vector3D) MarshalJSON() ([]byte, error) { return json.Marshal(v.ToJSON()) }

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves v unchanged.
func (v *Vector1D) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	raw, err := decodeRaw("Vector1D", data)
	if err != nil {
		return err
	}
	out, err := Vector1DFromJSON(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves v unchanged.
func (v *Vector2D) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	raw, err := decodeRaw("Vector2D", data)
	if err != nil {
		return err
	}
	out, err := Vector2DFromJSON(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. A JSON null leaves v unchanged.
func (v *Vector3D) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	raw, err := decodeRaw("Vector3D", data)
	if err != nil {
		return err
	}
	out, err := Vector3DFromJSON(raw)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// normalize turns typed float slices into the []any a JSON decoder produces.
func normalize(v any) any {
	fs, ok := v.([]float64)
	if !ok {
		return v
	}
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

// isNull reports whether data is the JSON literal null.
func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// decodeRaw parses data into a generic value, keeping numbers exact.
func decodeRaw(typ string, data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, decodeFailed(typ, "invalid JSON", err)
	}
	return raw, nil
}

// elementAt returns arr[i] as a number.
func elementAt(typ string, arr []any, i int) (float64, error) {
	f, ok := number(arr[i])
	if !ok {
		return 0, decodeFailed(typ, fmt.Sprintf("element %d is %T, not a number", i, arr[i]), nil)
	}
	return f, nil
}

// field returns obj[key] as a number.
func field(typ string, obj map[string]any, key string) (float64, error) {
	raw, ok := obj[key]
	if !ok {
		return 0, decodeFailed(typ, fmt.Sprintf("missing field %q", key), nil)
	}
	f, ok := number(raw)
	if !ok {
		return 0, decodeFailed(typ, fmt.Sprintf("field %q is %T, not a number", key, raw), nil)
	}
	return f, nil
}

// number converts the numeric types a JSON decoder or a caller may produce.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func decodeFailed(typ, reason string, err error) error {
	if debugEnabled() {
		Logger().Debug("lottie: rejected JSON value",
			slog.String("type", typ),
			slog.String("reason", reason))
	}
	return &DecodeError{Type: typ, Reason: reason, Err: err}
}
