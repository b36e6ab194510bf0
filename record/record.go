// Package record reads possibly absent fields out of decoded save records.
//
// Records come from JSON or YAML decoding, so every node is a map[string]any,
// a []any or a scalar. Value tags each node once and all traversal goes through
// Value.Get, which never fails: a missing key, a wrong shape or a bad sequence
// index all produce an Absent value.
package record

import (
	"encoding/json"
	"strconv"
)

type Kind uint8

const (
	Absent Kind = iota
	Map
	Seq
	Scalar
)

func (kind Kind) String() string {
	switch kind {
	case Map:
		return "map"
	case Seq:
		return "seq"
	case Scalar:
		return "scalar"
	default:
		return "absent"
	}
}

type Value struct {
	kind   Kind
	fields map[string]any
	items  []any
	scalar any
}

var None = Value{}

func Of(src any) Value {
	switch v := src.(type) {
	case nil:
		return None
	case Value:
		return v
	case map[string]any:
		return Value{kind: Map, fields: v}
	case []any:
		return Value{kind: Seq, items: v}
	case []string:
		items := make([]any, len(v))

		for i, s := range v {
			items[i] = s
		}

		return Value{kind: Seq, items: items}
	case []int:
		items := make([]any, len(v))

		for i, n := range v {
			items[i] = n
		}

		return Value{kind: Seq, items: items}
	default:
		return Value{kind: Scalar, scalar: v}
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsAbsent() bool {
	return v.kind == Absent
}

// Get walks keys from v. Map steps look up the key, sequence steps need a
// decimal index in range.
func (v Value) Get(keys ...string) Value {
	cur := v

	for _, key := range keys {
		switch cur.kind {
		case Map:
			cur = Of(cur.fields[key])

		case Seq:
			index, ok := parseIndex(key)

			if !ok || index >= len(cur.items) {
				return None
			}

			cur = Of(cur.items[index])

		default:
			return None
		}

		if cur.kind == Absent {
			return None
		}
	}

	return cur
}

// Or returns the raw node, or def when v is absent.
func (v Value) Or(def any) any {
	switch v.kind {
	case Map:
		return v.fields
	case Seq:
		return v.items
	case Scalar:
		return v.scalar
	default:
		return def
	}
}

// AsString renders a scalar. Maps, sequences and absent values report false.
func (v Value) AsString() (string, bool) {
	if v.kind != Scalar {
		return "", false
	}

	switch s := v.scalar.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// Text is AsString with an empty result for anything that is not a scalar.
func (v Value) Text() string {
	s, _ := v.AsString()

	return s
}

// Bool reports the boolean held by v. ok is false for absent values and for
// anything that is not a boolean.
func (v Value) Bool() (value bool, ok bool) {
	if v.kind != Scalar {
		return
	}

	value, ok = v.scalar.(bool)

	return
}

// Strings flattens v and renders every scalar, skipping the ones that do not
// render.
func (v Value) Strings() []string {
	values := Flatten(v)
	list := make([]string, 0, len(values))

	for _, item := range values {
		if s, ok := item.AsString(); ok {
			list = append(list, s)
		}
	}

	return list
}

func Get(data any, keys ...string) Value {
	return Of(data).Get(keys...)
}

// GetMultiple reads several sibling keys below base in one call. The result
// always has len(subKeys) items.
func GetMultiple(data any, base string, subKeys ...string) []Value {
	list := make([]Value, len(subKeys))
	parent := Get(data, base)

	if parent.IsAbsent() {
		return list
	}

	for i, key := range subKeys {
		list[i] = parent.Get(key)
	}

	return list
}

// Flatten merges scalars and arbitrarily nested sequences into one ordered
// list of scalars. Absent arguments contribute nothing; maps are kept whole.
func Flatten(values ...Value) []Value {
	list := make([]Value, 0, len(values))

	var walk func(Value)

	walk = func(v Value) {
		switch v.kind {
		case Absent:
			return
		case Seq:
			for _, item := range v.items {
				walk(Of(item))
			}
		default:
			list = append(list, v)
		}
	}

	for _, v := range values {
		walk(v)
	}

	return list
}

func parseIndex(key string) (int, bool) {
	if key == "" {
		return 0, false
	}

	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	index, err := strconv.Atoi(key)

	if err != nil {
		return 0, false
	}

	return index, true
}
