package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SpecAttributes is an ordered set of open-ended product metadata, e.g.
// wattage, lumens, color temperature. Order is part of the data: it is the
// order attributes were entered in and the order they render in.
type SpecAttributes []SpecAttribute

type SpecAttribute struct {
	Key   string
	Value SpecValue
}

type SpecValueKind int

const (
	SpecString SpecValueKind = iota
	SpecNumber
	SpecBool
)

// SpecValue is a string | number | bool variant.
type SpecValue struct {
	kind SpecValueKind
	str  string
	num  float64
	b    bool
}

func StringValue(s string) SpecValue  { return SpecValue{kind: SpecString, str: s} }
func NumberValue(n float64) SpecValue { return SpecValue{kind: SpecNumber, num: n} }
func BoolValue(b bool) SpecValue      { return SpecValue{kind: SpecBool, b: b} }

func (v SpecValue) Kind() SpecValueKind { return v.kind }
func (v SpecValue) String() string      { return v.str }
func (v SpecValue) Number() float64     { return v.num }
func (v SpecValue) Bool() bool          { return v.b }

func (v SpecValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case SpecNumber:
		return json.Marshal(v.num)
	case SpecBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.str)
	}
}

func (v *SpecValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case string:
		*v = StringValue(val)
	case float64:
		*v = NumberValue(val)
	case bool:
		*v = BoolValue(val)
	default:
		return fmt.Errorf("spec attribute value must be string, number, or bool, got %T", raw)
	}
	return nil
}

// MarshalJSON emits a JSON object with keys in attribute order.
func (a SpecAttributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order, which the standard
// map decoding would lose.
func (a *SpecAttributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("spec attributes must be a JSON object")
	}

	var attrs SpecAttributes
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		var value SpecValue
		switch val := valTok.(type) {
		case string:
			value = StringValue(val)
		case json.Number:
			n, err := val.Float64()
			if err != nil {
				return err
			}
			value = NumberValue(n)
		case bool:
			value = BoolValue(val)
		default:
			return fmt.Errorf("spec attribute %q must be string, number, or bool", key)
		}

		attrs = append(attrs, SpecAttribute{Key: key, Value: value})
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = attrs
	return nil
}
