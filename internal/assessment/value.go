package assessment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindNumeric
	KindToken
	KindMultiToken
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindToken:
		return "token"
	case KindMultiToken:
		return "multi-token"
	default:
		return "invalid"
	}
}

// Value is a recorded answer value. It is one of three variants:
// a scale number, a single categorical token, or a multi-select token list.
// Values are decoded once at the JSON boundary and never re-parsed.
type Value struct {
	kind   Kind
	num    float64
	token  string
	tokens []string
}

// Numeric returns a scale value.
func Numeric(f float64) Value { return Value{kind: KindNumeric, num: f} }

// Token returns a single categorical value.
func Token(s string) Value { return Value{kind: KindToken, token: s} }

// MultiToken returns a multi-select value.
func MultiToken(tokens ...string) Value {
	cp := make([]string, len(tokens))
	copy(cp, tokens)
	return Value{kind: KindMultiToken, tokens: cp}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsNumeric returns the number when v is numeric.
func (v Value) AsNumeric() (float64, bool) {
	return v.num, v.kind == KindNumeric
}

// AsToken returns the token when v is a single token.
func (v Value) AsToken() (string, bool) {
	return v.token, v.kind == KindToken
}

// AsTokens returns the token list when v is a multi-select value.
func (v Value) AsTokens() ([]string, bool) {
	return v.tokens, v.kind == KindMultiToken
}

// IsZero reports whether v holds no variant.
func (v Value) IsZero() bool { return v.kind == KindInvalid }

// Text renders v as plain text, used when a value is free-response prose.
func (v Value) Text() string {
	switch v.kind {
	case KindNumeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindToken:
		return v.token
	case KindMultiToken:
		return strings.Join(v.tokens, ", ")
	default:
		return ""
	}
}

// MarshalJSON encodes the variant as a JSON number, string, or string array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumeric:
		return json.Marshal(v.num)
	case KindToken:
		return json.Marshal(v.token)
	case KindMultiToken:
		if v.tokens == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.tokens)
	default:
		return nil, errors.New("marshal answer value: no variant set")
	}
}

// UnmarshalJSON decodes a JSON number, string, or array of strings.
// Any other shape is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseValue decodes raw JSON into a Value.
func ParseValue(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Value{}, errors.New("answer value: empty input")
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Value{}, fmt.Errorf("answer value: %w", err)
		}
		return Token(s), nil
	case c == '[':
		// []*string keeps null elements visible; []string would turn them into "".
		var elems []*string
		if err := json.Unmarshal(data, &elems); err != nil {
			return Value{}, fmt.Errorf("answer value: array must contain only strings: %w", err)
		}
		ss := make([]string, len(elems))
		for i, e := range elems {
			if e == nil {
				return Value{}, fmt.Errorf("answer value: array element %d is null", i)
			}
			ss[i] = *e
		}
		return MultiToken(ss...), nil
	case c == '-' || (c >= '0' && c <= '9'):
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return Value{}, fmt.Errorf("answer value: %w", err)
		}
		return Numeric(f), nil
	default:
		return Value{}, fmt.Errorf("answer value: unsupported JSON %s", truncate(string(data), 32))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
