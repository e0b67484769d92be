package formenc

import (
	"strings"

	"github.com/jongio/urlkit/percentenc"
)

// formSet is the escape set of the urlencoded serializer: everything except
// ASCII alphanumerics and '*', '-', '.', '_'. Space is handled separately,
// as '+'.
var formSet = percentenc.NonAlphanumeric.
	Remove('*').
	Remove('-').
	Remove('.').
	Remove('_')

// Pair is one key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Values is an ordered list of key/value pairs. Order and duplicates are
// preserved exactly as parsed.
type Values []Pair

// Parse splits input on '&' into key/value pairs, decoding '+' as space and
// percent-escapes leniently. Empty chunks ("a=1&&b=2") are skipped. A chunk
// without '=' becomes a pair with an empty value.
func Parse(input string) Values {
	var values Values
	for chunk := range strings.SplitSeq(input, "&") {
		if chunk == "" {
			continue
		}
		key, value, _ := strings.Cut(chunk, "=")
		values = append(values, Pair{
			Key:   decode(key),
			Value: decode(value),
		})
	}
	return values
}

// Encode serializes the pairs back to urlencoded form, in order.
func Encode(values Values) string {
	var sb strings.Builder
	for i, pair := range values {
		if i > 0 {
			sb.WriteByte('&')
		}
		encodeTo(&sb, pair.Key)
		sb.WriteByte('=')
		encodeTo(&sb, pair.Value)
	}
	return sb.String()
}

// Encode serializes v back to urlencoded form, in order.
func (v Values) Encode() string { return Encode(v) }

// Get returns the value of the first pair with the given key.
func (v Values) Get(key string) (value string, ok bool) {
	for _, pair := range v {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// GetAll returns the values of every pair with the given key, in order.
func (v Values) GetAll(key string) []string {
	var all []string
	for _, pair := range v {
		if pair.Key == key {
			all = append(all, pair.Value)
		}
	}
	return all
}

// Add appends a pair, keeping existing entries.
func (v *Values) Add(key, value string) {
	*v = append(*v, Pair{Key: key, Value: value})
}

// Set replaces the first pair with the given key and removes the rest;
// a missing key appends.
func (v *Values) Set(key, value string) {
	out := (*v)[:0]
	replaced := false
	for _, pair := range *v {
		if pair.Key == key {
			if !replaced {
				pair.Value = value
				out = append(out, pair)
				replaced = true
			}
			continue
		}
		out = append(out, pair)
	}
	if !replaced {
		out = append(out, Pair{Key: key, Value: value})
	}
	*v = out
}

// Del removes every pair with the given key.
func (v *Values) Del(key string) {
	out := (*v)[:0]
	for _, pair := range *v {
		if pair.Key != key {
			out = append(out, pair)
		}
	}
	*v = out
}

func decode(s string) string {
	if strings.ContainsRune(s, '+') {
		s = strings.ReplaceAll(s, "+", " ")
	}
	return percentenc.DecodeUTF8Lossy(s)
}

func encodeTo(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b == ' ':
			sb.WriteByte('+')
		case formSet.ShouldEncode(b):
			sb.WriteString(percentenc.EncodeByte(b))
		default:
			sb.WriteByte(b)
		}
	}
}
