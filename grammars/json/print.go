package json

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Print returns the JSON text of v,
// with object keys in sorted order and no insignificant white space.
// The value must be of one of the types returned by Parse.
func Print(v interface{}) string {
	var s strings.Builder
	write(&s, v)
	return s.String()
}

func write(s *strings.Builder, v interface{}) {
	switch v := v.(type) {
	case nil:
		s.WriteString("null")
	case bool:
		s.WriteString(strconv.FormatBool(v))
	case float64:
		s.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		quote(s, v)
	case []interface{}:
		s.WriteRune('[')
		for i, e := range v {
			if i > 0 {
				s.WriteRune(',')
			}
			write(s, e)
		}
		s.WriteRune(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s.WriteRune('{')
		for i, k := range keys {
			if i > 0 {
				s.WriteRune(',')
			}
			quote(s, k)
			s.WriteRune(':')
			write(s, v[k])
		}
		s.WriteRune('}')
	default:
		panic(fmt.Sprintf("impossible JSON value type: %T", v))
	}
}

func quote(s *strings.Builder, str string) {
	s.WriteRune('"')
	for _, r := range str {
		switch {
		case r == '"' || r == '\\':
			s.WriteRune('\\')
			s.WriteRune(r)
		case r < 0x20:
			fmt.Fprintf(s, `\u%04x`, r)
		default:
			s.WriteRune(r)
		}
	}
	s.WriteRune('"')
}
