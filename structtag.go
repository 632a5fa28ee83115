package argtab

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type fieldTags struct {
	exclude     bool
	required    bool
	optional    bool
	embed       bool
	long        string
	short       string
	placeholder string
	env         string
	help        string
	min         int
	hasMin      bool
	max         int
	hasMax      bool
}

func parseFieldTags(tag reflect.StructTag) (fieldTags, error) {
	t := fieldTags{}
	m := parseTagPairs(tag.Get("arg"))
	pop := func(key string) (string, bool) {
		val, ok := m[key]
		if ok {
			delete(m, key)
		}
		return val, ok
	}

	if _, ok := pop("-"); ok {
		t.exclude = true
	}
	if _, ok := pop("required"); ok {
		t.required = true
	}
	if _, ok := pop("optional"); ok {
		t.optional = true
	}
	if _, ok := pop("embed"); ok {
		t.embed = true
	}

	if long, ok := pop("long"); ok {
		t.long = long
	}
	if short, ok := pop("short"); ok {
		if utf8.RuneCountInString(short) != 1 {
			return t, errors.New("short name must be 1 letter")
		}
		t.short = short
	}
	if placeholder, ok := pop("placeholder"); ok {
		t.placeholder = placeholder
	}
	if env, ok := pop("env"); ok {
		t.env = env
	}
	if help, ok := pop("help"); ok {
		t.help = help
	}

	if s, ok := pop("min"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return t, errors.Errorf("invalid min %q", s)
		}
		t.min = n
		t.hasMin = true
	}
	if s, ok := pop("max"); ok {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return t, errors.Errorf("invalid max %q", s)
		}
		t.max = n
		t.hasMax = true
	}

	if len(m) > 0 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return t, errors.Errorf("unknown tags: %s", strings.Join(keys, ", "))
	}

	return t, nil
}

// parseTagPairs tokenizes the inner text of an arg struct tag into
// key/value pairs. Values containing commas can be single-quoted, e.g.
// `arg:"help='min, max and friends'"`.
func parseTagPairs(tagInner string) map[string]string {
	ret := map[string]string{}

	key := strings.Builder{}
	val := strings.Builder{}
	inKey := true
	inQuote := false
	for _, c := range tagInner {
		if inKey {
			switch c {
			case ',':
				ret[key.String()] = ""
				key.Reset()
			case '=':
				inKey = false
			case ' ':
				break
			default:
				key.WriteRune(c)
			}
		} else if inQuote {
			switch c {
			case '\'':
				inQuote = false
			default:
				val.WriteRune(c)
			}
		} else {
			switch c {
			case ',':
				ret[key.String()] = val.String()
				key.Reset()
				val.Reset()
				inKey = true
			case '\'':
				inQuote = true
			default:
				val.WriteRune(c)
			}
		}
	}
	if key.Len() > 0 {
		ret[key.String()] = val.String()
	}

	return ret
}
