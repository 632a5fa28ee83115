package argtab

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagPairs(t *testing.T) {
	cases := map[string]map[string]string{
		"":         {},
		"required": {"required": ""},
		"short=c,help=how many": {
			"short": "c",
			"help":  "how many",
		},
		"help='min, max and friends',env=COUNT": {
			"help": "min, max and friends",
			"env":  "COUNT",
		},
		"min=1, max=3": {
			"min": "1",
			"max": "3",
		},
	}
	for in, expected := range cases {
		assert.Equal(t, expected, parseTagPairs(in), "input %q", in)
	}
}

func TestParseFieldTags(t *testing.T) {
	tags, err := parseFieldTags(reflect.StructTag(`arg:"short=c,long=count,required,min=2,max=5,optional,env=COUNT,placeholder=<n>,help=how many"`))
	require.NoError(t, err)
	assert.Equal(t, fieldTags{
		required:    true,
		optional:    true,
		long:        "count",
		short:       "c",
		placeholder: "<n>",
		env:         "COUNT",
		help:        "how many",
		min:         2,
		hasMin:      true,
		max:         5,
		hasMax:      true,
	}, tags)
}

func TestParseFieldTagsErrors(t *testing.T) {
	_, err := parseFieldTags(reflect.StructTag(`arg:"short=abc"`))
	assert.Error(t, err)

	_, err = parseFieldTags(reflect.StructTag(`arg:"max=0"`))
	assert.Error(t, err)

	_, err = parseFieldTags(reflect.StructTag(`arg:"min=x"`))
	assert.Error(t, err)

	_, err = parseFieldTags(reflect.StructTag(`arg:"bogus=1"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tags: bogus")
}

func TestParseFieldTagsEmpty(t *testing.T) {
	tags, err := parseFieldTags(reflect.StructTag(""))
	require.NoError(t, err)
	assert.Equal(t, fieldTags{}, tags)
}
