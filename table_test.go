package argtab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableParse(t *testing.T) {
	verbose := Lit0("v", "verbose", "")
	value := IntN("n", "value", "", 1, 3, "")
	name := Str0("s", "name", "", "")

	tbl := New("test", verbose, value, name)
	err := tbl.Parse([]string{"-v", "--value=10", "-n", "0x10", "--name", "bob"})
	require.NoError(t, err)

	assert.Equal(t, 1, verbose.Count())
	assert.Equal(t, []int64{10, 16}, value.Values())
	assert.Equal(t, []string{"bob"}, name.Values())
}

func TestTableParseShortCluster(t *testing.T) {
	verbose := LitN("v", "verbose", 0, 3, "")
	value := Int0("n", "value", "", "")

	tbl := New("test", verbose, value)
	require.NoError(t, tbl.Parse([]string{"-vvn", "5"}))
	assert.Equal(t, 2, verbose.Count())
	assert.Equal(t, []int64{5}, value.Values())

	require.NoError(t, tbl.Parse([]string{"-vn=6"}))
	assert.Equal(t, 1, verbose.Count())
	assert.Equal(t, []int64{6}, value.Values())
}

func TestTableParseDoubleDash(t *testing.T) {
	value := Int0("n", "value", "", "")
	tbl := New("test", value)

	require.NoError(t, tbl.Parse([]string{"-n", "1", "--", "-n", "2"}))
	assert.Equal(t, []int64{1}, value.Values())
	assert.Equal(t, []string{"-n", "2"}, tbl.Args())
}

func TestTableParseStopsAtPositional(t *testing.T) {
	value := Int0("n", "value", "", "")
	tbl := New("test", value)

	require.NoError(t, tbl.Parse([]string{"-n", "1", "input.txt", "-n"}))
	assert.Equal(t, []string{"input.txt", "-n"}, tbl.Args())
}

func TestTableParseUnknownOption(t *testing.T) {
	tbl := New("test", Lit0("v", "verbose", ""))
	err := tbl.Parse([]string{"--bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `test: invalid option "--bogus"`)
}

func TestTableParseMissingArgument(t *testing.T) {
	tbl := New("test", Int0("n", "value", "", ""))
	err := tbl.Parse([]string{"-n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `test: option "-n" requires an argument`)
}

func TestTableParseBadInt(t *testing.T) {
	tbl := New("test", Int0("n", "value", "", ""))
	err := tbl.Parse([]string{"-n", "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `test: invalid argument "abc" to option -n <int>`)
}

func TestTableParseErrorsAccumulate(t *testing.T) {
	value := Int1("n", "value", "", "")
	tbl := New("test", value)

	err := tbl.Parse([]string{"--bogus", "-n", "zzz"})
	require.Error(t, err)

	perrs, ok := err.(*ParseErrors)
	require.True(t, ok)
	require.Len(t, perrs.Errors(), 3)
	assert.Equal(t, ErrUnknownOption, perrs.Errors()[0].Kind)
	assert.Equal(t, ErrBadInt, perrs.Errors()[1].Kind)
	assert.Equal(t, ErrMinCount, perrs.Errors()[2].Kind)

	sb := strings.Builder{}
	perrs.Report(&sb, "test")
	assert.Equal(t,
		"test: invalid option \"--bogus\"\n"+
			"test: invalid argument \"zzz\" to option -n <int>\n"+
			"test: missing option -n <int>\n",
		sb.String())
}

func TestTableParseOptionalValue(t *testing.T) {
	value := IntN("n", "value", "", 0, 2, "")
	value.OptionalValue = true
	tbl := New("test", value)

	// without an inline value the occurrence counts but stores nothing,
	// and the next argument is not consumed
	require.NoError(t, tbl.Parse([]string{"-n", "--value=5"}))
	assert.Equal(t, 2, value.Count())
	assert.Equal(t, []int64{0, 5}, value.Values())
	assert.Empty(t, tbl.Args())
}

func TestTableParseEnv(t *testing.T) {
	value := Int0("n", "value", "", "")
	value.EnvVar = "TEST_VALUE"
	tbl := New("test", value)
	tbl.Env = NewMapEnv(map[string]string{"TEST_VALUE": "0b101"})

	require.NoError(t, tbl.Parse(nil))
	assert.Equal(t, []int64{5}, value.Values())

	// command-line occurrences win over the environment
	require.NoError(t, tbl.Parse([]string{"-n", "9"}))
	assert.Equal(t, []int64{9}, value.Values())
}

func TestTableParseEnvBadValue(t *testing.T) {
	value := Int0("n", "value", "", "")
	value.EnvVar = "TEST_VALUE"
	tbl := New("test", value)
	tbl.Env = NewMapEnv(map[string]string{"TEST_VALUE": "nope"})

	err := tbl.Parse(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid argument "nope"`)
}

func TestTableReparse(t *testing.T) {
	value := IntN("n", "value", "", 0, 2, "")
	tbl := New("test", value)

	require.NoError(t, tbl.Parse([]string{"-n", "1", "-n", "2"}))
	assert.Equal(t, []int64{1, 2}, value.Values())

	require.NoError(t, tbl.Parse([]string{"-n", "3"}))
	assert.Equal(t, []int64{3}, value.Values())
}

func TestBuildDuplicateTrigger(t *testing.T) {
	_, err := Build("test",
		Lit0("v", "verbose", ""),
		Int0("v", "value", "", ""),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate option -v")

	_, err = Build("test",
		Lit0("", "verbose", ""),
		Int0("", "verbose", "", ""),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate option --verbose")
}

func TestNewPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		New("test", Lit0("v", "", ""), Lit0("v", "", ""))
	})
}
