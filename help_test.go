package argtab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func helpTestTable() *Table {
	return New("test",
		Lit0("v", "verbose", "print more detail"),
		IntN("n", "count", "", 1, 4, "how many"),
	)
}

func TestWriteUsage(t *testing.T) {
	sb := strings.Builder{}
	helpTestTable().WriteUsage(&sb)
	assert.Equal(t, "test [-v] -n <int>...\n", sb.String())
}

func TestWriteHelp(t *testing.T) {
	expected := `USAGE:
    test [-v] -n <int>...

OPTIONS:
    -v, --verbose      print more detail
    -n, --count <int>  how many

`
	assert.Equal(t, expected, helpTestTable().HelpString())
}

func TestWriteGlossary(t *testing.T) {
	sb := strings.Builder{}
	helpTestTable().WriteGlossary(&sb)
	assert.Equal(t,
		"-v, --verbose      print more detail\n"+
			"-n, --count <int>  how many\n",
		sb.String())
}

func TestSyntaxString(t *testing.T) {
	opt := Int0("c", "count", "", "")
	assert.Equal(t, "[-c <int>]", syntaxString(opt))

	opt = Int1("", "count", "", "")
	assert.Equal(t, "--count <int>", syntaxString(opt))

	opt = IntN("c", "", "", 0, 3, "")
	assert.Equal(t, "[-c <int>]...", syntaxString(opt))

	optional := Int0("c", "", "", "")
	optional.OptionalValue = true
	assert.Equal(t, "[-c [<int>]]", syntaxString(optional))

	lit := Lit0("v", "verbose", "")
	assert.Equal(t, "[-v]", syntaxString(lit))
}
