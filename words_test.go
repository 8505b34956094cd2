package gclp

import (
	"testing"

	"github.com/google/shlex"
	"gotest.tools/assert"
)

func TestSplitWords(t *testing.T) {
	cases := []struct {
		about string
		input string
		exp   []string
	}{{
		"empty", "", []string{},
	}, {
		"only delimiters", " \t\n  ", []string{},
	}, {
		"plain words", "TestCLI -a  3", []string{"TestCLI", "-a", "3"},
	}, {
		"double quoted", `TestCLI -s "hello world"`, []string{"TestCLI", "-s", "hello world"},
	}, {
		"single quoted", `'a b' c`, []string{"a b", "c"},
	}, {
		"quote glued to text", `ab"c d"e`, []string{"abc de"},
	}, {
		"other quote is literal", `"it's" 'say "hi"'`, []string{"it's", `say "hi"`},
	}, {
		"escaped space", `a\ b c`, []string{"a b", "c"},
	}, {
		"escaped quote", `\"x\"`, []string{`"x"`},
	}, {
		"escaped backslash", `a\\b`, []string{`a\b`},
	}, {
		"trailing backslash dropped", `ab\`, []string{"ab"},
	}, {
		"unterminated quote", `x "abc def`, []string{"x", "abc def"},
	}, {
		"empty quotes give no word", `a "" b`, []string{"a", "b"},
	}, {
		"non ascii", "-é ünï", []string{"-é", "ünï"},
	}}
	for _, c := range cases {
		t.Run(c.about, func(t *testing.T) {
			assert.DeepEqual(t, SplitWords(c.input), c.exp)
		})
	}
}

// Well-formed lines without comments split like a POSIX shell would.
func TestSplitWordsLikeShell(t *testing.T) {
	lines := []string{
		"TestCLI -a 3 --bb 4",
		`TestCLI --name "John Smith" -v`,
		`prog 'single quoted' "double quoted" plain`,
		`x a\ b\ c "d e"f`,
		"tabs\tand\nnewlines",
		`"quoted key" --x=y`,
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			exp, err := shlex.Split(line)
			assert.NilError(t, err)
			assert.DeepEqual(t, SplitWords(line), exp)
		})
	}
}

func TestKeyClassifier(t *testing.T) {
	const (
		none = iota
		short
		long
		complexKey
	)
	cases := []struct {
		word string
		exp  int
	}{
		{"a", none},
		{"-", none},
		{"--", none},
		{"-a", short},
		{"-é", short},
		{"--a", long},
		{"--aa", long},
		{"--a-b", long},
		{"-ab", complexKey},
		{"-abc", complexKey},
		{"-a-", none}, // the third character must not be a dash
		{"---a", none},
		{"3", none},
		{"-3", short},
	}
	for _, c := range cases {
		t.Run(c.word, func(t *testing.T) {
			got := none
			switch {
			case isShortKey(c.word):
				got = short
			case isLongKey(c.word):
				got = long
			case isKey(c.word) && isComplexKey(c.word):
				got = complexKey
			}
			assert.Equal(t, got, c.exp)
		})
	}
}

func TestRemoveDash(t *testing.T) {
	assert.Equal(t, removeDash("--aa"), "aa")
	assert.Equal(t, removeDash("-a"), "a")
	assert.Equal(t, removeDash("a-b"), "a-b")
}
