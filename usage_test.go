package gclp

import (
	"strings"
	"testing"
	"time"
)

var (
	usageCase = []struct {
		about        string
		work         func() (usage string)
		expectSubStr string
	}{{
		"bool option",
		func() string {
			var s0 struct {
				A0 bool `short:"a" default:"0" brief:"ua"`
			}
			return BuildParser("TestCLI", &s0).Help()
		},
		`
Options:
	--help  print this message
	-a      ua  [default: false]
`,
	}, {
		"no option",
		func() string {
			var s0 struct{}
			return BuildParser("TestCLI", &s0).Help()
		},
		`Usage: TestCLI [OPTIONS]

Options:
	--help  print this message
`,
	}, {
		"test option align",
		func() string {
			var s0 struct {
				A0 string `short:"a" long:"a0" brief:"arg 0"`
				A1 string `long:"a1111" brief:"arg 111" default:"11"`
				A2 int    `short:"b" long:"a2" brief:"arg 2" required:"true"`
			}
			return BuildParser("TestCLI", &s0).Help()
		},
		`Usage: TestCLI -b <int> [OPTIONS]

Options:
	--help             print this message
	-a, --a0 <string>  arg 0
	--a1111 <string>   arg 111  [default: "11"]
	-b, --a2 <int>     arg 2  [required]
`,
	}, {
		"parser usage shows examples",
		func() string {
			return New("TestCLI",
				Optional[addr]([]rune{'s'}, nil, "source"),
				Optional[List[int]](nil, []string{"ids"}, ""),
				Optional[time.Duration]([]rune{'w'}, nil, "wait").Default(time.Second),
			).Usage()
		},
		`
Options:
	-s <value>       source  [example: "127.0.0.1:8000"]
	--ids <int,...>  [example: "0,0"]
	-w <duration>    wait  [default: "1s"]
`,
	}, {
		"empty parser",
		func() string {
			return New("TestCLI").Usage()
		},
		"Usage: TestCLI [OPTIONS]\n",
	}}
)

func TestUsage(t *testing.T) {
	for _, c := range usageCase {
		t.Run(c.about, func(t *testing.T) {
			helpText := c.work()
			realTrimmed, expTrimmed := trimEveryLine(helpText), trimEveryLine(c.expectSubStr)
			if !strings.Contains(realTrimmed, expTrimmed) {
				t.Fatalf(
					"error: does not contain expected substr\n>>>real>>>\n%s\n===\n%s\n<<<expect<<<\n"+
						">>>real.trimmed>>>\n%s\n===\n%s\n<<<expect.trimmed<<<\n",
					helpText, c.expectSubStr,
					realTrimmed, expTrimmed,
				)
			}
		})
	}
}

func TestEmptyParserUsage(t *testing.T) {
	if u := New("TestCLI").Usage(); strings.Contains(u, "Options:") {
		t.Fatalf("no option should be listed, got\n%s", u)
	}
}

func trimEveryLine(s string) string {
	ret := []string{}
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		ret = append(ret, strings.TrimSpace(l))
	}
	return strings.Join(ret, "\n")
}
