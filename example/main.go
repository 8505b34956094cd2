package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/canoriz/gclp"
)

// keys, brief, default and required are set in struct field's tags
// supported types: string, bool, integers, floats, complex numbers,
// time.Duration, slices of them, and types implementing gclp.Parse
type options struct {
	Host string `short:"h" long:"host" brief:"hostname" required:"true"`
	Port uint16 `short:"p" long:"port" default:"80" brief:"port"`

	Num   int     `short:"n"`
	Ratio float64 `default:"3.14159"`

	Tcp bool `short:"t" brief:"use tcp"`
	Udp bool `short:"u" brief:"use udp"`

	Names gclp.List[string] `long:"names" default:"alice,bob" brief:"names"`
	Index []int             `short:"i" default:"1,2,3"`
}

func main() {
	var op options // init a empty argument struct

	// build parser with checkArgumentValidity checker, then parse a
	// command line, identifier first
	parser := gclp.BuildParser("server", &op).Checker(checkArgumentValidity)
	_, err := parser.ParseString(
		`server -h host.com -n 70 -i 1,3,5 -t --names "cindy,david"`,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Printf("parse string\n%+v\n", op)

	// parse command line arguments, on error usage is printed and
	// the program exits
	parser.Parse()
	fmt.Printf("parse command line\n%+v\n", op)

	// parameters can also be declared one by one
	verbose := gclp.Optional[bool]([]rune{'v'}, []string{"verbose"}, "talk more")
	level := gclp.Required[int]([]rune{'l'}, []string{"level"}, "level").Default(1)
	p := gclp.New("server", verbose, level)
	p.Parse("server -v --level 3")
	if p.Code() != gclp.NoError {
		fmt.Fprint(os.Stderr, p.ErrorMessage())
		return
	}
	fmt.Printf("verbose: %v, level: %v\n", verbose.Value(), level.Value())
}

// define a post parse checker, return error if none of tcp or udp is enabled,
// Parse() will exit and print usage, ParseString() will return this error
func checkArgumentValidity(v options) error {
	if v.Tcp == v.Udp {
		return errors.New("exactly one of tcp or udp must be enabled")
	}
	return nil
}
