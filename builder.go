package gclp

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	ErrIsHelp = errors.New("argument is help message")
)

const (
	tagShort    = "short"
	tagLong     = "long"
	tagBrief    = "brief"
	tagDefault  = "default"
	tagRequired = "required"
	tagSkip     = "gclp"
)

type parseCmdError struct {
	// err is the error causing parse failed
	// usage is the correct usage, will be printed when
	// error happens
	err   error
	usage string
}

func (pe *parseCmdError) Error() string {
	return pe.err.Error()
}

func (pe *parseCmdError) Unwrap() error {
	return pe.err
}

type postCheckErr struct{ e error }

func (p postCheckErr) Error() string {
	return fmt.Sprintf(errPostCheck, p.e)
}

func (p postCheckErr) Unwrap() error {
	return p.e
}

// StructParser parses command lines into a struct. Every exported field is
// a parameter, configured by tags:
//
//	Count int    `short:"cC" long:"count,cnt" brief:"how many" default:"3"`
//	Name  string `short:"n" required:"true"`
//	Cache string `gclp:"-"` // not a parameter
//
// A field without short and long keys gets its lowercased name as long key.
// The long key "help" is reserved.
type StructParser[T any] struct {
	parser *Parser
	target reflect.Value // *T
	fields []int         // struct field index of every parameter
	help   string

	checkFn func(T) error
}

// Checker sets a function validating every successfully parsed T.
func (p StructParser[T]) Checker(checkFn func(T) error) StructParser[T] {
	p.checkFn = checkFn
	return p
}

// ParseString parses a command line starting with the identifier. On
// success the struct given to BuildParser is updated and a copy returned.
func (p StructParser[T]) ParseString(commandLine string) (T, error) {
	return p.run(SplitWords(commandLine), func() { p.parser.Parse(commandLine) })
}

// ParseArgs is ParseString for argv-style input, identifier first.
func (p StructParser[T]) ParseArgs(args []string) (T, error) {
	return p.run(SplitWords(flattenArgs(args)), func() { p.parser.ParseArgs(args) })
}

// Parse parses os.Args, standing the identifier in for the program name.
// It prints usage and exits on --help, and on errors after printing them.
func (p StructParser[T]) Parse() T {
	args := append([]string{p.parser.veri.id()}, os.Args[1:]...)
	res, err := p.ParseArgs(args)
	switch {
	case errors.Is(err, ErrIsHelp):
		fmt.Print(p.help)
		os.Exit(0)
	case err != nil:
		fmt.Fprint(os.Stderr, color.RedString("%v\n", err))
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The usage is:")
		fmt.Fprint(os.Stderr, p.help)
		os.Exit(2)
	}
	return res
}

func (p StructParser[T]) Help() string {
	return p.help
}

func (p StructParser[T]) run(words []string, parse func()) (zero T, err error) {
	if wantsHelp(words) {
		return zero, ErrIsHelp
	}
	p.parser.Clear()
	parse()
	if err := p.parser.Err(); err != nil {
		return zero, &parseCmdError{err: err, usage: p.help}
	}

	structVal := p.target.Elem()
	for i, field := range p.fields {
		structVal.Field(field).Set(p.parser.params.at(i).value())
	}
	res := structVal.Interface().(T)
	if p.checkFn != nil {
		if err := p.checkFn(res); err != nil {
			return res, postCheckErr{err}
		}
	}
	return res, nil
}

// wantsHelp reports whether --help follows the identifier.
func wantsHelp(words []string) bool {
	for i, w := range words {
		if i > 0 && w == helpOption {
			return true
		}
	}
	return false
}

// BuildParser binds the struct u points to. It panics on a bad
// declaration: an unsupported field type, an unparsable default, a key
// used twice.
func BuildParser[T any](identifier string, u *T) StructParser[T] {
	if err := checkType(u); err != nil {
		panic(err)
	}
	target := reflect.ValueOf(u)
	params, fields := buildParamList(target.Elem().Type())
	parser := New(identifier, params...)
	return StructParser[T]{
		parser: parser,
		target: target,
		fields: fields,
		help:   makeUsageText(identifier, parser.params, true),
	}
}

func checkType(u any) error {
	ptr := reflect.ValueOf(u) // any -> *T
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		return errors.New(errNotStructPtr)
	}
	if ptr.Elem().Kind() != reflect.Struct {
		return errors.New(errNotStructPtr)
	}
	return nil
}

func buildParamList(structDef reflect.Type) (params []Param, fields []int) {
	for i := 0; i < structDef.NumField(); i++ {
		defField := structDef.Field(i)
		if defField.Tag.Get(tagSkip) == "-" {
			continue
		}
		if !defField.IsExported() {
			panic(fmt.Errorf(errUnexported, defField.Name))
		}
		params = append(params, buildParam(defField))
		fields = append(fields, i)
	}
	return params, fields
}

func buildParam(defField reflect.StructField) *descriptor {
	shorts := []rune(defField.Tag.Get(tagShort))
	longs := splitLongKeys(defField.Tag.Get(tagLong))
	if len(shorts) == 0 && len(longs) == 0 {
		longs = []string{strings.ToLower(defField.Name)}
	}
	for _, l := range longs {
		if l == strings.TrimLeft(helpOption, "-") {
			panic(fmt.Errorf(errHelpIsReserved, defField.Name))
		}
	}

	required := false
	if s, ok := defField.Tag.Lookup(tagRequired); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			panic(fmt.Errorf(errBadRequired, s, defField.Name))
		}
		required = b
	}

	d := newDescriptor(
		defField.Type, shorts, longs, defField.Tag.Get(tagBrief), required,
	)
	if s, ok := defField.Tag.Lookup(tagDefault); ok {
		v, rest, err := d.conv.scan(s)
		if err != nil {
			panic(fmt.Errorf(errParseDefault, s, defField.Name, err))
		}
		if rest != "" {
			panic(fmt.Errorf(errUnparsedDef, s, defField.Name, rest))
		}
		d.setDefault(v, s)
	}
	return d
}

func splitLongKeys(tag string) []string {
	longs := []string{}
	for _, l := range strings.Split(tag, ",") {
		if l = strings.TrimSpace(l); l != "" {
			longs = append(longs, l)
		}
	}
	return longs
}
