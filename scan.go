package gclp

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Parse is implemented by custom value types. FromString receives every
// argument word following the key, joined by a single space. Example is shown
// in usage text.
type Parse interface {
	FromString(s string) error
	Example() string
}

// ParseOnce is a Parse whose FromString has side effects, reading a file for
// instance. Its Example is shown in usage text but never parsed.
type ParseOnce interface {
	Parse
	statefulOrImpure()
}

var (
	parseType           = reflect.TypeOf((*Parse)(nil)).Elem()
	parseOnceType       = reflect.TypeOf((*ParseOnce)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	durationType        = reflect.TypeOf(time.Duration(0))

	errNoArgument = errors.New("no argument given")
)

type valueKind uint8

const (
	otherKind valueKind = iota
	stringKind
	boolKind
)

// scanFn converts text into a value. rest holds the words it did not consume.
type scanFn func(text string) (v reflect.Value, rest string, err error)

// converter is the conversion policy of one value type, picked once when the
// parameter is declared.
type converter struct {
	kind    valueKind
	scan    scanFn
	example string
}

func resolveConverter(typ reflect.Type) (converter, error) {
	switch {
	case typ.Kind() == reflect.Pointer && typ.Implements(parseType):
		return checkExample(typ, converter{
			kind: otherKind,
			scan: func(text string) (reflect.Value, string, error) {
				ptr := reflect.New(typ.Elem())
				return ptr, "", ptr.Interface().(Parse).FromString(text)
			},
			example: reflect.New(typ.Elem()).Interface().(Parse).Example(),
		})
	case reflect.PointerTo(typ).Implements(parseType):
		return checkExample(reflect.PointerTo(typ), converter{
			kind: otherKind,
			scan: func(text string) (reflect.Value, string, error) {
				ptr := reflect.New(typ)
				return ptr.Elem(), "", ptr.Interface().(Parse).FromString(text)
			},
			example: reflect.New(typ).Interface().(Parse).Example(),
		})
	case reflect.PointerTo(typ).Implements(textUnmarshalerType):
		return converter{
			kind: otherKind,
			scan: func(text string) (reflect.Value, string, error) {
				ptr := reflect.New(typ)
				err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text))
				return ptr.Elem(), "", err
			},
		}, nil
	case typ == durationType:
		return converter{kind: otherKind, scan: firstWord(typ, parseDuration)}, nil
	}

	switch typ.Kind() {
	case reflect.String:
		return converter{
			kind: stringKind,
			scan: func(text string) (reflect.Value, string, error) {
				v := reflect.New(typ).Elem()
				v.SetString(text)
				return v, "", nil
			},
		}, nil
	case reflect.Bool:
		return converter{kind: boolKind, scan: firstWord(typ, parseBool)}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return converter{kind: otherKind, scan: firstWord(typ, parseInt)}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return converter{kind: otherKind, scan: firstWord(typ, parseUint)}, nil
	case reflect.Float32, reflect.Float64:
		return converter{kind: otherKind, scan: firstWord(typ, parseFloat)}, nil
	case reflect.Complex64, reflect.Complex128:
		return converter{kind: otherKind, scan: firstWord(typ, parseComplex)}, nil
	case reflect.Slice:
		return sliceConverter(typ)
	}
	return converter{}, fmt.Errorf(errNotImplParse, typ)
}

// checkExample rejects a Parse type whose Example cannot be parsed by its
// own FromString. ptrType is the pointer type implementing Parse.
func checkExample(ptrType reflect.Type, c converter) (converter, error) {
	if ptrType.Implements(parseOnceType) {
		return c, nil
	}
	if _, _, err := c.scan(c.example); err != nil {
		return converter{}, fmt.Errorf(errNotValidExample, ptrType.Elem(), c.example)
	}
	return c, nil
}

// firstWord builds a scanFn reading only the first word of the text, the
// way a stream extraction would.
func firstWord(typ reflect.Type, set func(word string, v reflect.Value) error) scanFn {
	return func(text string) (reflect.Value, string, error) {
		word, rest := splitFirst(text)
		v := reflect.New(typ).Elem()
		if word == "" {
			return v, rest, errNoArgument
		}
		return v, rest, set(word, v)
	}
}

func splitFirst(text string) (first, rest string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], streamDelim)
}

// parseBool takes the boolean words first and falls back to an integer word,
// nonzero meaning true.
func parseBool(word string, v reflect.Value) error {
	switch word {
	case "true":
		v.SetBool(true)
		return nil
	case "false":
		v.SetBool(false)
		return nil
	}
	i, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is neither a boolean nor an integer", word)
	}
	v.SetBool(i != 0)
	return nil
}

func parseInt(word string, v reflect.Value) error {
	i, err := strconv.ParseInt(word, 0, v.Type().Bits())
	if err == nil {
		v.SetInt(i)
	}
	return err
}

func parseUint(word string, v reflect.Value) error {
	u, err := strconv.ParseUint(word, 0, v.Type().Bits())
	if err == nil {
		v.SetUint(u)
	}
	return err
}

func parseFloat(word string, v reflect.Value) error {
	f, err := strconv.ParseFloat(word, v.Type().Bits())
	if err == nil {
		v.SetFloat(f)
	}
	return err
}

func parseComplex(word string, v reflect.Value) error {
	c, err := strconv.ParseComplex(word, v.Type().Bits())
	if err == nil {
		v.SetComplex(c)
	}
	return err
}

func parseDuration(word string, v reflect.Value) error {
	d, err := time.ParseDuration(word)
	if err == nil {
		v.SetInt(int64(d))
	}
	return err
}
