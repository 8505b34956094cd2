package gclp

import (
	"fmt"
	"reflect"
	"strings"
)

const listSep = ","

// List is a comma separated list, "1,2,3" for List[int]. Its elements may
// be of any type a parameter may have, except another list.
//
// A plain []T parameter is parsed the same way; List adds an example to the
// usage text and a String method.
type List[T any] []T

var _ Parse = &List[int]{}

func (l *List[T]) FromString(s string) error {
	c, err := sliceConverter(reflect.TypeOf(*l))
	if err != nil {
		return err
	}
	v, _, err := c.scan(s)
	if err != nil {
		return err
	}
	*l = v.Interface().(List[T])
	return nil
}

func (l *List[T]) Example() string {
	c, err := sliceConverter(reflect.TypeOf(*l))
	if err != nil {
		return ""
	}
	return c.example
}

func (l List[T]) String() string {
	ss := make([]string, len(l))
	for i, v := range l {
		ss[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(ss, listSep)
}

// sliceConverter splits the text on commas and converts every non-empty
// element, which must be consumed entirely.
func sliceConverter(typ reflect.Type) (converter, error) {
	elemType := typ.Elem()
	if elemType.Kind() == reflect.Slice && !reflect.PointerTo(elemType).Implements(parseType) {
		return converter{}, fmt.Errorf(errNotImplSlice, typ, fmt.Errorf(errNotImplParse, elemType))
	}
	elem, err := resolveConverter(elemType)
	if err != nil {
		return converter{}, fmt.Errorf(errNotImplSlice, typ, err)
	}
	example := exampleOf(elemType, elem)
	if example != "" {
		example += listSep + example
	}
	return converter{
		kind: otherKind,
		scan: func(text string) (reflect.Value, string, error) {
			s := reflect.MakeSlice(typ, 0, 0)
			for _, part := range strings.Split(text, listSep) {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				v, rest, err := elem.scan(part)
				if err != nil {
					return reflect.Zero(typ), "", err
				}
				if rest != "" {
					return reflect.Zero(typ), "", fmt.Errorf("%q leaves %q unparsed", part, rest)
				}
				s = reflect.Append(s, v)
			}
			return s, "", nil
		},
		example: example,
	}, nil
}

// exampleOf returns a word that c parses into a typ.
func exampleOf(typ reflect.Type, c converter) string {
	if c.example != "" {
		return c.example
	}
	if typ == durationType {
		return "1s"
	}
	switch typ.Kind() {
	case reflect.String:
		return "str"
	case reflect.Bool:
		return "false"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return "0"
	case reflect.Float32, reflect.Float64:
		return "3.14"
	case reflect.Complex64, reflect.Complex128:
		return "1+2i"
	}
	return ""
}
