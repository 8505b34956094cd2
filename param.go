package gclp

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Param is a declared command-line parameter. It is implemented by
// *Descriptor[T]; the parser only relies on the type-erased descriptor
// underneath.
type Param interface {
	param() *descriptor
}

// descriptor holds the keys, the kind and the value slots of one parameter.
type descriptor struct {
	shorts   []rune
	longs    []string
	brief    string
	required bool

	typ  reflect.Type
	conv converter

	def     reflect.Value // invalid when there is no default
	defText string
	val     reflect.Value // invalid until assigned in the current parse
	fail    bool
}

func newDescriptor(
	typ reflect.Type,
	shorts []rune, longs []string,
	brief string, required bool,
) *descriptor {
	conv, err := resolveConverter(typ)
	if err != nil {
		panic(err)
	}
	if len(shorts) == 0 && len(longs) == 0 {
		panic(fmt.Errorf(errNoKey, brief))
	}
	for _, r := range shorts {
		if r == dash || unicode.IsSpace(r) {
			panic(fmt.Errorf(errBadShortKey, r))
		}
	}
	for _, l := range longs {
		if l == "" || strings.HasPrefix(l, string(dash)) ||
			strings.IndexFunc(l, unicode.IsSpace) >= 0 {
			panic(fmt.Errorf(errBadLongKey, l))
		}
	}
	return &descriptor{
		shorts:   append([]rune(nil), shorts...),
		longs:    append([]string(nil), longs...),
		brief:    brief,
		required: required,
		typ:      typ,
		conv:     conv,
	}
}

func (d *descriptor) param() *descriptor {
	return d
}

func (d *descriptor) hasValue() bool {
	return d.val.IsValid() || d.def.IsValid()
}

func (d *descriptor) hasDefault() bool {
	return d.def.IsValid()
}

// value returns the assigned value, else the default, else the zero value.
func (d *descriptor) value() reflect.Value {
	switch {
	case d.val.IsValid():
		return d.val
	case d.def.IsValid():
		return d.def
	}
	return reflect.Zero(d.typ)
}

func (d *descriptor) isBoolean() bool {
	return d.conv.kind == boolKind
}

func (d *descriptor) containsShort(r rune) bool {
	for _, s := range d.shorts {
		if s == r {
			return true
		}
	}
	return false
}

func (d *descriptor) containsLong(l string) bool {
	for _, s := range d.longs {
		if s == l {
			return true
		}
	}
	return false
}

// assign stores v unless the descriptor already failed in this parse.
func (d *descriptor) assign(v reflect.Value) bool {
	if d.fail {
		return false
	}
	d.val = v
	return true
}

// scanText converts text and stores the result. A failed conversion marks
// the descriptor and leaves the stored value alone.
func (d *descriptor) scanText(text string) (rest string) {
	if d.fail {
		return ""
	}
	v, rest, err := d.conv.scan(text)
	if err != nil {
		d.fail = true
		return ""
	}
	d.assign(v)
	return rest
}

// setDefault stores v, shown in usage text as text.
func (d *descriptor) setDefault(v reflect.Value, text string) {
	d.def = v
	d.defText = text
}

// reset forgets what the previous parse assigned.
func (d *descriptor) reset() {
	d.val = reflect.Value{}
	d.fail = false
}

// keys lists every alias with its dashes, short keys first.
func (d *descriptor) keys() []string {
	ks := make([]string, 0, len(d.shorts)+len(d.longs))
	for _, r := range d.shorts {
		ks = append(ks, string([]rune{dash, r}))
	}
	for _, l := range d.longs {
		ks = append(ks, "--"+l)
	}
	return ks
}

// Descriptor is a typed handle on a declared parameter.
type Descriptor[T any] struct {
	d *descriptor
}

var _ Param = &Descriptor[int]{}

// Optional declares a parameter that may be omitted.
// It panics if T is not supported or if no key is given.
func Optional[T any](shorts []rune, longs []string, brief string) *Descriptor[T] {
	return &Descriptor[T]{
		d: newDescriptor(typeOf[T](), shorts, longs, brief, false),
	}
}

// Required declares a parameter that must be given unless it has a default.
// It panics if T is not supported or if no key is given.
func Required[T any](shorts []rune, longs []string, brief string) *Descriptor[T] {
	return &Descriptor[T]{
		d: newDescriptor(typeOf[T](), shorts, longs, brief, true),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (p *Descriptor[T]) param() *descriptor {
	return p.d
}

// Default sets the value used when the parameter is not given.
func (p *Descriptor[T]) Default(v T) *Descriptor[T] {
	p.d.setDefault(reflect.ValueOf(&v).Elem(), fmt.Sprint(v))
	return p
}

// Value returns the parsed value, else the default, else the zero value of T.
func (p *Descriptor[T]) Value() T {
	return p.d.value().Interface().(T)
}

// HasValue reports whether Value comes from the command line or a default.
func (p *Descriptor[T]) HasValue() bool {
	return p.d.hasValue()
}

func (p *Descriptor[T]) IsRequired() bool {
	return p.d.required
}

func (p *Descriptor[T]) ShortKeys() []rune {
	return append([]rune(nil), p.d.shorts...)
}

func (p *Descriptor[T]) LongKeys() []string {
	return append([]string(nil), p.d.longs...)
}

func (p *Descriptor[T]) Brief() string {
	return p.d.brief
}

// keyRef names a parameter by one of its keys: a short key when long is
// empty, a long key otherwise.
type keyRef struct {
	short rune
	long  string
}

func shortRef(r rune) keyRef { return keyRef{short: r} }

func longRef(l string) keyRef { return keyRef{long: l} }

func (k keyRef) isLong() bool { return k.long != "" }

func (k keyRef) String() string {
	if k.isLong() {
		return k.long
	}
	return string(k.short)
}

// Result holds one value per declared parameter, in declaration order.
type Result []any

// Get returns the i-th value of r as a T. It panics if the parameter at i
// does not hold a T.
func Get[T any](r Result, i int) T {
	return r[i].(T)
}

// paramSet is the ordered parameter collection of one parser.
type paramSet struct {
	params []*descriptor
	cache  Result // nil until first built or after invalidateCache
}

func newParamSet(params []Param) *paramSet {
	ps := &paramSet{params: make([]*descriptor, 0, len(params))}
	shorts := map[rune]int{}
	longs := map[string]int{}
	for i, p := range params {
		d := p.param()
		for _, r := range d.shorts {
			if j, ok := shorts[r]; ok {
				panic(fmt.Errorf(errKeyRedefined, "-"+string(r), j, i))
			}
			shorts[r] = i
		}
		for _, l := range d.longs {
			if j, ok := longs[l]; ok {
				panic(fmt.Errorf(errKeyRedefined, "--"+l, j, i))
			}
			longs[l] = i
		}
		ps.params = append(ps.params, d)
	}
	return ps
}

func (ps *paramSet) len() int {
	return len(ps.params)
}

func (ps *paramSet) at(i int) *descriptor {
	return ps.params[i]
}

func (ps *paramSet) index(k keyRef) (int, bool) {
	for i, d := range ps.params {
		if (k.isLong() && d.containsLong(k.long)) ||
			(!k.isLong() && d.containsShort(k.short)) {
			return i, true
		}
	}
	return -1, false
}

// values returns the result snapshot, rebuilding it if it is stale.
func (ps *paramSet) values() Result {
	if ps.cache == nil {
		ps.updateCache()
	}
	return ps.cache
}

func (ps *paramSet) updateCache() {
	r := make(Result, len(ps.params))
	for i, d := range ps.params {
		r[i] = d.value().Interface()
	}
	ps.cache = r
}

func (ps *paramSet) invalidateCache() {
	ps.cache = nil
}

// clear resets every descriptor. The snapshot is kept, so a failed parse
// still reports the last good result.
func (ps *paramSet) clear() {
	for _, d := range ps.params {
		d.reset()
	}
}
