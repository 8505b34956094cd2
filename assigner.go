package gclp

import (
	"reflect"
	"strconv"
	"strings"
)

// assigner converts the words following a key into the value of the
// parameter the key names.
type assigner struct {
	params     *paramSet
	received   []string
	unassigned []string
}

func newAssigner(ps *paramSet) *assigner {
	return &assigner{params: ps}
}

// assignSingle assumes k was validated. It reports the outcome to veri:
// fail when the words could not be converted, bad when some were left over.
func (a *assigner) assignSingle(k keyRef, args []string, veri *verifier) {
	i, _ := a.params.index(k)
	d := a.params.at(i)
	a.received = args
	a.unassigned = nil

	var rest string
	if d.isBoolean() && len(args) == 0 {
		d.assign(boolValue(d.typ, true))
	} else {
		rest = d.scanText(strings.Join(args, streamDelim))
	}
	veri.setAssigned(k, a.params)
	veri.markFail(d.fail)
	veri.markBad(!d.fail && rest != "")
	if !veri.good() {
		a.unassigned = strings.Fields(rest)
	}
}

// assignComplex sets every parameter named by keys to true.
func (a *assigner) assignComplex(keys string, veri *verifier) {
	a.received = nil
	a.unassigned = nil
	veri.markFail(false)
	veri.markBad(false)
	for _, r := range keys {
		k := shortRef(r)
		i, ok := a.params.index(k)
		if !ok || !a.params.at(i).isBoolean() {
			veri.markFail(true)
			continue
		}
		d := a.params.at(i)
		if !d.assign(boolValue(d.typ, true)) {
			veri.markFail(true)
		}
		veri.setAssigned(k, a.params)
	}
}

// receivedText formats the words given to the last key as "w1" "w2".
func (a *assigner) receivedText() string {
	return quoteWords(a.received)
}

// unassignedText formats the words the last conversion left over.
func (a *assigner) unassignedText() string {
	return quoteWords(a.unassigned)
}

func (a *assigner) clear() {
	a.received = nil
	a.unassigned = nil
}

func boolValue(typ reflect.Type, b bool) reflect.Value {
	v := reflect.New(typ).Elem()
	v.SetBool(b)
	return v
}

func quoteWords(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = strconv.Quote(w)
	}
	return strings.Join(quoted, streamDelim)
}
