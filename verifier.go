package gclp

// bitset keeps one bit per parameter slot.
type bitset []bool

func newBitset(n int) bitset {
	return make(bitset, n)
}

func (b bitset) set(i int) {
	b[i] = true
}

func (b bitset) test(i int) bool {
	return b[i]
}

func (b bitset) reset() {
	for i := range b {
		b[i] = false
	}
}

func (b bitset) clone() bitset {
	return append(bitset(nil), b...)
}

// verifier tracks which parameters got a value in the current parse and
// answers whether the next key may be applied.
type verifier struct {
	identifier string
	switches   bitset
	fail       bool // conversion failed on the current key
	bad        bool // conversion left words unconsumed
}

func newVerifier(identifier string, n int) *verifier {
	return &verifier{
		identifier: identifier,
		switches:   newBitset(n),
	}
}

func (v *verifier) id() string {
	return v.identifier
}

func (v *verifier) isValidIdentifier(word string) bool {
	return word == v.identifier
}

func (v *verifier) startsWithShortKey(tok token) bool {
	return isShortKey(tok.leading)
}

func (v *verifier) startsWithLongKey(tok token) bool {
	return isLongKey(tok.leading)
}

func (v *verifier) startsWithComplexKey(tok token) bool {
	return isComplexKey(tok.leading)
}

func (v *verifier) isValidSingleKey(k keyRef, ps *paramSet) bool {
	_, ok := ps.index(k)
	return ok
}

// isValidComplexKey requires every key of a complex key to name a boolean
// parameter.
func (v *verifier) isValidComplexKey(keys string, ps *paramSet) bool {
	for _, r := range keys {
		i, ok := ps.index(shortRef(r))
		if !ok || !ps.at(i).isBoolean() {
			return false
		}
	}
	return true
}

func (v *verifier) isDuplicatedAssignment(k keyRef, ps *paramSet) bool {
	return isDuplicated(k, ps, v.switches)
}

// isDuplicatedComplexAssignment checks the keys left to right against a
// scratch copy of the assignment bits, so -aa is caught as well as -a -a.
func (v *verifier) isDuplicatedComplexAssignment(keys string, ps *paramSet) bool {
	scratch := v.switches.clone()
	for _, r := range keys {
		k := shortRef(r)
		if isDuplicated(k, ps, scratch) {
			return true
		}
		markAssigned(k, ps, scratch)
	}
	return false
}

// satisfiesRequired checks that every required parameter without a default
// was assigned.
func (v *verifier) satisfiesRequired(ps *paramSet) bool {
	required := newBitset(ps.len())
	for i, d := range ps.params {
		if d.required && !d.hasDefault() {
			required.set(i)
		}
	}
	for i := range required {
		if required.test(i) && !v.switches.test(i) {
			return false
		}
	}
	return true
}

func (v *verifier) setAssigned(k keyRef, ps *paramSet) {
	markAssigned(k, ps, v.switches)
}

func (v *verifier) markFail(fail bool) {
	v.fail = fail
}

func (v *verifier) markBad(bad bool) {
	v.bad = bad
}

func (v *verifier) good() bool {
	return !v.fail && !v.bad
}

func (v *verifier) clear() {
	v.switches.reset()
	v.fail = false
	v.bad = false
}

func isDuplicated(k keyRef, ps *paramSet, switches bitset) bool {
	i, ok := ps.index(k)
	return ok && switches.test(i)
}

func markAssigned(k keyRef, ps *paramSet, switches bitset) {
	if i, ok := ps.index(k); ok {
		switches.set(i)
	}
}
