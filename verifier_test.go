package gclp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestParamSet() *paramSet {
	return newParamSet([]Param{
		Optional[bool]([]rune{'a'}, []string{"aa"}, "a"),
		Optional[bool]([]rune{'b'}, nil, "b"),
		Optional[int]([]rune{'n'}, []string{"num"}, "n"),
		Required[string]([]rune{'s'}, nil, "s"),
		Required[string]([]rune{'d'}, nil, "d").Default("x"),
	})
}

func TestVerifierKeys(t *testing.T) {
	ps := newTestParamSet()
	v := newVerifier("TestCLI", ps.len())

	assert.True(t, v.isValidIdentifier("TestCLI"))
	assert.False(t, v.isValidIdentifier("testcli"))

	assert.True(t, v.isValidSingleKey(shortRef('a'), ps))
	assert.True(t, v.isValidSingleKey(longRef("num"), ps))
	assert.False(t, v.isValidSingleKey(longRef("a"), ps))
	assert.False(t, v.isValidSingleKey(shortRef('z'), ps))

	assert.True(t, v.isValidComplexKey("ab", ps))
	assert.False(t, v.isValidComplexKey("an", ps), "n is not boolean")
	assert.False(t, v.isValidComplexKey("az", ps), "z is undefined")
}

func TestVerifierDuplicates(t *testing.T) {
	ps := newTestParamSet()
	v := newVerifier("TestCLI", ps.len())

	assert.False(t, v.isDuplicatedAssignment(longRef("aa"), ps))
	v.setAssigned(shortRef('a'), ps)
	assert.True(t, v.isDuplicatedAssignment(longRef("aa"), ps), "alias of an assigned key")

	assert.True(t, v.isDuplicatedComplexAssignment("ba", ps), "a assigned before")
	assert.True(t, v.isDuplicatedComplexAssignment("bb", ps), "b twice in one token")
	assert.False(t, v.isDuplicatedAssignment(shortRef('b'), ps), "scratch bits are not kept")

	v.clear()
	assert.False(t, v.isDuplicatedComplexAssignment("ab", ps))
}

func TestVerifierRequired(t *testing.T) {
	ps := newTestParamSet()
	v := newVerifier("TestCLI", ps.len())

	assert.False(t, v.satisfiesRequired(ps))
	v.setAssigned(shortRef('s'), ps)
	assert.True(t, v.satisfiesRequired(ps), "d has a default")
}

func TestVerifierState(t *testing.T) {
	v := newVerifier("TestCLI", 1)
	assert.True(t, v.good())
	v.markFail(true)
	assert.False(t, v.good())
	v.markFail(false)
	v.markBad(true)
	assert.False(t, v.good())
	v.clear()
	assert.True(t, v.good())
}
