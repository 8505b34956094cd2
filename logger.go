package gclp

import (
	"fmt"
	"strings"
)

const ( // runtime errors, reported through Parser.ErrorMessage
	msgIdentifierNotGiven = "didn't receive identifier, command-line is empty.\n"
	msgInvalidIdentifier  = "invalid identifier specified.\n" +
		"\texpected \"%s\" but received \"%s\"\n"
	msgKeyNotGiven   = "key is not given.\n"
	msgUndefinedKey  = "undefined key \"%s\" received.\n"
	msgWrongComplex  = "at least one of the keys in complex param received isn't defined as boolean param" +
		" or at least one key in a complex param duplicated.\n" +
		"\treceived: \"%s\"\n"
	msgIncompatible = "received arguments are incompatible with the specified key \"%s\".\n" +
		"\treceived: [%s]\n"
	msgUnparsed   = "unparsed arguments detected.\n\tremaining tokens: %s\n"
	msgDuplicated = "duplicated assignments detected when parsing \"%s\".\n" +
		"\tmore than one of keys are assigning their values to same parameter.\n"
	msgRequired = "required keys are not given.\nrequired keys:\n"
)

// logger keeps the first error code of a parse and every message logged.
type logger struct {
	params *paramSet
	code   ErrorCode
	buf    strings.Builder
}

func newLogger(ps *paramSet) *logger {
	return &logger{params: ps}
}

func (l *logger) logIdentifierNotGiven() {
	l.log(IdentifierNotGiven, msgIdentifierNotGiven)
}

func (l *logger) logInvalidIdentifier(received, expected string) {
	l.log(InvalidIdentifier, msgInvalidIdentifier, expected, received)
}

func (l *logger) logKeyNotGiven() {
	l.log(KeyNotGiven, msgKeyNotGiven)
}

func (l *logger) logUndefinedKey(k keyRef) {
	l.log(UndefinedKey, msgUndefinedKey, k)
}

func (l *logger) logWrongComplexKey(keys string) {
	l.log(WrongComplexKey, msgWrongComplex, keys)
}

func (l *logger) logIncompatibleArgument(k keyRef, received string) {
	l.log(IncompatibleArgument, msgIncompatible, k, received)
}

func (l *logger) logUnparsedArgument(remaining string) {
	l.log(UnparsedArgument, msgUnparsed, remaining)
}

func (l *logger) logDuplicatedAssignments(key string) {
	l.log(DuplicatedAssignments, msgDuplicated, key)
}

// logRequiredKeyNotGiven lists every required parameter lacking a default,
// one "[a|aa]: brief" line each.
func (l *logger) logRequiredKeyNotGiven() {
	l.log(RequiredKeyNotGiven, msgRequired)
	for _, d := range l.params.params {
		if !d.required || d.hasDefault() {
			continue
		}
		keys := make([]string, 0, len(d.shorts)+len(d.longs))
		for _, r := range d.shorts {
			keys = append(keys, string(r))
		}
		keys = append(keys, d.longs...)
		fmt.Fprintf(&l.buf, "\t[%s]: %s\n", strings.Join(keys, "|"), d.brief)
	}
}

func (l *logger) log(c ErrorCode, format string, a ...any) {
	l.lockError(c)
	l.buf.WriteString(errorMessageHead)
	fmt.Fprintf(&l.buf, format, a...)
}

// lockError records c unless an earlier error is already recorded.
func (l *logger) lockError(c ErrorCode) {
	if l.code == NoError {
		l.code = c
	}
}

func (l *logger) failed() bool {
	return l.code != NoError
}

func (l *logger) message() string {
	return l.buf.String()
}

func (l *logger) clear() {
	l.code = NoError
	l.buf.Reset()
}
