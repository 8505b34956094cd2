package gclp

import "strings"

const ( // declaration time errors, reported by panics
	errNotImplParse = "type %v is not supported: use a string, bool, " +
		"numeric or time.Duration type, or implement `Parse`"
	errNotValidExample = "Example() of custom type *%s cannot be parsed by FromString(..), " +
		`example: "%s"`
	errNotImplSlice   = "element type of %v is not supported: %w"
	errNoKey          = `parameter "%s" has neither a short nor a long key`
	errBadShortKey    = `'%c' cannot be used as a short key`
	errBadLongKey     = `"%s" cannot be used as a long key`
	errKeyRedefined   = `key %s is defined by parameters %d and %d`
	errParseDefault   = `error parsing default value "%s" of field "%s", error: %w`
	errUnparsedDef    = `default value "%s" of field "%s" leaves "%s" unparsed`
	errBadRequired    = `required tag "%s" of field "%s" is not a boolean`
	errHelpIsReserved = `"help" is a reserved word, please change long key of "%s"`
	errUnexported     = `cannot bind unexported field "%s"`
	errNotStructPtr   = "in BuildParser(id, v), type of v must be non nil *struct{...}"
	errNoIdentifier   = "identifier of a parser must not be empty"
)

const ( // runtime errors
	errPostCheck     = "parse ok, but check failed: %v"
	errorMessageHead = "[gclp] error: "
)

// ErrorCode tells which check a parse failed. The zero value is NoError.
type ErrorCode int

const (
	NoError ErrorCode = iota
	IdentifierNotGiven
	InvalidIdentifier
	KeyNotGiven
	UndefinedKey
	WrongComplexKey
	IncompatibleArgument
	UnparsedArgument
	DuplicatedAssignments
	RequiredKeyNotGiven
)

var errorCodeNames = [...]string{
	NoError:               "no_error",
	IdentifierNotGiven:    "identifier_not_given",
	InvalidIdentifier:     "invalid_identifier",
	KeyNotGiven:           "key_not_given",
	UndefinedKey:          "undefined_key",
	WrongComplexKey:       "wrong_complex_key",
	IncompatibleArgument:  "incompatible_argument",
	UnparsedArgument:      "unparsed_argument",
	DuplicatedAssignments: "duplicated_assignments",
	RequiredKeyNotGiven:   "required_key_not_given",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodeNames) {
		return "unknown_error"
	}
	return errorCodeNames[c]
}

// Error makes an ErrorCode usable as a target of errors.Is.
func (c ErrorCode) Error() string {
	return c.String()
}

// Error is the error reported by Parser.Err.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return strings.TrimSuffix(e.Message, "\n")
}

// Is matches an ErrorCode, so errors.Is(err, gclp.UndefinedKey) works.
func (e *Error) Is(target error) bool {
	c, ok := target.(ErrorCode)
	return ok && c == e.Code
}
