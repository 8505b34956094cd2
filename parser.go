// Package gclp parses command lines into typed, declared parameters.
//
// A Parser is built from an identifier and an ordered list of parameters.
// Every parameter has short keys (-a), long keys (--aa), a brief, and is
// either Optional or Required. Boolean short keys may be packed into one
// complex key (-abc). Errors are never returned through panics at parse
// time: they are polled with Code, ErrorMessage or Err.
package gclp

// Parser is not safe for concurrent use.
type Parser struct {
	params *paramSet
	veri   *verifier
	assi   *assigner
	logg   *logger
}

// New builds a parser whose command lines start with identifier.
// It panics if identifier is empty or two parameters share a key.
func New(identifier string, params ...Param) *Parser {
	if identifier == "" {
		panic(errNoIdentifier)
	}
	ps := newParamSet(params)
	return &Parser{
		params: ps,
		veri:   newVerifier(identifier, ps.len()),
		assi:   newAssigner(ps),
		logg:   newLogger(ps),
	}
}

// Parse parses a whole command line, identifier included.
//
// Once a parse failed, Parse returns the previous result without doing any
// work until Clear is called.
func (p *Parser) Parse(commandLine string) Result {
	if p.logg.failed() {
		return p.Get()
	}
	return p.parse(newInterpreter(commandLine))
}

// ParseArgs is Parse for argv-style input. The arguments are joined by one
// space, so ParseArgs(strings.Fields(s)) and Parse(s) agree.
func (p *Parser) ParseArgs(args []string) Result {
	if p.logg.failed() {
		return p.Get()
	}
	return p.parse(newArgsInterpreter(args))
}

// Get returns the result of the last successful parse, or the defaults if
// there was none.
func (p *Parser) Get() Result {
	return p.params.values()
}

// Code returns NoError or the first error of the last parse.
func (p *Parser) Code() ErrorCode {
	return p.logg.code
}

// ErrorMessage returns every error logged by the last parse, one per line.
func (p *Parser) ErrorMessage() string {
	return p.logg.message()
}

// Err returns nil or an *Error describing the last parse.
func (p *Parser) Err() error {
	if !p.logg.failed() {
		return nil
	}
	return &Error{Code: p.logg.code, Message: p.logg.message()}
}

// Clear forgets the last parse, error included.
func (p *Parser) Clear() {
	p.params.clear()
	p.params.invalidateCache()
	p.veri.clear()
	p.assi.clear()
	p.logg.clear()
}

func (p *Parser) parse(ip *interpreter) Result {
	p.params.values() // keep a snapshot to fall back on
	p.initialize()

	p.parseTokens(ip)

	if !p.veri.satisfiesRequired(p.params) {
		p.logg.logRequiredKeyNotGiven()
	}
	if !p.logg.failed() {
		p.params.updateCache()
	}
	return p.Get()
}

func (p *Parser) initialize() {
	p.params.clear()
	p.veri.clear()
	p.assi.clear()
	p.logg.clear()
}

// parseTokens stops at the first error.
func (p *Parser) parseTokens(ip *interpreter) {
	if ip.done() {
		p.logg.logIdentifierNotGiven()
		return
	}
	id := ip.getToken()
	if !p.veri.isValidIdentifier(id.leading) {
		p.logg.logInvalidIdentifier(id.leading, p.veri.id())
		return
	}
	if len(id.followings) > 0 {
		p.logg.logKeyNotGiven()
		return
	}

	for !ip.done() {
		if !ip.facingKey() {
			p.logg.logKeyNotGiven()
			return
		}
		if !p.parseToken(ip.getToken()) {
			return
		}
	}
}

func (p *Parser) parseToken(tok token) bool {
	key := removeDash(tok.leading)
	switch {
	case p.veri.startsWithShortKey(tok):
		return p.parseSingleKey(shortRef([]rune(key)[0]), tok.followings)
	case p.veri.startsWithLongKey(tok):
		return p.parseSingleKey(longRef(key), tok.followings)
	case p.veri.startsWithComplexKey(tok):
		return p.parseComplexKey(key, tok.followings)
	}
	p.logg.logKeyNotGiven()
	return false
}

func (p *Parser) parseSingleKey(k keyRef, args []string) bool {
	if !p.veri.isValidSingleKey(k, p.params) {
		p.logg.logUndefinedKey(k)
		return false
	}
	if p.veri.isDuplicatedAssignment(k, p.params) {
		p.logg.logDuplicatedAssignments(k.String())
		return false
	}

	p.assi.assignSingle(k, args, p.veri)

	switch {
	case p.veri.fail:
		p.logg.logIncompatibleArgument(k, p.assi.receivedText())
		return false
	case p.veri.bad:
		p.logg.logUnparsedArgument(p.assi.unassignedText())
		return false
	}
	return true
}

// parseComplexKey takes no argument words: -abc sets a, b and c to true.
func (p *Parser) parseComplexKey(keys string, args []string) bool {
	if !p.veri.isValidComplexKey(keys, p.params) {
		p.logg.logWrongComplexKey(keys)
		return false
	}
	if p.veri.isDuplicatedComplexAssignment(keys, p.params) {
		p.logg.logDuplicatedAssignments(keys)
		return false
	}

	p.assi.assignComplex(keys, p.veri)

	if p.veri.fail {
		p.logg.logWrongComplexKey(keys)
		return false
	}
	if len(args) > 0 {
		p.logg.logUnparsedArgument(quoteWords(args))
		return false
	}
	return true
}
