package gclp

// token is a key word with the argument words that follow it.
type token struct {
	leading    string
	followings []string
}

// interpreter groups the words of a command line into tokens.
type interpreter struct {
	words []string
	cur   int
}

func newInterpreter(commandLine string) *interpreter {
	return &interpreter{words: SplitWords(commandLine)}
}

func newArgsInterpreter(args []string) *interpreter {
	return newInterpreter(flattenArgs(args))
}

// getToken reads one word and every following word up to the next key.
// It returns an empty token once all words are read.
func (ip *interpreter) getToken() token {
	var tok token
	if ip.done() {
		return tok
	}
	tok.leading = ip.read()
	for !ip.done() && !ip.facingKey() {
		tok.followings = append(tok.followings, ip.read())
	}
	return tok
}

func (ip *interpreter) done() bool {
	return ip.cur >= len(ip.words)
}

// facingKey reports whether the next unread word is key-shaped.
func (ip *interpreter) facingKey() bool {
	return !ip.done() && isKey(ip.words[ip.cur])
}

func (ip *interpreter) remainderCount() int {
	return len(ip.words) - ip.cur
}

func (ip *interpreter) read() string {
	w := ip.words[ip.cur]
	ip.cur++
	return w
}
