package lexer

// Lex skips leading whitespace and consumes exactly one token from r.
// Bytes that are not digits or operators come back as KindUnknown; Lex
// itself never fails.
func Lex(r Reader) Token {
	skipWhitespace(r)

	start := r.Offset()
	ch, ok := r.Next()
	if !ok {
		// One-byte placeholder so diagnostics can point at end of input.
		return Token{Kind: KindEnd, Pos: Pos{Start: start, End: start + 1}}
	}

	pos := Pos{Start: start, End: r.Offset()}
	switch {
	case isDigit(ch):
		return Token{Kind: KindInteger, Int: int64(ch - '0'), Pos: pos}
	case ch == '+' || ch == '-':
		return Token{Kind: KindSymbol, Char: ch, Pos: pos}
	}
	return Token{Kind: KindUnknown, Char: ch, Pos: pos}
}

func skipWhitespace(r Reader) {
	for {
		ch, ok := r.Current()
		if !ok || !isWhitespace(ch) {
			return
		}
		r.Next()
	}
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Scanner turns a Reader into a one-token-lookahead stream.
type Scanner struct {
	reader Reader
	cur    Token
}

// NewScanner creates a scanner and lexes the first token.
func NewScanner(r Reader) *Scanner {
	s := &Scanner{}
	s.Reset(r)
	return s
}

// FromBytes creates a scanner over an in-memory source.
func FromBytes(src []byte) *Scanner {
	return NewScanner(NewSliceReader(src))
}

// Reset re-initializes the scanner with a new reader for pool reuse.
func (s *Scanner) Reset(r Reader) {
	s.reader = r
	s.cur = Lex(r)
}

// Current returns the lookahead token without consuming it.
func (s *Scanner) Current() Token {
	return s.cur
}

// Next returns the lookahead token and advances. Once the input is
// exhausted it keeps returning End.
func (s *Scanner) Next() Token {
	tok := s.cur
	s.cur = Lex(s.reader)
	return tok
}
