package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/tlang/pkg/compiler/lexer"
)

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte("2 + 2 - 1\t+8\r\n-9 + 4")
	r := lexer.NewSliceReader(src)
	s := lexer.NewScanner(r)

	allocs := testing.AllocsPerRun(10, func() {
		r.Reset(src)
		s.Reset(r)
		for s.Next().Kind != lexer.KindEnd {
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func TestLexTokens(t *testing.T) {
	src := []byte(" 7+ 3 -x")
	r := lexer.NewSliceReader(src)

	expected := []lexer.Token{
		{Kind: lexer.KindInteger, Int: 7, Pos: lexer.Pos{Start: 1, End: 2}},
		{Kind: lexer.KindSymbol, Char: '+', Pos: lexer.Pos{Start: 2, End: 3}},
		{Kind: lexer.KindInteger, Int: 3, Pos: lexer.Pos{Start: 4, End: 5}},
		{Kind: lexer.KindSymbol, Char: '-', Pos: lexer.Pos{Start: 6, End: 7}},
		{Kind: lexer.KindUnknown, Char: 'x', Pos: lexer.Pos{Start: 7, End: 8}},
		{Kind: lexer.KindEnd, Pos: lexer.Pos{Start: 8, End: 9}},
	}

	for i, exp := range expected {
		tok := lexer.Lex(r)
		if tok != exp {
			t.Errorf("token %d: expected %v, got %v", i, exp, tok)
		}
	}
}

func TestLexDigits(t *testing.T) {
	for d := byte('0'); d <= '9'; d++ {
		tok := lexer.Lex(lexer.NewSliceReader([]byte{d}))
		if tok.Kind != lexer.KindInteger || tok.Int != int64(d-'0') {
			t.Errorf("digit %c: got %v", d, tok)
		}
	}
}

func TestLexMultiDigitIsTwoTokens(t *testing.T) {
	s := lexer.FromBytes([]byte("12"))
	first, second := s.Next(), s.Next()
	if first.Int != 1 || second.Int != 2 {
		t.Errorf("expected 1 then 2, got %v and %v", first, second)
	}
}

func TestLexEmptyInput(t *testing.T) {
	tok := lexer.Lex(lexer.NewSliceReader(nil))
	want := lexer.Token{Kind: lexer.KindEnd, Pos: lexer.Pos{Start: 0, End: 1}}
	if tok != want {
		t.Errorf("expected %v, got %v", want, tok)
	}
}

func TestLexWhitespaceOnly(t *testing.T) {
	tok := lexer.Lex(lexer.NewSliceReader([]byte(" \t\r\n")))
	if tok.Kind != lexer.KindEnd || tok.Pos.Start != 4 {
		t.Errorf("expected End at 4, got %v", tok)
	}
}

func TestScannerEndIsSticky(t *testing.T) {
	s := lexer.FromBytes([]byte("5"))
	s.Next()
	for i := 0; i < 3; i++ {
		tok := s.Next()
		if tok.Kind != lexer.KindEnd {
			t.Fatalf("call %d: expected End, got %v", i, tok)
		}
		if tok.Pos != (lexer.Pos{Start: 1, End: 2}) {
			t.Errorf("call %d: End moved to %v", i, tok.Pos)
		}
	}
}

func TestStreamReaderMatchesSliceReader(t *testing.T) {
	src := "9 - 3- 2 ?"
	a := lexer.NewScanner(lexer.NewSliceReader([]byte(src)))
	b := lexer.NewScanner(lexer.NewStreamReader(strings.NewReader(src)))
	for {
		ta, tb := a.Next(), b.Next()
		if ta != tb {
			t.Fatalf("slice %v != stream %v", ta, tb)
		}
		if ta.Kind == lexer.KindEnd {
			break
		}
	}
}

type failingReader struct{ n int }

var errBroken = errors.New("broken pipe")

func (f *failingReader) Read(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errBroken
	}
	f.n--
	p[0] = '1'
	return 1, nil
}

func TestStreamReaderErrorEndsInput(t *testing.T) {
	r := lexer.NewStreamReader(&failingReader{n: 1})
	if tok := lexer.Lex(r); tok.Kind != lexer.KindInteger {
		t.Fatalf("expected Integer, got %v", tok)
	}
	if tok := lexer.Lex(r); tok.Kind != lexer.KindEnd {
		t.Fatalf("expected End, got %v", tok)
	}
	if !errors.Is(r.Err(), errBroken) {
		t.Errorf("expected errBroken, got %v", r.Err())
	}
}
