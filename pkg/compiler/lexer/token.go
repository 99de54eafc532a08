package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEnd     Kind = iota // input exhausted
	KindInteger             // single decimal digit
	KindSymbol              // '+' or '-'
	KindUnknown             // any other non-whitespace byte
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "End"
	case KindInteger:
		return "Integer"
	case KindSymbol:
		return "Symbol"
	case KindUnknown:
		return "Unknown"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Pos is a half-open byte range [Start, End) into the source.
type Pos struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (p Pos) Len() int {
	return p.End - p.Start
}

// Merge returns the range spanning from l's start to r's end.
func Merge(l, r Pos) Pos {
	return Pos{Start: l.Start, End: r.End}
}

func (p Pos) String() string {
	return fmt.Sprintf("[%d,%d)", p.Start, p.End)
}

// Token represents a lexical unit pointing back to the source.
// Int is set for KindInteger, Char for KindSymbol and KindUnknown.
type Token struct {
	Kind Kind
	Int  int64
	Char byte
	Pos  Pos
}

func (t Token) String() string {
	switch t.Kind {
	case KindInteger:
		return fmt.Sprintf("Integer(%d)@%v", t.Int, t.Pos)
	case KindSymbol, KindUnknown:
		return fmt.Sprintf("%v(%q)@%v", t.Kind, t.Char, t.Pos)
	}
	return fmt.Sprintf("%v@%v", t.Kind, t.Pos)
}
