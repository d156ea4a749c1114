package lexer

import (
	"github.com/go-php/phpfront/diagnostic"
	"github.com/go-php/phpfront/token"
)

// DecodedToken pairs a scanned TokenInfo with the Semantic value its
// literal decodes to, once a value exists (ILLEGAL, punctuation, and
// keyword tokens carry the zero Semantic).
type DecodedToken struct {
	TokenInfo
	Semantic token.Semantic
}

// Tokenize runs the full lex + decode pipeline over src and returns
// every token (including EOF), with semantic values attached. Unlike
// TokenizeAll, it is the single entry point a parser or CLI host
// should use: NextToken alone only performs scanning, not the Token
// Post-Processor stage that turns "3.14" into a float64 or unescapes
// "\n" inside a string body.
func Tokenize(src string, sink diagnostic.Sink) []DecodedToken {
	l := New(src)
	var out []DecodedToken
	for {
		tok := l.NextToken()
		out = append(out, DecodedToken{TokenInfo: tok, Semantic: Decode(tok, sink)})
		if tok.Type == token.EOF {
			break
		}
	}
	return out
}
