package lexer

import (
	"testing"

	"github.com/go-php/phpfront/diagnostic"
	"github.com/go-php/phpfront/token"
)

// These tests pin the token-stream boundary cases and concrete
// scenarios called out for the tokenizer, as opposed to the teacher's
// own interpreter-shaped fixtures: a PHP-compatible token stream for a
// handful of inputs chosen because each exercises a rule that is easy
// to get subtly wrong (integer overflow, inline HTML boundaries,
// interpolation, heredoc termination).

func kinds(toks []DecodedToken) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Type == token.WHITESPACE {
			continue
		}
		out = append(out, t.Type)
	}
	return out
}

func requireKinds(t *testing.T, toks []DecodedToken, want ...token.Token) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

// TestEchoTrailingNewlineInsensitive pins the boundary case: the same
// token stream with and without a trailing newline after the closing tag.
func TestEchoTrailingNewlineInsensitive(t *testing.T) {
	for _, src := range []string{"<?php echo 1; ?>", "<?php echo 1; ?>\n"} {
		toks := Tokenize(src, diagnostic.Discard{})
		requireKinds(t, toks,
			token.T_OPEN_TAG, token.T_ECHO, token.T_LNUMBER, token.SEMICOLON, token.T_CLOSE_TAG, token.EOF)
	}
}

// TestHeredocLabelSubstringNotAtLineStartDoesNotTerminate pins the
// boundary case: a heredoc label occurring as a substring of a body
// line, but not at the start of that line, must not close the heredoc.
func TestHeredocLabelSubstringNotAtLineStartDoesNotTerminate(t *testing.T) {
	// "xEOT;" contains the label immediately followed by the ';' that
	// would otherwise end the heredoc, but the label isn't at the start
	// of its line, so this must not terminate.
	src := "<?php $s = <<<EOT\nxEOT;\nEOT;\n"
	toks := Tokenize(src, diagnostic.Discard{})

	var body string
	for _, tok := range toks {
		if tok.Type == token.T_ENCAPSED_AND_WHITESPACE {
			body += tok.Literal
		}
	}
	if body != "xEOT;\n" {
		t.Fatalf("expected heredoc body to include the non-terminating line, got %q", body)
	}

	var sawEnd bool
	for _, tok := range toks {
		if tok.Type == token.T_END_HEREDOC {
			sawEnd = true
		}
	}
	if !sawEnd {
		t.Fatal("expected the heredoc to still terminate on its own label line")
	}
}

// TestIntegerPromotionBoundary pins §8.3's own worked example: one past
// int64 max is still a valid uint64 (so a naive uint64 parse with an
// int64 cast would silently wrap to a negative number), yet the token
// must come out as T_DNUMBER with a TooBigIntegerConversion warning.
func TestIntegerPromotionBoundary(t *testing.T) {
	col := diagnostic.NewCollector()
	toks := Tokenize("<?php 9223372036854775808;", col)

	requireKinds(t, toks,
		token.T_OPEN_TAG, token.T_DNUMBER, token.SEMICOLON, token.EOF)

	var found bool
	for _, d := range col.All() {
		if d.Code == diagnostic.TooBigIntegerConversion {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a TooBigIntegerConversion warning")
	}

	for _, tok := range toks {
		if tok.Type == token.T_DNUMBER {
			if tok.Semantic.Kind != token.SemanticFloat {
				t.Fatalf("expected SemanticFloat, got %v", tok.Semantic.Kind)
			}
			if tok.Semantic.Float != 9223372036854775808.0 {
				t.Errorf("got %v", tok.Semantic.Float)
			}
		}
	}
}

// TestHexOverflowBoundary pins the companion hex rule: 16 significant
// hex digits with a leading digit of '8' or above no longer fit an
// int64, so the literal is promoted to a float with a warning.
func TestHexOverflowBoundary(t *testing.T) {
	col := diagnostic.NewCollector()
	toks := Tokenize("<?php 0x8000000000000000;", col)
	requireKinds(t, toks,
		token.T_OPEN_TAG, token.T_DNUMBER, token.SEMICOLON, token.EOF)

	var found bool
	for _, d := range col.All() {
		if d.Code == diagnostic.TooBigIntegerConversion {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a TooBigIntegerConversion warning on hex overflow")
	}
}

// TestVeryLargeDecimalPromotion pins the concrete scenario: a decimal
// literal far beyond uint64 range also promotes to float, not just the
// one-past-int64-max edge.
func TestVeryLargeDecimalPromotion(t *testing.T) {
	toks := Tokenize("<?php 99999999999999999999;", diagnostic.Discard{})
	requireKinds(t, toks,
		token.T_OPEN_TAG, token.T_DNUMBER, token.SEMICOLON, token.EOF)
}

// TestInlineHTMLAroundPHPTags pins the concrete scenario: inline HTML
// on both sides of a single PHP block becomes two T_INLINE_HTML tokens
// bracketing the scripting tokens.
func TestInlineHTMLAroundPHPTags(t *testing.T) {
	toks := Tokenize("Hello <?php $x = 1; ?> World", diagnostic.Discard{})
	requireKinds(t, toks,
		token.T_INLINE_HTML, token.T_OPEN_TAG, token.T_VARIABLE, token.EQUALS,
		token.T_LNUMBER, token.SEMICOLON, token.T_CLOSE_TAG, token.T_INLINE_HTML, token.EOF)
}

// TestDoubleQuotedInterpolation pins the concrete scenario: a
// double-quoted string with a single interpolated variable splits into
// an encapsed-text/variable/encapsed-text run between DOUBLE_QUOTE tokens.
func TestDoubleQuotedInterpolation(t *testing.T) {
	toks := Tokenize(`<?php "a$x b";`, diagnostic.Discard{})
	requireKinds(t, toks,
		token.T_OPEN_TAG, token.DOUBLE_QUOTE, token.T_ENCAPSED_AND_WHITESPACE,
		token.T_VARIABLE, token.T_ENCAPSED_AND_WHITESPACE, token.DOUBLE_QUOTE,
		token.SEMICOLON, token.EOF)
}

// TestPropertyAccessAfterKeywordLikeName pins the scanner's
// ST_LOOKING_FOR_PROPERTY lookahead: a property named after a keyword
// (list) is still returned as T_STRING right after T_OBJECT_OPERATOR.
func TestPropertyAccessAfterKeywordLikeName(t *testing.T) {
	toks := Tokenize("<?php $o->list;", diagnostic.Discard{})
	requireKinds(t, toks,
		token.T_OPEN_TAG, token.T_VARIABLE, token.T_OBJECT_OPERATOR, token.T_STRING,
		token.SEMICOLON, token.EOF)
}
