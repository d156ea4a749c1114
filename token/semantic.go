package token

// LiteralFormat records how a literal token's text was spelled in the
// source, independent of its decoded value. The lexer's token
// post-processor sets this once, at the moment it produces a
// T_LNUMBER/T_DNUMBER/T_CONSTANT_ENCAPSED_STRING token, so that a
// formatter can reproduce the original radix/exponent/quote style
// without re-scanning the literal text.
type LiteralFormat int

const (
	FormatNone LiteralFormat = iota

	// Integer formats.
	FormatDecimal
	FormatBinary
	FormatOctal
	FormatOctalExplicit // 0o... (PHP 8.1+)
	FormatHex

	// Float formats.
	FormatFloatingPoint // 1.5
	FormatExpSmall      // 1e10
	FormatExpBig        // 1E10

	// String formats.
	FormatSingleQuoted
	FormatDoubleQuoted
)

// SemanticKind discriminates the payload carried by a Semantic value.
type SemanticKind int

const (
	SemanticNone SemanticKind = iota
	SemanticInt
	SemanticFloat
	SemanticText
)

// Semantic is the decoded value a lexer's post-processor attaches to a
// literal token, alongside its raw Literal text. It is a small tagged
// union rather than an interface{} so that callers can switch on Kind
// without a type assertion.
//
// Decoding an out-of-range integer literal does not fail: per PHP's own
// tokenizer behavior, the value is promoted to SemanticFloat and the
// producing stage is expected to also raise a diagnostic (see
// diagnostic.TooBigIntegerConversion).
type Semantic struct {
	Kind   SemanticKind
	Int    int64
	Float  float64
	Text   string
	Format LiteralFormat
}

// IntValue builds a Semantic carrying a decoded integer.
func IntValue(v int64, format LiteralFormat) Semantic {
	return Semantic{Kind: SemanticInt, Int: v, Format: format}
}

// FloatValue builds a Semantic carrying a decoded float, used both for
// genuine float literals and for integer literals promoted on overflow.
func FloatValue(v float64, format LiteralFormat) Semantic {
	return Semantic{Kind: SemanticFloat, Float: v, Format: format}
}

// TextValue builds a Semantic carrying decoded text (an unescaped
// string body, or a decoded identifier).
func TextValue(v string, format LiteralFormat) Semantic {
	return Semantic{Kind: SemanticText, Text: v, Format: format}
}
