package lexer

import (
	"strconv"
	"strings"

	"github.com/go-php/phpfront/ast"
	"github.com/go-php/phpfront/diagnostic"
	"github.com/go-php/phpfront/token"
)

// spanOf converts a lexer Position pair (the token's start and its
// literal length) into an ast.Span, the coordinate system diagnostics
// are reported in.
func spanOf(pos Position, length int) ast.Span {
	start := ast.Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
	end := ast.Position{Offset: pos.Offset + length, Line: pos.Line, Column: pos.Column + length}
	return ast.Span{Start: start, End: end}
}

// Decode turns a scanned TokenInfo's raw Literal into a token.Semantic
// value, the way the Token Post-Processor stage sits between scanning
// and parsing: NextToken recognizes *that* a literal was scanned, and
// Decode works out *what it means* (a number, an unescaped string body).
// sink receives a warning when an integer literal is too large to fit
// an int64 and gets silently promoted to a float, matching PHP's own
// tokenizer behavior for that case.
func Decode(tok TokenInfo, sink diagnostic.Sink) token.Semantic {
	switch tok.Type {
	case token.T_LNUMBER:
		return decodeInteger(tok, sink)
	case token.T_DNUMBER:
		// scanNumber also gives T_DNUMBER to integer literals too large for
		// an int64; those go through decodeInteger for the overflow warning.
		lower := strings.ToLower(tok.Literal)
		if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0b") ||
			strings.HasPrefix(lower, "0o") || !strings.ContainsAny(lower, ".e") {
			return decodeInteger(tok, sink)
		}
		return decodeFloat(tok.Literal)
	case token.T_CONSTANT_ENCAPSED_STRING:
		return decodeQuotedString(tok.Literal)
	case token.T_ENCAPSED_AND_WHITESPACE:
		return decodeEscapes(tok.Literal, false)
	default:
		return token.Semantic{}
	}
}

func decodeInteger(tok TokenInfo, sink diagnostic.Sink) token.Semantic {
	lit := tok.Literal
	digits := lit
	base := 10
	format := token.FormatDecimal

	switch {
	case strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X"):
		base, format, digits = 16, token.FormatHex, lit[2:]
	case strings.HasPrefix(lit, "0b") || strings.HasPrefix(lit, "0B"):
		base, format, digits = 2, token.FormatBinary, lit[2:]
	case strings.HasPrefix(lit, "0o") || strings.HasPrefix(lit, "0O"):
		base, format, digits = 8, token.FormatOctalExplicit, lit[2:]
	case len(lit) > 1 && lit[0] == '0':
		base, format, digits = 8, token.FormatOctal, lit[1:]
	}
	digits = strings.ReplaceAll(digits, "_", "")

	if !integerLiteralOverflows(lit) {
		if v, err := strconv.ParseUint(digits, base, 64); err == nil {
			return token.IntValue(int64(v), format)
		}
	}

	// Overflow: PHP promotes the literal to a float rather than
	// truncating or erroring, but it is still surprising enough to
	// warrant a diagnostic.
	f, _ := strconv.ParseFloat(digits, 64)
	if base != 10 {
		// Re-derive the float for non-decimal bases, since ParseFloat
		// only understands base-10/hex-float syntax.
		f = 0
		for i := 0; i < len(digits); i++ {
			d := hexDigitValue(digits[i])
			f = f*float64(base) + float64(d)
		}
	}
	if sink != nil {
		sink.Report(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     diagnostic.TooBigIntegerConversion,
			Span:     spanOf(tok.Pos, len(lit)),
			Message:  "integer literal " + lit + " is too large, converted to float",
		})
	}
	return token.FloatValue(f, format)
}

// integerLiteralOverflows reports whether a scanned integer literal
// (prefix and underscores intact, as produced by scanNumber) is too
// large to fit a signed 64-bit integer and must be promoted to a
// float, per the token post-processor's promotion rule: decimal and
// octal are bounded directly by the int64 range (so e.g.
// 9223372036854775808, one past int64 max, overflows even though it
// fits a uint64 and would otherwise wrap to a negative value); hex and
// binary use a significant-digit-count check, since digit count alone
// pins the magnitude for those bases, with a leading-digit tie-break
// at the digit count that exactly spans 64 bits (16 hex digits, 64
// bits): a leading digit whose top bit is set means the value is at
// least 2^63 and therefore does not fit.
func integerLiteralOverflows(lit string) bool {
	digits := lit
	base := 10
	switch {
	case strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X"):
		base, digits = 16, lit[2:]
	case strings.HasPrefix(lit, "0b") || strings.HasPrefix(lit, "0B"):
		base, digits = 2, lit[2:]
	case strings.HasPrefix(lit, "0o") || strings.HasPrefix(lit, "0O"):
		base, digits = 8, lit[2:]
	case len(lit) > 1 && lit[0] == '0':
		base, digits = 8, lit[1:]
	}
	digits = strings.ReplaceAll(digits, "_", "")
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return false
	}

	switch base {
	case 16:
		if len(digits) > 16 {
			return true
		}
		if len(digits) == 16 {
			return hexDigitValue(digits[0]) >= 8
		}
		return false
	case 2:
		if len(digits) > 64 {
			return true
		}
		if len(digits) == 64 {
			return digits[0] == '1'
		}
		return false
	default:
		_, err := strconv.ParseInt(digits, base, 64)
		return err != nil
	}
}

func hexDigitValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return 0
	}
}

func decodeFloat(lit string) token.Semantic {
	clean := strings.ReplaceAll(lit, "_", "")
	f, _ := strconv.ParseFloat(clean, 64)
	format := token.FormatFloatingPoint
	if strings.ContainsAny(lit, "eE") {
		if strings.Contains(lit, "E") {
			format = token.FormatExpBig
		} else {
			format = token.FormatExpSmall
		}
	}
	return token.FloatValue(f, format)
}

// decodeQuotedString decodes the body of a single- or double-quoted
// constant string (no interpolation possible at this point, since the
// lexer only emits T_CONSTANT_ENCAPSED_STRING for interpolation-free
// strings). Single-quoted strings only recognize \\ and \'.
func decodeQuotedString(lit string) token.Semantic {
	if len(lit) < 2 {
		return token.TextValue(lit, token.FormatSingleQuoted)
	}
	quote := lit[0]
	body := lit[1 : len(lit)-1]
	if quote == '\'' {
		var b strings.Builder
		for i := 0; i < len(body); i++ {
			if body[i] == '\\' && i+1 < len(body) && (body[i+1] == '\\' || body[i+1] == '\'') {
				i++
			}
			b.WriteByte(body[i])
		}
		return token.TextValue(b.String(), token.FormatSingleQuoted)
	}
	return decodeEscapes(body, true)
}

// decodeEscapes decodes the full double-quoted/heredoc escape set:
// \n \t \r \v \f \\ \$ \" \e, octal \NNN (one to three digits), hex
// \xHH (one or two digits), and the PHP 7+ Unicode escape \u{...}.
func decodeEscapes(body string, doubleQuoted bool) token.Semantic {
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' || i+1 >= len(body) {
			b.WriteByte(ch)
			continue
		}
		next := body[i+1]
		switch next {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'e':
			b.WriteByte(0x1b)
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case '$':
			b.WriteByte('$')
			i++
		case '"':
			if doubleQuoted {
				b.WriteByte('"')
				i++
			} else {
				b.WriteByte('\\')
			}
		case 'x':
			j := i + 2
			start := j
			for j < len(body) && j < start+2 && isHexDigitByte(body[j]) {
				j++
			}
			if j > start {
				v := 0
				for k := start; k < j; k++ {
					v = v*16 + hexDigitValue(body[k])
				}
				b.WriteByte(byte(v))
				i = j - 1
			} else {
				b.WriteByte('\\')
			}
		case 'u':
			if i+2 < len(body) && body[i+2] == '{' {
				end := strings.IndexByte(body[i+3:], '}')
				if end >= 0 {
					hexDigits := body[i+3 : i+3+end]
					if v, err := strconv.ParseInt(hexDigits, 16, 32); err == nil {
						b.WriteRune(rune(v))
						i = i + 3 + end
						continue
					}
				}
			}
			b.WriteByte('\\')
		default:
			if next >= '0' && next <= '7' {
				j := i + 1
				start := j
				for j < len(body) && j < start+3 && body[j] >= '0' && body[j] <= '7' {
					j++
				}
				v := 0
				for k := start; k < j; k++ {
					v = v*8 + int(body[k]-'0')
				}
				b.WriteByte(byte(v))
				i = j - 1
			} else {
				b.WriteByte('\\')
			}
		}
	}
	format := token.FormatDoubleQuoted
	return token.TextValue(b.String(), format)
}

func isHexDigitByte(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
