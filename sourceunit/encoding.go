package sourceunit

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeFile reads path and returns its contents as UTF-8, detecting a
// byte-order mark the way a PHP-aware editor does: a UTF-8 BOM is
// stripped, a UTF-16 BOM selects the matching decoder, and the absence
// of either assumes UTF-8 (falling back to a byte-preserving Latin-1
// promotion if the bytes aren't valid UTF-8, since a PHP source file
// can legally contain raw bytes inside string literals).
func DecodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("sourceunit: read %s: %w", path, err)
	}
	return DecodeBytes(data)
}

// DecodeBytes applies DecodeFile's BOM-sniffing rules directly to an
// in-memory buffer, for callers that already have the bytes (a host
// embedding this module over its own transport).
func DecodeBytes(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:]), nil
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16(data, unicode.LittleEndian)
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16(data, unicode.BigEndian)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("sourceunit: decode UTF-16: %w", err)
	}
	if len(utf8Data) >= 3 && utf8Data[0] == 0xEF && utf8Data[1] == 0xBB && utf8Data[2] == 0xBF {
		utf8Data = utf8Data[3:]
	}
	result := bytes.TrimPrefix(utf8Data, []byte("﻿"))
	return string(result), nil
}
