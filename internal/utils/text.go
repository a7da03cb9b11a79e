package utils

import "bytes"

// replacementCharacter substitutes invalid byte sequences when decoding
// file content, mirroring a lossy-but-never-fatal read.
const replacementCharacter = "�"

// DecodeText converts raw file bytes to a UTF-8 string, replacing invalid
// sequences with the Unicode replacement character instead of failing.
func DecodeText(data []byte) string {
	return string(bytes.ToValidUTF8(data, []byte(replacementCharacter)))
}
