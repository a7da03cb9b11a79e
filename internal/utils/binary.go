package utils

import (
	"bytes"
	"io"
	"os"
)

// sniffLength is the maximum number of bytes inspected when classifying a
// file as binary. A null byte past this prefix does not flag the file.
const sniffLength = 4096

// IsBinaryFile reports whether the file at path looks binary, defined as a
// null byte appearing within the first sniffLength bytes. Files that cannot
// be opened or read are treated as binary: their entry is still listed by
// callers, only the content dump is suppressed.
func IsBinaryFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return true
	}
	defer file.Close()

	// A plain Read may return short; ReadFull examines the full prefix.
	buffer := make([]byte, sniffLength)
	bytesRead, err := io.ReadFull(file, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	return bytes.IndexByte(buffer[:bytesRead], 0x00) >= 0
}
