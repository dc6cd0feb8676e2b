package hygiene

import "crypto/rand"

// DefaultIDLength is the length NewID uses.
const DefaultIDLength = 8

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Bytes at or above this bound are rejected so that every symbol is equally likely.
const idRejectAbove = 256 - 256%len(idAlphabet)

// GenerateID returns length random characters from A-Z0-9.
// It returns "" for a length of zero or less.
func GenerateID(length int) string {
	if length <= 0 {
		return ""
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2+4)
	for len(out) < length {
		// rand.Read never fails as of Go 1.24.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= idRejectAbove {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out)
}

// NewID returns a DefaultIDLength identifier.
func NewID() string {
	return GenerateID(DefaultIDLength)
}
