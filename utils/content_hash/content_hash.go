package content_hash

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
)

// Fingerprint derives a stable hex digest of an item from its title, body
// and canonical link. Identical inputs always produce the identical digest;
// any single-character change in any input produces a different one. Each
// field is length-prefixed so that ("ab","c") and ("a","bc") cannot collide.
func Fingerprint(title, body, link string) string {
	h := sha256.New()
	writeField(h, title)
	writeField(h, body)
	writeField(h, link)
	return hex.EncodeToString(h.Sum(nil))
}

func writeField(w io.Writer, field string) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(field)))
	w.Write(length[:])
	io.WriteString(w, field)
}
