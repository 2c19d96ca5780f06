// Package sponge binds the hash operations of the calculator to an
// extendable-output cryptographic sponge (SHAKE256). Inputs are absorbed as
// 8-byte big-endian words, digests are squeezed as five 64-bit words.
package sponge

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/maxirmx/tip5/field"
)

// DigestLen is the number of field elements in a digest.
const DigestLen = 5

// Domain tags keep a hashed pair distinct from a ten-element
// variable-length input.
const (
	tagPair   = 0x00
	tagVarlen = 0x01
)

// Digest is the fixed-width hash output. It doubles as the input shape of
// HashPair: a single element is embedded as the first slot with the
// remaining four slots zero, which a literal like Digest{e} gives for free.
type Digest [DigestLen]field.Element

func (d Digest) String() string {
	words := make([]string, DigestLen)
	for i, w := range d {
		words[i] = fmt.Sprintf("%d", w)
	}
	return "Digest([" + strings.Join(words, ", ") + "])"
}

// HashPair hashes two digest-shaped inputs into one digest.
func HashPair(a, b Digest) Digest {
	h := sha3.NewShake256()
	h.Write([]byte{tagPair})
	absorb(h, a[:])
	absorb(h, b[:])
	return squeeze(h)
}

// HashVarlen hashes a sequence of field elements, in order.
func HashVarlen(elems []field.Element) Digest {
	h := sha3.NewShake256()
	h.Write([]byte{tagVarlen})
	absorb(h, elems)
	return squeeze(h)
}

func absorb(h sha3.ShakeHash, elems []field.Element) {
	var buf [8]byte
	for _, e := range elems {
		binary.BigEndian.PutUint64(buf[:], uint64(e))
		h.Write(buf[:])
	}
}

func squeeze(h sha3.ShakeHash) (d Digest) {
	var buf [DigestLen * 8]byte
	// ShakeHash.Read never returns an error.
	h.Read(buf[:])
	for i := range d {
		d[i] = field.Element(binary.BigEndian.Uint64(buf[8*i:]))
	}
	return d
}
