package jws

// Signer builds compact JWS envelopes over caller-supplied JSON payloads.
type Signer interface {
	// Sign produces the compact serialization header.payload.signature for
	// payload, signed with the raw 32-byte secp256k1 private key. The payload
	// is embedded opaquely; the caller is responsible for it being valid JSON.
	Sign(payload []byte, privkey []byte) (string, error)
}
