// Package jws builds compact JWS envelopes signed with ES256K (ECDSA over
// secp256k1 with SHA-256).
//
// # Creating a JWS
//
// Sign a JSON payload with a raw 32-byte private key:
//
//	envelope, err := jws.Sign([]byte(`{"temperature":23.4}`), privkey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// eyJhbGciOiJFUzI1NksiLCJ0eXAiOiJKV1MifQ.eyJ0ZW1wZXJhdHVyZ....
//
// The protected header is the fixed object {"alg":"ES256K","typ":"JWS"}, so
// the first segment of every envelope produced by this package is identical.
// The payload is treated as opaque text: it is neither parsed nor validated.
//
// # Signature Form
//
// Signatures are serialized as 64 raw bytes, r then s, each zero-padded
// big-endian to 32 bytes, then base64url-encoded. The s component is always
// normalized to the lower half of the curve order ("low-S"), eliminating the
// second of the two otherwise-valid encodings per message so strict verifiers
// that reject malleable signatures accept the output.
//
// Two envelopes over the same payload share a byte-identical header segment;
// downstream verifiers must rely on signature validity, never on
// byte-for-byte signature reproducibility.
//
// # Error Handling
//
// Nil payloads or malformed keys fail with lcore.ErrInvalidInput; failures
// inside the curve primitives surface as lcore.ErrCrypto. Errors are fatal
// for the call: there are no internal retries, and no partial output is ever
// returned.
package jws
