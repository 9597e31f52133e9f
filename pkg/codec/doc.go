// Package codec provides the binary-to-text encodings used by the lcore-go
// identity and signing pipeline.
//
// Two encodings are implemented:
//
//   - base58btc (Bitcoin alphabet), used for the multibase segment of
//     did:key identifiers
//   - unpadded base64url, used for the segments of compact JWS envelopes
//
// # Base58btc
//
// The base58btc encoder preserves leading-zero-byte semantics: every leading
// 0x00 byte of the input becomes a leading '1' character of the output.
//
//	out, err := codec.Base58EncodeToString([]byte{0xe7, 0x01, 0x02})
//
// Callers that manage their own buffers can query the worst-case size first:
//
//	dst := make([]byte, codec.Base58MaxLen(len(src)))
//	n, err := codec.Base58Encode(dst, src)
//
// # Base64url
//
// The base64url encoder produces unpadded output as required by the JWS
// compact serialization (RFC 7515):
//
//	seg, err := codec.Base64URLEncodeToString(header)
//
// # Error Handling
//
// Both encoders fail with lcore.ErrInvalidInput on a nil source and with
// lcore.ErrBufferTooSmall when a caller-supplied destination cannot hold the
// full output. Nothing is written to the destination on failure.
package codec
