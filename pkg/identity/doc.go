// Package identity derives self-certifying did:key identifiers from
// secp256k1 key pairs.
//
// A did:key identifier encodes a public key directly, so a device can prove
// its identity to an attestor without any prior registration step:
//
//	did, err := identity.DIDFromPrivateKey(privkey)
//	// did:key:z...
//
// The encoding is byte-exact per the did:key method for secp256k1:
//
//   - serialize the public key in SEC1 compressed form (33 bytes)
//   - prepend the secp256k1-pub multicodec bytes 0xe7 0x01
//   - encode with base58btc
//   - prefix 'z' (the multibase indicator for base58btc) and "did:key:"
//
// Derivation is deterministic: the same key always yields the same DID.
//
// Private keys are caller-owned 32-byte scalars; this package never stores
// or logs them.
package identity
