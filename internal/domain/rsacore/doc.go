// Package rsacore defines the types, errors and component contracts of a textbook
// (unpadded) RSA cryptosystem: Fermat primality testing, bounded prime search,
// key-pair derivation and byte-wise modular-exponentiation encryption.
//
// Nothing in this package is suitable for protecting real data. Encryption is
// deterministic, every plaintext byte becomes its own ciphertext unit and the
// primality test accepts Carmichael numbers.
package rsacore
