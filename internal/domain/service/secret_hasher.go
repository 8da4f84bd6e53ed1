package service

// SecretHasher hashes and verifies reseller API secrets.
type SecretHasher interface {
	// Hash returns the hash of a plaintext secret.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret against a stored hash.
	Check(secret, hash string) bool
}
