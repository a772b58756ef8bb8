package service

import "golang.org/x/crypto/bcrypt"

// PlainVerifier compares the presented password byte-for-byte against the
// stored cleartext secret. This is the portal's stock behaviour, kept behind
// the ports.CredentialVerifier seam so hardened deployments can swap it out.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, presented string) bool {
	return stored == presented
}

// BcryptVerifier treats the stored secret as a bcrypt hash. Directories
// seeded with hashed passwords use this verifier; nothing else in the session
// manager changes.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
