package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt reads at most 72 bytes of input and Go's implementation rejects
// anything longer, so both hashing and verification truncate to 72 bytes.
// Existing digests were produced under the same rule; changing it would
// lock out users with long passwords.
const maxPasswordBytes = 72

func truncatePassword(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword hashes a plaintext password with bcrypt. The salt is
// generated per call, so equal passwords produce different digests.
func HashPassword(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(truncatePassword(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether plain matches the bcrypt digest.
// Returns false, never an error, on malformed digests.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncatePassword(plain)) == nil
}
