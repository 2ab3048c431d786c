// Package password wraps the adaptive hash used for user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Cost fixo em 12: acima do default do bcrypt, compatível com os hashes
// já existentes no banco.
const Cost = 12

func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. The comparison is
// constant-time inside bcrypt.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
