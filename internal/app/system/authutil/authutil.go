// Package authutil wraps password hashing for the credential store.
package authutil

import "golang.org/x/crypto/bcrypt"

// hashCost matches the cost factor the accounts in production were
// created with; raising it would orphan existing hashes only on rehash.
const hashCost = 10

// HashPassword produces a salted bcrypt digest of the plaintext.
func HashPassword(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// Any failure reads as "wrong password"; callers cannot distinguish a
// corrupt digest from a mismatch.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
