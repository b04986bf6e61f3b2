package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing. Raising it slows both
// registration and login, so change it only together with a capacity review.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of the given plaintext password.
//
// bcrypt embeds a random salt in every digest, so repeated calls with the
// same plaintext yield different digests, each independently verifiable
// with CheckPasswordHash.
//
// Returns an error for an empty password or if the bcrypt operation fails
// (e.g. the plaintext exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// CheckPasswordHash reports whether the plaintext password is consistent with
// the given bcrypt digest.
//
// It returns false — never panics and never surfaces an error — for a
// mismatched password, an empty digest, or a digest that is not valid bcrypt
// output at all.
func CheckPasswordHash(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
