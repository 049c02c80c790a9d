package services

import (
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

const bcryptCost = 11

// commonPasswords is a denylist of passwords rejected at registration even
// when they satisfy the length rule.
var commonPasswords = map[string]bool{
	"password":   true,
	"password1":  true,
	"12345678":   true,
	"123456789":  true,
	"qwerty123":  true,
	"letmein123": true,
	"iloveyou1":  true,
}

// HashPassword derives a salted one-way digest of the plaintext.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// ComparePasswords reports whether the candidate matches the stored digest.
func ComparePasswords(digest, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}

func IsCommonPassword(plain string) bool {
	return commonPasswords[plain]
}
