// Package password is the single choke point for credential hashing.
// Every write path that persists a password goes through Hash; stored
// values never hold plaintext.
package password

import "golang.org/x/crypto/bcrypt"

// Cost matches what production records were written with. Changing it
// only affects newly hashed passwords; verification reads the cost from
// the hash itself.
const Cost = 10

func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored bcrypt hash. bcrypt's
// own comparison handles the per-record salt and is constant time.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
