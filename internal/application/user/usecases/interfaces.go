package usecases

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints signed session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role string) (string, error)
}
