package domain

// PasswordHasher hides the hashing scheme from the use cases.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) bool
}

// TokenClaims is what a signed session token asserts about its bearer.
type TokenClaims struct {
	UserID  int64
	Email   string
	IsAdmin bool
}

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Sign(claims TokenClaims) (string, error)
	Verify(token string) (TokenClaims, error)
}
