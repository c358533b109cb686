package entity

// User is the owning identity for bookmark records. Passwords are stored as
// bcrypt hashes only; the plaintext never outlives the request that carried it.
// Users are immutable after registration (no update or delete path).
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
