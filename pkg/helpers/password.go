package helpers

import "golang.org/x/crypto/bcrypt"

// MinHashCost is the lowest bcrypt work factor the service accepts.
// Config may raise it (12 by default) but never lower it below this.
const MinHashCost = 10

// dummyHash is a precomputed bcrypt digest (cost 12) compared against when a
// login names an unknown user, so the miss path costs the same as a real
// password check and response timing does not reveal whether a username exists.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// HashPassword hashes the plain text password using bcrypt at the given cost.
func HashPassword(plain string, cost int) (string, error) {
	if cost < MinHashCost {
		cost = MinHashCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// DummyCompare burns a full bcrypt comparison against the fixed digest and
// always reports a mismatch.
func DummyCompare(plain string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
	return false
}
