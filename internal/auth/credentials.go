package auth

// users is the fixed demo credential store shared by both login mechanisms.
// Plaintext on purpose: this server exists to demonstrate the two token
// flows, not credential storage.
var users = map[string]string{
	"admin": "admin123",
	"user":  "user123",
}

// Authenticate checks username/password against the fixed store.
// Case-sensitive exact match, no lockout.
func Authenticate(username, password string) bool {
	pw, ok := users[username]
	return ok && pw == password
}
