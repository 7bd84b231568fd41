package auth

// User is the domain entity. Only a single stub user exists; the
// password field holds a bcrypt hash.
type User struct {
	Username string
	FullName string
	Email    string
	Password string
	Disabled bool
}
