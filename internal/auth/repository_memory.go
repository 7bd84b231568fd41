package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Stub credential for the single test user. Real credential storage is
// out of scope for this service.
const (
	StubUsername = "testuser"
	StubPassword = "fakehashedsecret"
)

type InMemoryUserRepository struct {
	users map[string]*User
}

// NewInMemoryUserRepository seeds the store with the stub user, hashing
// its password the same way a registered user's would be.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	hashed, err := bcrypt.GenerateFromPassword([]byte(StubPassword), bcrypt.DefaultCost)
	if err != nil {
		panic("auth: failed to hash stub password: " + err.Error())
	}

	return &InMemoryUserRepository{
		users: map[string]*User{
			StubUsername: {
				Username: StubUsername,
				FullName: "Test User",
				Email:    "testuser@example.com",
				Password: string(hashed),
			},
		},
	}
}

func (r *InMemoryUserRepository) FindByUsername(username string) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}
