package domain

// User is the identity record for a logged-in account. It is replaced
// wholesale on re-fetch, never mutated field by field.
type User struct {
	ID    string
	Email string
	Name  string
}

// UserAccount is the backend-side record, including the credential the
// mock API filters on. The client never keeps the password around; it
// only travels through the wire DTO.
type UserAccount struct {
	ID       string
	Email    string
	Name     string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name     string
	Email    string
	Password string
}

// LoginResult carries the synthesized session token and the id of the
// matched user. A nil result means "invalid credentials" to the caller,
// whether the lookup came back empty or the request itself failed.
type LoginResult struct {
	Token  string
	UserID string
}
