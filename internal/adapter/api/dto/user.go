package dto

// UserItem mirrors the backend's user record. The password travels on
// the wire (the mock backend filters on it, json-server style) but the
// domain mapper drops it.
type UserItem struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=4,max=255"`
}
