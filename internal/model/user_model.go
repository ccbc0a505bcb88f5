package model

// User is a registered account. Password holds the bcrypt digest once the
// account is created; the raw password only exists inside the register
// request. The digest is still serialized on login because the legacy Android
// client binds the full row and ignores unknown fields.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email,omitempty"`
}
