package account

// User is a registered account. Passwords are kept exactly as entered:
// this is a demo-grade store with no hashing, matching the site it backs.
type User struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Password  string         `json:"password"`
	CreatedAt string         `json:"createdAt"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Session is the single persisted session slot. It deliberately has no
// password field, so a password can never leak into the slot.
type Session struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CreatedAt string         `json:"createdAt"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Session derives the session record for a user.
func (u User) Session() Session {
	return Session{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Metadata:  u.Metadata,
	}
}
