package model

// User represents the single artisan profile for a store namespace.
// It is overwritten wholesale on login/signup and removed on logout.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Language  string `json:"language"` // "en" or "hi"
	CreatedAt string `json:"createdAt"`
}
