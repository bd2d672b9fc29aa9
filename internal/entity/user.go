package entity

// User is a registered account. Password holds the opaque string given at
// registration and is compared by exact match on login. Known limitation:
// credentials are not hashed, matching the service this replaces.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
