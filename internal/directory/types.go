package directory

// User is the full user record returned by the directory service.
// Only the fields this service consumes are mapped; the directory
// exposes more, but nothing beyond this struct is ever decoded.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
	ImageURL     string `json:"image_url"`
}

// PublicProfile is the client-safe projection of a directory user.
// This is the only author shape that may ever reach API callers.
type PublicProfile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// ProfileFor reduces a directory user to its public projection.
// All response shaping must go through this function so the
// "never leak full profile" invariant stays enforceable in one place.
func ProfileFor(u User) *PublicProfile {
	return &PublicProfile{
		ID:             u.ID,
		Username:       u.FirstName,
		ProfilePicture: u.ImageURL,
	}
}
