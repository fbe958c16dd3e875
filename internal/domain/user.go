package domain

type Account struct {
	ID       int64
	Username string
	Email    string
	// Followers holds the ids of the accounts following this one, Following the ids
	// this account follows. Both are projections of the same edge set: b is in
	// a.Following exactly when a is in b.Followers.
	Followers []int64
	Following []int64
}

// AuthData is the credential record for an account. It never leaves the db and
// service layers.
type AuthData struct {
	ID       int64
	Username string
	Password string
}

// IsFollowing reports whether the account follows the account with the given id.
func (a Account) IsFollowing(id int64) bool {
	for _, f := range a.Following {
		if f == id {
			return true
		}
	}
	return false
}
