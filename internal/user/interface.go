package user

// UserStore defines the user profile read path. Account creation and session
// handling live in the auth layer, outside this service.
type UserStore interface {
	GetProfile(id int64) (*Profile, error)
}
