package entity

// Link is a named URL bookmark owned by exactly one user. OwnerID is a
// foreign reference to User.ID; every read and delete is scoped by it.
type Link struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"-"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}
