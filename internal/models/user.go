package models

// User is the account payload returned by the identity API on a successful login.
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Photo       string `json:"photo,omitempty"`
	CompanyID   string `json:"companyId,omitempty"`
	Type        string `json:"type,omitempty"`
	AccessToken string `json:"token,omitempty"`
}

func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "" && u.FirstName != u.LastName:
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.UserName
	}
}
