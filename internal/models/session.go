package models

import "time"

// Session is the public view of an authenticated session.
type Session struct {
	User        SessionUser `json:"user"`
	AccessToken string      `json:"accessToken,omitempty"`
	Expires     time.Time   `json:"expires"`
}

type SessionUser struct {
	ID        string `json:"id"`
	UserName  string `json:"userName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Image     string `json:"image,omitempty"`
	CompanyID string `json:"companyId,omitempty"`
	Type      string `json:"type,omitempty"`
}
