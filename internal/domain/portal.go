package domain

import "time"

// Portal represents a help-center site owned by one account.
type Portal struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	CustomDomain *string   `json:"custom_domain,omitempty"`
	Color        *string   `json:"color,omitempty"`
	HomepageLink *string   `json:"homepage_link,omitempty"`
	PageTitle    *string   `json:"page_title,omitempty"`
	HeaderText   *string   `json:"header_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Category groups articles within a portal and scopes their manual ordering.
type Category struct {
	ID          string    `json:"id"`
	PortalID    string    `json:"portal_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Locale      string    `json:"locale"`
	Description *string   `json:"description,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
