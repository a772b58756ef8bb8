package domain

import "time"

// Project is an entry in the portal's project directory. URL must be a
// well-formed absolute URL; Description is optional free text.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
