// ABOUTME: Topic entity for exam topic grouping
// ABOUTME: Loose labels extracted from documents or curated by hand
package models

import "time"

// Topic is a study subject available for exam generation.
type Topic struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
