package domain

import "time"

// BlogPost is a journal entry. Only published posts are visible publicly.
type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	CoverImageURL string    `json:"cover_image_url"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"created_at"`
}
