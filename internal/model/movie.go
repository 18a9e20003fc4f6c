package model

import "time"

// Year of the first film ever made; nothing in the catalog can predate it.
const MinMovieYear = 1888

// Movie represents a single entry in the movie catalog.
type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null;index"`
	Year        int       `json:"year" gorm:"not null"`
	Director    string    `json:"director" gorm:"size:255;not null;index"`
	Genre       string    `json:"genre,omitempty" gorm:"size:100"`
	Rating      *int      `json:"rating,omitempty"`
	Description string    `json:"description,omitempty" gorm:"size:1000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
