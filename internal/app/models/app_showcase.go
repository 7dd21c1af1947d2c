package models

import "time"

// SliderImage is one screenshot of the app showcase slider
type SliderImage struct {
	Src string `json:"src" binding:"required" example:"/uploads/sliderImages-1700000000000-1a2b3c4d.png"`
	Alt string `json:"alt" example:"Portfolio screen"`
}

// AppShowcase is the single mobile-app section row
type AppShowcase struct {
	ID           int64         `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	Features     []string      `json:"features" db:"features"`
	SliderImages []SliderImage `json:"sliderImages" db:"slider_images"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}
