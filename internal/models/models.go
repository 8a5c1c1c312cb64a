package models

import "time"

// Product is a catalog entry. Features and Images keep their display order.
type Product struct {
	ID               string    `gorm:"primaryKey"       json:"id"`
	Name             string    `gorm:"not null"         json:"name"`
	Slug             string    `gorm:"index;not null"   json:"slug"`
	ShortDescription string    `json:"shortDescription"`
	LongDescription  string    `json:"longDescription"`
	Dimensions       string    `json:"dimensions,omitempty"`
	Features         []string  `gorm:"serializer:json"  json:"features"`
	PriceChild       float64   `gorm:"not null"         json:"priceChild"`
	PriceAdult       float64   `gorm:"not null"         json:"priceAdult"`
	Images           []string  `gorm:"serializer:json"  json:"images"`
	InStock          bool      `json:"inStock"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// GalleryImage is one uploaded photo. Only Alt and Tags change after upload.
type GalleryImage struct {
	ID         string    `gorm:"primaryKey"      json:"id"`
	Filename   string    `gorm:"not null"        json:"filename"`
	Path       string    `gorm:"not null"        json:"path"`
	Alt        string    `json:"alt"`
	Tags       []string  `gorm:"serializer:json" json:"tags"`
	UploadedAt time.Time `json:"uploadedAt"`
}
