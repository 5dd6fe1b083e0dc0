package models

// Product is a catalog entry the customer can order
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// ProductInput is the payload for creating a catalog entry
type ProductInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}
