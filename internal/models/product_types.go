package models

import "time"

// Product defines the struct for the 'products' table.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	CategoryID  *string   `json:"categoryId" db:"category_id"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	IsEnabled   bool      `json:"isEnabled" db:"is_enabled"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateProductInput is the payload for POST /admin/products.
type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  *string `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	IsEnabled   *bool   `json:"isEnabled"`
}

// UpdateProductInput is a partial update: nil fields are left untouched.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *string  `json:"categoryId"`
	ImageURL    *string  `json:"imageUrl"`
	IsEnabled   *bool    `json:"isEnabled"`
}
