package models

import (
	"encoding/json"
	"time"
)

// Category defines the struct for the 'categories' table.
// IDs are opaque UUID strings assigned by the store on creation.
type Category struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Slug         string    `json:"slug" db:"slug"`
	ParentID     *string   `json:"parentId" db:"parent_id"` // Pointer for NULL (top-level)
	IsEnabled    bool      `json:"isEnabled" db:"is_enabled"`
	ProductCount int64     `json:"productCount" db:"product_count"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateCategoryInput is the payload accepted when creating a category.
// Slug is never accepted from the caller; it is derived from Name.
type CreateCategoryInput struct {
	Name      string  `json:"name" binding:"required"`
	ParentID  *string `json:"parentId"`
	IsEnabled *bool   `json:"isEnabled"`
}

// OptionalString is a JSON string field that tells an absent value apart
// from an explicit null. Set becomes true when the field appears in the
// payload at all; Value stays nil when it was null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

// UpdateCategoryInput is a partial update: omitted fields are left
// untouched. ParentID must distinguish "send null" (move to top level)
// from "not sent", so it is optional rather than a plain pointer.
type UpdateCategoryInput struct {
	Name      *string        `json:"name"`
	ParentID  OptionalString `json:"parentId"`
	IsEnabled *bool          `json:"isEnabled"`
}
