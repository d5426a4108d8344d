package dto

// CategoryInput is the request body for creating and updating a category.
// Pointer fields distinguish absent from zero on update.
type CategoryInput struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Active      *bool   `json:"active"`
}
