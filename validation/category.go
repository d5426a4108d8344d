package validation

import (
	"strings"

	"bloomie-blog/models"
)

// NormalizeCategory trims string fields and applies the default color.
func NormalizeCategory(c *models.Category) {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)
	c.Description = strings.TrimSpace(c.Description)
	c.Color = strings.TrimSpace(c.Color)
	if c.Color == "" {
		c.Color = models.DefaultCategoryColor
	}
}

// ValidateCategory checks all field constraints on a normalized category.
func ValidateCategory(c *models.Category) Errors {
	var errs Errors

	checkLen(&errs, "name", c.Name, 2, 50, true)
	checkLen(&errs, "description", c.Description, 0, 500, false)
	if !hexColorRe.MatchString(c.Color) {
		errs.add("color", "must be a 6-digit hex color code (e.g. #FF5733)")
	}
	if c.BlogCount < 0 {
		errs.add("blogCount", "cannot be negative")
	}

	return errs
}
