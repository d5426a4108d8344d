package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloomie-blog/models"
	"bloomie-blog/validation"
)

func TestNormalizeCategoryAppliesDefaultColor(t *testing.T) {
	c := &models.Category{Name: " Tech "}
	validation.NormalizeCategory(c)

	assert.Equal(t, "Tech", c.Name)
	assert.Equal(t, models.DefaultCategoryColor, c.Color)
}

func TestValidateCategory(t *testing.T) {
	c := &models.Category{Name: "Tech", Color: "#FF5733"}
	assert.NoError(t, validation.ValidateCategory(c).OrNil())

	c = &models.Category{Name: "x", Color: "red", BlogCount: -1}
	errs := validation.ValidateCategory(c)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("color"))
	assert.True(t, errs.Has("blogCount"))
}

func TestValidateCategoryColorFormats(t *testing.T) {
	good := []string{"#FF5733", "#00ff00", "#AbCdEf"}
	bad := []string{"FF5733", "#FFF", "#GG5733", "#ff57331"}

	for _, v := range good {
		c := &models.Category{Name: "Tech", Color: v}
		assert.False(t, validation.ValidateCategory(c).Has("color"), "color %q", v)
	}
	for _, v := range bad {
		c := &models.Category{Name: "Tech", Color: v}
		assert.True(t, validation.ValidateCategory(c).Has("color"), "color %q", v)
	}
}

func TestValidateBanner(t *testing.T) {
	b := &models.Banner{Header: "Sale", Text: "Everything must go"}
	assert.NoError(t, validation.ValidateBanner(b).OrNil())

	b = &models.Banner{}
	errs := validation.ValidateBanner(b)
	assert.True(t, errs.Has("header"))
	assert.True(t, errs.Has("text"))
}
