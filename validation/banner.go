package validation

import (
	"strings"

	"bloomie-blog/models"
)

// NormalizeBanner trims all banner string fields.
func NormalizeBanner(b *models.Banner) {
	b.Header = strings.TrimSpace(b.Header)
	b.Text = strings.TrimSpace(b.Text)
	b.ButtonText = strings.TrimSpace(b.ButtonText)
	b.ButtonLink = strings.TrimSpace(b.ButtonLink)
	b.BackgroundImage = strings.TrimSpace(b.BackgroundImage)
}

// ValidateBanner checks all field constraints on a normalized banner.
func ValidateBanner(b *models.Banner) Errors {
	var errs Errors

	checkLen(&errs, "header", b.Header, 0, 100, true)
	checkLen(&errs, "text", b.Text, 0, 500, true)
	checkLen(&errs, "buttonText", b.ButtonText, 0, 50, false)

	return errs
}
