package dto

// BannerInput is the request body for creating and updating a banner.
// Pointer fields distinguish absent from zero on update.
type BannerInput struct {
	Header          *string `json:"header"`
	Text            *string `json:"text"`
	ButtonText      *string `json:"buttonText"`
	ButtonLink      *string `json:"buttonLink"`
	BackgroundImage *string `json:"backgroundImage"`
	Active          *bool   `json:"active"`
}
