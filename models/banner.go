package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner represents the promotional banner shown on the blog front page.
// Collection: banners
//
// Multiple banners may be marked active; the "active banner" endpoint
// returns the most recently created one.
type Banner struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Header          string             `bson:"header" json:"header"`
	Text            string             `bson:"text" json:"text"`
	ButtonText      string             `bson:"buttonText" json:"buttonText"`
	ButtonLink      string             `bson:"buttonLink" json:"buttonLink"`
	BackgroundImage string             `bson:"backgroundImage" json:"backgroundImage"`
	Active          bool               `bson:"active" json:"active"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
