package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a lookup by id or slug matches no document.
var ErrNotFound = errors.New("not found")

// IsDuplicateKey reports whether err is a unique-index violation, e.g. a
// lost slug race or a category name collision.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
