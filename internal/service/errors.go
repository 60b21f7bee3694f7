package service

import (
	"errors"

	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/apperr"
	"github.com/AbdulMoiz2493/Movie-Recommendation-System/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// saveErr traduce los errores de persistencia a la taxonomía de la API.
// Un conflicto de versión (write guard activo) se reporta como 409 para
// que el cliente reintente con el documento fresco.
func saveErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrVersionConflict):
		return apperr.Conflict("the document was modified concurrently, retry the operation")
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperr.NotFound("document no longer exists")
	default:
		return err
	}
}
