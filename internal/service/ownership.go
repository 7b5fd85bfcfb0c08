package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/store"
)

// ownerLookup returns the id of the user owning the entity with the given id.
type ownerLookup func(ctx context.Context, id int64) (int64, error)

// authorize checks that actorID owns the entity. Missing entities and
// entities of other users both yield notFound.
func authorize(ctx context.Context, owner ownerLookup, id, actorID int64, notFound error) error {
	ownerID, err := owner(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound
		}
		return fmt.Errorf("ownership lookup failed: %w", err)
	}

	if ownerID != actorID {
		return notFound
	}

	return nil
}

// translate converts store sentinels to the entity's not-found error.
func translate(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrIntegrity) {
		return notFound
	}
	return err
}
