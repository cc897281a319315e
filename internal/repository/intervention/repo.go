// Package intervention persists intervention records as JSON documents.
package intervention

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/roadsafe-cloud/roadsafe/internal/db"
	"github.com/roadsafe-cloud/roadsafe/internal/domain"
	domiv "github.com/roadsafe-cloud/roadsafe/internal/domain/intervention"
)

const keyPrefix = "roadsafe:intervention:"

// store is the consumer interface for intervention documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the intervention storage contract.
type Repo struct {
	store store
}

// New creates an intervention repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Create stores a new intervention under a generated ID and returns the ID.
func (r *Repo) Create(ctx context.Context, iv domiv.Intervention) (string, error) {
	iv.ID = uuid.NewString()

	data, err := json.Marshal(iv)
	if err != nil {
		return "", fmt.Errorf("marshal intervention: %w", err)
	}

	key := docKey(iv.ID)
	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return "", storageErr("json.set", key, err)
	}
	return iv.ID, nil
}

// Get returns an intervention by ID.
func (r *Repo) Get(ctx context.Context, id string) (domiv.Intervention, error) {
	key := docKey(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domiv.Intervention{}, domain.ErrNotFound
		}
		return domiv.Intervention{}, storageErr("json.get", key, err)
	}

	iv, err := parseDoc(id, raw)
	if err != nil {
		return domiv.Intervention{}, fmt.Errorf("parse intervention %s: %w", id, err)
	}
	return iv, nil
}

// Delete removes an intervention by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := docKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return storageErr("exists", key, err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return storageErr("del", key, err)
	}
	return nil
}

// ListAll returns every stored intervention. Corrupt documents are skipped
// rather than failing the whole listing.
func (r *Repo) ListAll(ctx context.Context) ([]domiv.Intervention, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, storageErr("scan", keyPrefix+"*", err)
	}

	ivs := make([]domiv.Intervention, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.JSONGet(ctx, key, "$")
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				continue // deleted between SCAN and JSON.GET
			}
			return nil, storageErr("json.get", key, err)
		}
		iv, err := parseDoc(strings.TrimPrefix(key, keyPrefix), raw)
		if err != nil {
			continue
		}
		ivs = append(ivs, iv)
	}
	return ivs, nil
}

// Count returns the number of stored interventions.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return 0, storageErr("scan", keyPrefix+"*", err)
	}
	return len(keys), nil
}

func docKey(id string) string {
	return keyPrefix + id
}

// parseDoc decodes a JSON.GET result. With the "$" path the payload arrives
// as a one-element array.
func parseDoc(id string, raw []byte) (domiv.Intervention, error) {
	var docs []domiv.Intervention
	if err := json.Unmarshal(raw, &docs); err != nil {
		// Plain object without the root-path wrapping.
		var iv domiv.Intervention
		if err2 := json.Unmarshal(raw, &iv); err2 != nil {
			return domiv.Intervention{}, fmt.Errorf("unmarshal: %w", err)
		}
		iv.ID = id
		return iv, nil
	}
	if len(docs) == 0 {
		return domiv.Intervention{}, domain.ErrNotFound
	}
	iv := docs[0]
	iv.ID = id
	return iv, nil
}

func storageErr(op, key string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, key, domain.ErrStorageUnavailable, err)
}
