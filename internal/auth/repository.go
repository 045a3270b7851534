// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"fmt"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/store"
)

// Repository keeps refresh tokens in the refresh_tokens collection.
type Repository struct {
	tokens *store.Collection[RefreshToken, *RefreshToken]
}

func NewRepository(
	tokens *store.Collection[RefreshToken, *RefreshToken],
) *Repository {
	return &Repository{tokens: tokens}
}

func (r *Repository) Create(
	ctx context.Context,
	token RefreshToken,
) (*RefreshToken, error) {
	return r.tokens.Create(ctx, token)
}

func (r *Repository) FindByHash(
	ctx context.Context,
	hash string,
) (*RefreshToken, error) {
	matched, err := r.tokens.Filter(ctx, func(t RefreshToken) bool {
		return t.TokenHash == hash
	})
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("find refresh token: %w", core.ErrNotFound)
	}

	return &matched[0], nil
}

func (r *Repository) MarkAsUsed(
	ctx context.Context,
	id, replacedByID string,
) error {
	t, err := r.tokens.GetByID(ctx, id)
	if err != nil {
		return err
	}

	t.MarkAsUsed(replacedByID)
	_, err = r.tokens.Update(ctx, *t)
	return err
}

func (r *Repository) RevokeByID(ctx context.Context, id string) error {
	t, err := r.tokens.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.IsRevoked() {
		return nil
	}

	t.Revoke()
	_, err = r.tokens.Update(ctx, *t)
	return err
}

// RevokeByFamilyID revokes every live token in a rotation family. Used when
// token reuse is detected.
func (r *Repository) RevokeByFamilyID(ctx context.Context, familyID string) error {
	matched, err := r.tokens.Filter(ctx, func(t RefreshToken) bool {
		return t.FamilyID == familyID && !t.IsRevoked()
	})
	if err != nil {
		return err
	}

	for i := range matched {
		matched[i].Revoke()
		if _, err := r.tokens.Update(ctx, matched[i]); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) RevokeAllForUser(ctx context.Context, userID string) error {
	matched, err := r.tokens.Filter(ctx, func(t RefreshToken) bool {
		return t.UserID == userID && !t.IsRevoked()
	})
	if err != nil {
		return err
	}

	for i := range matched {
		matched[i].Revoke()
		if _, err := r.tokens.Update(ctx, matched[i]); err != nil {
			return err
		}
	}

	return nil
}

// PurgeExpired drops tokens past expiry in one collection write.
func (r *Repository) PurgeExpired(ctx context.Context) (int, error) {
	return r.tokens.DeleteWhere(ctx, func(t RefreshToken) bool {
		return t.IsExpired()
	})
}
