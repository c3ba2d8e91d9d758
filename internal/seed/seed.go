// Package seed creates default data on startup.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/nkurunziza/erinda/internal/app/models"
	"github.com/nkurunziza/erinda/internal/app/repositories"
	"github.com/nkurunziza/erinda/internal/pkg/apperrors"
	"github.com/nkurunziza/erinda/internal/pkg/auth"
)

// CreateDefaultData ensures a bootstrap admin account exists so a fresh
// deployment can be administered before anyone registers.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	hashed, err := auth.HashPassword("ChangeMe123!")
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@e-rinda.local",
		Password: hashed,
		FullName: "System Administrator",
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrIdentityTaken) {
			lgr.Debug().Msg("Default admin already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Failed to create default admin")
		return err
	}

	lgr.Info().Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
