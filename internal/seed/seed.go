// AngelaMos | 2026
// seed.go

package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/angelamos/copilothub/internal/core"
	"github.com/angelamos/copilothub/internal/jump"
	"github.com/angelamos/copilothub/internal/store"
	"github.com/angelamos/copilothub/internal/user"
)

// Seeder populates an empty deployment with a starter account per role and
// three catalog entries. It is idempotent: a non-empty users collection
// means the deployment is already initialized and the whole run is skipped.
type Seeder struct {
	users  *store.Collection[user.User, *user.User]
	jumps  *store.Collection[jump.Jump, *jump.Jump]
	logger *slog.Logger
}

func NewSeeder(
	users *store.Collection[user.User, *user.User],
	jumps *store.Collection[jump.Jump, *jump.Jump],
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		users:  users,
		jumps:  jumps,
		logger: logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		s.logger.Info("seed skipped, users collection not empty",
			slog.Int("users", count),
		)
		return nil
	}

	copilotID, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}

	if err := s.seedJumps(ctx, copilotID); err != nil {
		return err
	}

	s.logger.Info("seed complete")
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) (copilotID string, err error) {
	starters := []struct {
		name     string
		email    string
		role     string
		password string
	}{
		{"Admin", "admin@copilothub.dev", user.RoleAdmin, "admin-changeme"},
		{"Carla Copilot", "copilot@copilothub.dev", user.RoleCopilot, "copilot-changeme"},
		{"Carlos Client", "client@copilothub.dev", user.RoleClient, "client-changeme"},
	}

	for _, starter := range starters {
		hash, hashErr := core.HashPassword(starter.password)
		if hashErr != nil {
			return "", fmt.Errorf("hash seed password: %w", hashErr)
		}

		u := user.User{
			Name:         starter.name,
			Email:        starter.email,
			PasswordHash: hash,
			Role:         starter.role,
		}
		switch starter.role {
		case user.RoleCopilot:
			u.Copilot = &user.CopilotProfile{
				Bio:         "AI-assisted delivery across the starter catalog.",
				Specialties: []string{"automation", "integrations"},
			}
		case user.RoleClient:
			u.Client = &user.ClientProfile{
				Company: "Acme Ventures",
				Sector:  "retail",
			}
		}

		created, createErr := s.users.Create(ctx, u)
		if createErr != nil {
			return "", fmt.Errorf("seed user %s: %w", starter.email, createErr)
		}

		if starter.role == user.RoleCopilot {
			copilotID = created.ID
		}

		s.logger.Info("seeded user",
			slog.String("email", starter.email),
			slog.String("role", starter.role),
		)
	}

	return copilotID, nil
}

func (s *Seeder) seedJumps(ctx context.Context, copilotID string) error {
	catalog := []jump.Jump{
		{
			Name:               "Customer Support Assistant",
			Description:        "Deflect and triage support conversations with a tuned assistant.",
			Category:           "support",
			Type:               "assistant",
			Modules:            []string{"intake", "triage", "handoff"},
			BasePrice:          2500,
			CustomizationHours: 20,
			Visibility:         jump.VisibilityAll,
			Status:             jump.StatusActive,
		},
		{
			Name:               "Sales Outreach Engine",
			Description:        "Personalized outbound sequences with reply classification.",
			Category:           "sales",
			Type:               "automation",
			Modules:            []string{"prospecting", "sequencing", "reporting"},
			BasePrice:          4000,
			CustomizationHours: 32,
			Visibility:         jump.VisibilityClient,
			Status:             jump.StatusActive,
		},
		{
			Name:               "Back-Office Document Pipeline",
			Description:        "Extract, validate and route inbound documents.",
			Category:           "operations",
			Type:               "pipeline",
			Modules:            []string{"ocr", "validation", "routing", "archive"},
			BasePrice:          6000,
			CustomizationHours: 48,
			Visibility:         jump.VisibilityCopilot,
			Status:             jump.StatusActive,
		},
	}

	for i := range catalog {
		if copilotID != "" {
			catalog[i].SuggestedCopilots = []string{copilotID}
		}

		if _, err := s.jumps.Create(ctx, catalog[i]); err != nil {
			return fmt.Errorf("seed jump %s: %w", catalog[i].Name, err)
		}

		s.logger.Info("seeded jump", slog.String("name", catalog[i].Name))
	}

	return nil
}
