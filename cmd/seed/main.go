// seed loads users, studios and employee assignments from a YAML fixture
// file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"studioreserve/internal/database"
	"studioreserve/internal/domain"
	"studioreserve/internal/pkg/logger"
	"studioreserve/internal/pkg/password"
	"studioreserve/internal/repository"
)

type Fixtures struct {
	Users []struct {
		Username string      `yaml:"username"`
		Password string      `yaml:"password"`
		Role     domain.Role `yaml:"role"`
	} `yaml:"users"`

	Studios []struct {
		Name               string   `yaml:"name"`
		Owner              string   `yaml:"owner"`
		MaxCustomersPerDay int      `yaml:"max_customers_per_day"`
		Employees          []string `yaml:"employees"`
	} `yaml:"studios"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var dsn, file string
	var reset bool

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVar(&dsn, "dsn", os.Getenv("DATABASE_URL"), "database URL (postgres://... or a SQLite file)")
	flagSet.StringVarP(&file, "file", "f", "fixtures.yaml", "YAML fixture file")
	flagSet.BoolVar(&reset, "reset", false, "delete all existing rows before seeding")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if dsn == "" {
		dsn = "file:studioreserve.db"
	}

	logger.Init(logger.Config{Level: "info", Environment: "dev"})

	fx, err := loadFixtures(file)
	if err != nil {
		return err
	}

	db, err := database.Connect(dsn, gormlogger.Warn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return seed(context.Background(), db, fx, reset)
}

func loadFixtures(path string) (*Fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var fx Fixtures
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}
	return &fx, nil
}

func seed(ctx context.Context, db *gorm.DB, fx *Fixtures, reset bool) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			// children first so foreign keys hold without cascades
			for _, table := range []string{"reservations", "studio_employees", "studios", "users"} {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("reset %s: %w", table, err)
				}
			}
			log.Info().Msg("existing data removed")
		}

		users := repository.NewUserRepository(tx)
		studios := repository.NewStudioRepository(tx)
		employees := repository.NewStudioEmployeeRepository(tx)

		byName := make(map[string]*domain.User, len(fx.Users))
		for _, u := range fx.Users {
			if u.Role != domain.RoleNone && !u.Role.Valid() {
				return fmt.Errorf("user %q: unknown role %q", u.Username, u.Role)
			}
			hash, err := password.Hash(u.Password)
			if err != nil {
				return err
			}
			user := &domain.User{Username: u.Username, PasswordHash: hash, Role: u.Role, IsActive: true}
			if err := users.Create(ctx, user); err != nil {
				return fmt.Errorf("create user %q: %w", u.Username, err)
			}
			byName[user.Username] = user
		}

		for _, s := range fx.Studios {
			owner, ok := byName[s.Owner]
			if !ok || owner.Role != domain.RoleStudioOwner {
				return fmt.Errorf("studio %q: owner %q is not a seeded studio_owner", s.Name, s.Owner)
			}
			studio := &domain.Studio{Name: s.Name, OwnerID: owner.ID, MaxCustomersPerDay: s.MaxCustomersPerDay}
			if err := studios.Create(ctx, studio); err != nil {
				return fmt.Errorf("create studio %q: %w", s.Name, err)
			}

			for _, name := range s.Employees {
				emp, ok := byName[name]
				if !ok || emp.Role != domain.RoleEmployee {
					return fmt.Errorf("studio %q: %q is not a seeded employee", s.Name, name)
				}
				if err := employees.Create(ctx, &domain.StudioEmployee{UserID: emp.ID, StudioID: studio.ID}); err != nil {
					if database.IsUniqueViolation(err) {
						return fmt.Errorf("employee %q: %w", name, domain.ErrAlreadyAssigned)
					}
					return err
				}
			}
		}

		log.Info().
			Int("users", len(fx.Users)).
			Int("studios", len(fx.Studios)).
			Msg("seed completed")
		return nil
	})
}
