// The initialization package contains functions that set up required dependencies,
// such as the in-memory SQLite database backing the state engine.
package initialization

import (
	"context"
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/sqlite3"
	_ "github.com/golang-migrate/migrate/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/reelapp/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// DSN is the connection string for the state database. Everything lives in process
// memory and is gone when the process exits; shared cache keeps the pool's
// connections on the same database.
const DSN = "file:reelapp?mode=memory&cache=shared"

// OpenDB opens the in-memory database. The connection limit pins the pool to a
// single connection so the memory database is never duplicated.
func OpenDB(connString string) (*sql.DB, error) {
	d, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}
	d.SetMaxOpenConns(1)
	return d, nil
}

// SetupDB applies all schema migrations to the freshly opened database.
func SetupDB(d *sql.DB, folder, dbname string) error {
	log.Info().Msg("starting migrations")
	driver, err := sqlite3.WithInstance(d, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithDatabaseInstance(
		"file://"+folder,
		dbname,
		driver,
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error().Err(err).Msg("failed to run migrations")
		return err
	}
	return nil
}

type seedAccount struct {
	username string
	email    string
	password string
	// following lists seed usernames this account follows. The set is symmetric at
	// the edge level, so both directions come out consistent.
	following []string
}

var seedAccounts = []seedAccount{
	{"editor_pro", "pro@editor.com", "password123", []string{"creative_cat"}},
	{"creative_cat", "cat@creative.com", "password123", []string{"editor_pro", "design_diva"}},
	{"design_diva", "diva@design.com", "password123", []string{"creative_cat"}},
}

// SeedAccounts loads the demo accounts and their follow edges. It is a no-op when
// any account already exists.
func SeedAccounts(ctx context.Context, d db.DB) error {
	existing, err := d.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	log.Info().Msg("seeding demo accounts")

	ids := map[string]int64{}
	for _, s := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		a, err := d.CreateAccount(ctx, s.username, s.email, string(hash))
		if err != nil {
			return err
		}
		ids[s.username] = a.ID
	}

	for _, s := range seedAccounts {
		for _, followee := range s.following {
			if _, err := d.ToggleFollow(ctx, ids[s.username], ids[followee]); err != nil {
				return err
			}
		}
	}
	return nil
}
