// seed loads a catalog fixture (users, places with hotels, packages)
// into the store. Places are inserted concurrently with a bounded
// worker pool; hotels and packages follow once their parents exist.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"tripmate/internal/adapters/observability"
	"tripmate/internal/domain"
	"tripmate/internal/shared"
	mysqlrepo "tripmate/internal/storage/mysql"
)

type fixture struct {
	Users  []domain.User `json:"users"`
	Places []struct {
		domain.Place
		Hotels []domain.Hotel `json:"hotels"`
	} `json:"places"`
	Packages []domain.TravelPackage `json:"packages"`
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Str("file", cfg.SeedFile).Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var fx fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	repo := mysqlrepo.New(db)

	for i := range fx.Users {
		u := &fx.Users[i]
		if u.Role == "" {
			u.Role = domain.RoleUser
		}
		if u.Status == "" {
			u.Status = domain.UserActive
		}
		if err := repo.CreateUser(ctx, u); err != nil {
			log.Warn().Str("email", u.Email).Err(err).Msg("seed user failed")
			continue
		}
		log.Info().Int64("id", u.ID).Str("email", u.Email).Msg("seeded user")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for i := range fx.Places {
		entry := &fx.Places[i]

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.CreatePlace(ctx, &entry.Place); err != nil {
				log.Warn().Str("place", entry.Name).Err(err).Msg("seed place failed")
				return
			}
			for j := range entry.Hotels {
				h := &entry.Hotels[j]
				h.PlaceID = entry.Place.ID
				if err := repo.CreateHotel(ctx, h); err != nil {
					log.Warn().Str("hotel", h.Name).Err(err).Msg("seed hotel failed")
				}
			}
			log.Info().Int64("id", entry.Place.ID).Str("name", entry.Name).
				Int("hotels", len(entry.Hotels)).Msg("seeded place")
		}()
	}
	wg.Wait()

	for i := range fx.Packages {
		p := &fx.Packages[i]
		for d := range p.Itinerary {
			p.Itinerary[d].Day = d + 1
		}
		if err := repo.CreatePackage(ctx, p); err != nil {
			log.Warn().Str("package", p.Name).Err(err).Msg("seed package failed")
			continue
		}
		log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("seeded package")
	}

	log.Info().Msg("seeding completed")
}
