package main

import (
	"fmt"
	"time"

	"filmoteka/internal/entity"
	"filmoteka/internal/repo/persistent"
	"filmoteka/pkg/config"
	"filmoteka/pkg/database"
	"filmoteka/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(log, persistent.NewMovieRepository(db), persistent.NewUserRepository(db)); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(log *logger.Logger, movieRepo persistent.MovieRepository, userRepo persistent.UserRepository) error {
	testUsers := []struct {
		username string
		email    string
		password string
		role     entity.UserRole
	}{
		{"admin", "admin@filmoteka.local", "admin123", entity.RoleAdmin},
		{"alice", "alice@filmoteka.local", "password123", entity.RoleUser},
		{"bob", "bob@filmoteka.local", "password123", entity.RoleUser},
	}

	for _, u := range testUsers {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		user := &entity.User{
			Username: u.username,
			Email:    u.email,
			Password: string(hashed),
			Role:     u.role,
			IsActive: true,
		}
		if err := userRepo.Create(user); err != nil {
			log.Warn("Skipping user %s: %v", u.username, err)
			continue
		}
		log.Info("Created user %s", u.username)
	}

	directors := map[string]string{}
	for _, name := range []string{"Michael Mann", "Ridley Scott", "Denis Villeneuve"} {
		director, err := movieRepo.CreateDirector(name)
		if err != nil {
			log.Warn("Skipping director %s: %v", name, err)
			continue
		}
		directors[name] = director.ID
	}

	actors := map[string]string{}
	for _, name := range []string{"Al Pacino", "Robert De Niro", "Sigourney Weaver", "Timothee Chalamet"} {
		actor, err := movieRepo.CreateActor(name)
		if err != nil {
			log.Warn("Skipping actor %s: %v", name, err)
			continue
		}
		actors[name] = actor.ID
	}

	tags := map[string]string{}
	for _, name := range []string{"crime", "thriller", "sci-fi", "horror", "drama"} {
		tag, err := movieRepo.CreateTag(name)
		if err != nil {
			log.Warn("Skipping tag %s: %v", name, err)
			continue
		}
		tags[name] = tag.ID
	}

	movies := []struct {
		title       string
		releaseDate time.Time
		description string
		rating      float64
		director    string
		actorNames  []string
		tagNames    []string
	}{
		{
			title:       "Heat",
			releaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC),
			description: "A crew of professional thieves and the detective chasing them.",
			rating:      8.3,
			director:    "Michael Mann",
			actorNames:  []string{"Al Pacino", "Robert De Niro"},
			tagNames:    []string{"crime", "thriller", "drama"},
		},
		{
			title:       "Alien",
			releaseDate: time.Date(1979, 5, 25, 0, 0, 0, 0, time.UTC),
			description: "The crew of a commercial starship picks up a deadly passenger.",
			rating:      8.5,
			director:    "Ridley Scott",
			actorNames:  []string{"Sigourney Weaver"},
			tagNames:    []string{"sci-fi", "horror"},
		},
		{
			title:       "Dune",
			releaseDate: time.Date(2021, 10, 22, 0, 0, 0, 0, time.UTC),
			description: "A noble family gets drawn into a war over a desert planet.",
			rating:      8.0,
			director:    "Denis Villeneuve",
			actorNames:  []string{"Timothee Chalamet"},
			tagNames:    []string{"sci-fi", "drama"},
		},
	}

	for _, m := range movies {
		input := entity.MovieInput{
			Title:       m.title,
			ReleaseDate: m.releaseDate,
			Description: m.description,
			Rating:      m.rating,
		}
		if id, ok := directors[m.director]; ok {
			input.DirectorID = &id
		}
		for _, name := range m.actorNames {
			if id, ok := actors[name]; ok {
				input.ActorIDs = append(input.ActorIDs, id)
			}
		}
		for _, name := range m.tagNames {
			if id, ok := tags[name]; ok {
				input.TagIDs = append(input.TagIDs, id)
			}
		}

		if _, err := movieRepo.Create(input); err != nil {
			log.Warn("Skipping movie %s: %v", m.title, err)
			continue
		}
		log.Info("Created movie %s", m.title)
	}

	return nil
}
