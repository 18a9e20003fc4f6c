package main

import (
	"context"
	"log"

	"movielist/internal/config"
	"movielist/internal/db"
	"movielist/internal/model"
	"movielist/internal/pagination"
	"movielist/internal/query"
	"movielist/internal/repository"
)

var pageOne = pagination.Params{Page: 1, PageSize: 1}

func ratingOf(r int) *int { return &r }

// sampleMovies is a small fixed catalog for local development.
var sampleMovies = []model.Movie{
	{Title: "Seven Samurai", Year: 1954, Director: "Akira Kurosawa", Genre: "Drama", Rating: ratingOf(5)},
	{Title: "City of God", Year: 2002, Director: "Fernando Meirelles", Genre: "Crime", Rating: ratingOf(5)},
	{Title: "Central Station", Year: 1998, Director: "Walter Salles", Genre: "Drama", Rating: ratingOf(4)},
	{Title: "The Godfather", Year: 1972, Director: "Francis Ford Coppola", Genre: "Crime", Rating: ratingOf(5)},
	{Title: "Spirited Away", Year: 2001, Director: "Hayao Miyazaki", Genre: "Animation", Rating: ratingOf(5)},
	{Title: "Blade Runner", Year: 1982, Director: "Ridley Scott", Genre: "Science Fiction", Rating: ratingOf(4)},
	{Title: "Alien", Year: 1979, Director: "Ridley Scott", Genre: "Horror", Rating: ratingOf(4)},
	{Title: "A Trip to the Moon", Year: 1902, Director: "Georges Melies", Genre: "Science Fiction", Rating: ratingOf(3)},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Movie{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	movieRepo := repository.NewMovieRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, movie := range sampleMovies {
		// Skip titles already present so the script stays re-runnable.
		existing, _, err := movieRepo.Search(ctx,
			query.MovieFilters{Title: movie.Title, ExactMatch: true},
			query.Sort{},
			pageOne,
		)
		if err != nil {
			log.Fatalf("Failed to check for %q: %v", movie.Title, err)
		}
		if len(existing) > 0 {
			skipped++
			continue
		}

		m := movie
		if err := movieRepo.Create(ctx, &m); err != nil {
			log.Fatalf("Failed to seed %q: %v", movie.Title, err)
		}
		created++
	}

	log.Printf("Seed completed: %d created, %d already present", created, skipped)
}
