package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/pathfinderhq/pathfinder/db"
	"github.com/pathfinderhq/pathfinder/internal/config"
	"github.com/pathfinderhq/pathfinder/internal/db"
	"github.com/pathfinderhq/pathfinder/internal/repository/sqlite"
	"github.com/pathfinderhq/pathfinder/pkg/models"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations, dbfs.SeedFiles); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	repo := sqlite.New(database, nil)

	samples := []models.Resource{
		{Name: "Manchester Shelter", Type: "shelter", Address: "123 Main St, Manchester, NH", Latitude: 42.9847, Longitude: -71.4774, Phone: "(603) 555-0100", Eligibility: []string{"all"}, IsActive: true},
		{Name: "Community Food Pantry", Type: "food", Address: "45 Elm St, Manchester, NH", Latitude: 42.9902, Longitude: -71.4631, Hours: "Mon-Fri 9am-5pm", Eligibility: []string{"all"}, IsActive: true},
		{Name: "Neighborhood Health Clinic", Type: "health", Address: "200 Hanover St, Manchester, NH", Latitude: 42.9935, Longitude: -71.4551, Eligibility: []string{"all"}, IsActive: true},
	}
	for _, res := range samples {
		if _, err := repo.CreateResource(ctx, &res); err != nil {
			fmt.Fprintf(os.Stderr, "Seed resource error: %v\n", err)
			os.Exit(1)
		}
	}

	job := models.Job{
		Title:          "Warehouse Associate",
		Company:        "Granite State Logistics",
		Description:    "Entry-level warehouse role, no experience required.",
		Location:       "Manchester, NH",
		EmploymentType: "Full-time",
		IsActive:       true,
	}
	if _, err := repo.CreateJob(ctx, &job); err != nil {
		fmt.Fprintf(os.Stderr, "Seed job error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized and seeded.")
}
