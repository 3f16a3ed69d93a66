package main

import (
	"context"
	"log"

	"companion-learning-be/internal/config"
	"companion-learning-be/internal/constant"
	"companion-learning-be/internal/entity"
	"companion-learning-be/internal/repository/specification"
	"companion-learning-be/internal/repository/unitofwork"
	"companion-learning-be/pkg/database"

	"github.com/google/uuid"
)

// seedAuthor owns the starter catalog so it never counts against a real user's quota.
const seedAuthor = "system_seed"

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	repo := uow.CompanionRepository()

	log.Println("Seeding Companion Catalog...")

	companions := []entity.Companion{
		{Name: "Neura the Brainy Explorer", Subject: "science", Topic: "Neural Network of the Brain", Duration: 45},
		{Name: "Countsy the Number Wizard", Subject: "maths", Topic: "Derivatives & Integrals", Duration: 30},
		{Name: "Verba the Vocabulary Builder", Subject: "language", Topic: "English Literature", Duration: 30},
		{Name: "Codey the Logic Hacker", Subject: "coding", Topic: "Intro to If-Else Statements", Duration: 45},
		{Name: "Memo the Memory Keeper", Subject: "history", Topic: "World Wars: Causes & Consequences", Duration: 15},
		{Name: "The Market Maestro", Subject: "economics", Topic: "The Basics of Supply & Demand", Duration: 10},
	}

	for _, c := range companions {
		existing, err := repo.FindOne(ctx,
			specification.ByAuthor{Author: seedAuthor},
			specification.TopicOrNameLike{Topic: c.Name},
		)
		if err != nil {
			log.Fatalf("Error checking companion '%s': %v", c.Name, err)
		}
		if existing != nil {
			log.Printf("Companion '%s' already exists, skipping...", c.Name)
			continue
		}

		c.Id = uuid.New()
		c.Author = seedAuthor
		c.Color = constant.SubjectColors[c.Subject]
		if err := repo.Create(ctx, &c); err != nil {
			log.Printf("Error creating companion '%s': %v", c.Name, err)
		} else {
			log.Printf("Created companion: %s (%s)", c.Name, c.Subject)
		}
	}

	log.Println("Companion seeding completed!")
}
