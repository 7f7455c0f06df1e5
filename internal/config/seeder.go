package config

import (
	"fmt"
	"log"

	"community-watch/internal/adapters/persistence/models"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/password"

	"gorm.io/gorm"
)

// DefaultCategories are the crime categories every installation starts with
var DefaultCategories = []string{"Theft", "Assault", "Fraud", "Vandalism", "Traffic"}

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes the seeders needed on every start. It is idempotent.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedCategories(); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// RunDemo seeds an admin officer plus demo officers, reports and assignments.
// Development use only.
func (s *Seeder) RunDemo(seed SeedConfig) error {
	if err := s.Run(); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		admin, err := seedOfficer(tx, models.PoliceOfficer{
			Name:        "Station Admin",
			BadgeNumber: "90000001",
			Rank:        "Chief",
			Email:       seed.AdminEmail,
			Phone:       "0700000001",
			Role:        string(domain.RoleAdmin),
		}, seed.AdminPassword)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Printf("✅ Admin officer ready: %s", admin.Email)

		demoOfficers := []models.PoliceOfficer{
			{Name: "Jane Mwangi", BadgeNumber: "10000001", Rank: "Inspector", Email: "jane.mwangi@communitywatch.local", Phone: "0711000001"},
			{Name: "Peter Otieno", BadgeNumber: "10000002", Rank: "Sergeant", Email: "peter.otieno@communitywatch.local", Phone: "0711000002"},
			{Name: "Grace Wanjiru", BadgeNumber: "10000003", Rank: "Constable", Email: "grace.wanjiru@communitywatch.local", Phone: "0711000003"},
		}

		var officers []*models.PoliceOfficer
		for _, demo := range demoOfficers {
			demo.Role = string(domain.RoleOfficer)
			officer, err := seedOfficer(tx, demo, seed.AdminPassword)
			if err != nil {
				return fmt.Errorf("seed officer %s: %w", demo.Email, err)
			}
			officers = append(officers, officer)
		}

		var reportCount int64
		if err := tx.Model(&models.CrimeReport{}).Count(&reportCount).Error; err != nil {
			return err
		}
		if reportCount > 0 {
			log.Println("⚠️ Demo reports skipped: reports already exist")
			return nil
		}

		categoryIDs := map[string]uint{}
		var categories []models.CrimeCategory
		if err := tx.Find(&categories).Error; err != nil {
			return err
		}
		for _, c := range categories {
			categoryIDs[c.Name] = c.ID
		}

		high := "high"
		reports := []models.CrimeReport{
			{Title: "Stolen bicycle", Description: "Bicycle taken from the market rack", Location: "Central Market", Status: string(domain.StatusOpen), CrimeCategoryID: categoryIDs["Theft"]},
			{Title: "Bar fight", Description: "Two patrons injured outside a bar", Location: "Main Street", Status: string(domain.StatusPending), Priority: &high, CrimeCategoryID: categoryIDs["Assault"]},
			{Title: "Card skimming", Description: "Skimmer found on an ATM", Location: "Bank Road", Status: string(domain.StatusClosed), CrimeCategoryID: categoryIDs["Fraud"]},
		}
		for i := range reports {
			if err := tx.Create(&reports[i]).Error; err != nil {
				return fmt.Errorf("seed report %s: %w", reports[i].Title, err)
			}
		}

		assignments := []models.Assignment{
			{RoleInCase: "Lead Investigator", CrimeReportID: reports[0].ID, OfficerID: officers[0].ID},
			{RoleInCase: "Support Officer", CrimeReportID: reports[0].ID, OfficerID: officers[2].ID},
			{RoleInCase: "Lead Investigator", CrimeReportID: reports[1].ID, OfficerID: officers[1].ID},
		}
		for i := range assignments {
			if err := tx.Create(&assignments[i]).Error; err != nil {
				return fmt.Errorf("seed assignment: %w", err)
			}
		}

		log.Printf("✅ Demo data created: %d officers, %d reports, %d assignments",
			len(officers), len(reports), len(assignments))
		return nil
	})
}

// seedCategories inserts any missing default category
func (s *Seeder) seedCategories() error {
	for _, name := range DefaultCategories {
		category := models.CrimeCategory{Name: name}
		if err := s.db.Where(models.CrimeCategory{Name: name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedOfficer returns the officer with the same email, creating it when absent
func seedOfficer(tx *gorm.DB, officer models.PoliceOfficer, rawPassword string) (*models.PoliceOfficer, error) {
	var existing models.PoliceOfficer
	err := tx.Where("email = ?", officer.Email).Limit(1).Find(&existing).Error
	if err != nil {
		return nil, err
	}
	if existing.ID != 0 {
		return &existing, nil
	}

	hashedPassword, err := password.Hash(rawPassword)
	if err != nil {
		return nil, err
	}
	officer.PasswordHash = hashedPassword

	if err := tx.Create(&officer).Error; err != nil {
		return nil, err
	}
	return &officer, nil
}
