package directory

import (
	"context"
	"fmt"

	"hiredesk/internal/entity"
	"hiredesk/internal/logging"
)

var seedCandidates = []entity.Candidate{
	{FirstName: "Jane", LastName: "Lee", Position: "Backend Engineer", Email: "jane.lee@example.com"},
	{FirstName: "Marcus", LastName: "Okafor", Position: "Frontend Developer", Email: "marcus.okafor@example.com"},
	{FirstName: "Priya", LastName: "Sharma", Position: "Data Scientist", Email: "priya.sharma@example.com"},
	{FirstName: "Tomás", LastName: "Ribeiro", Position: "DevOps Engineer", Email: "tomas.ribeiro@example.com"},
	{FirstName: "Elif", LastName: "Kaya", Position: "Product Manager", Email: "elif.kaya@example.com"},
}

var seedCompanies = []entity.Company{
	{Name: "Acme Corp", Industry: "Fintech", ContactPerson: "Dana Whitfield"},
	{Name: "Northwind Labs", Industry: "Biotech", ContactPerson: "Samir Haddad"},
	{Name: "Bluepeak Systems", Industry: "Cloud Infrastructure", ContactPerson: "Ingrid Olsen"},
	{Name: "Verdant Retail", Industry: "E-commerce", ContactPerson: "Luca Moretti"},
}

// Seed inserts sample data when the directory is empty. A populated
// directory is left untouched.
func (s *Store) Seed(ctx context.Context) error {
	candidates, companies, err := s.Counts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check directory counts: %w", err)
	}
	if candidates > 0 || companies > 0 {
		logging.Directory("seed skipped: directory already has %d candidates, %d companies", candidates, companies)
		return nil
	}

	for _, c := range seedCandidates {
		if _, err := s.AddCandidate(ctx, c); err != nil {
			return err
		}
	}
	for _, c := range seedCompanies {
		if _, err := s.AddCompany(ctx, c); err != nil {
			return err
		}
	}

	logging.Directory("seeded %d candidates, %d companies", len(seedCandidates), len(seedCompanies))
	return nil
}
