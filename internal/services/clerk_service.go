package services

import (
	"log"
	"strings"

	"github.com/renan-throsa/Golden-leaf/internal/models"
	"github.com/renan-throsa/Golden-leaf/internal/repositories"
)

type ClerkService interface {
	Register(name, phoneNumber, email, password string) (*models.Clerk, error)
	Get(id int) (*models.Clerk, error)
	UpdateEmail(id int, email string) (*models.Clerk, error)
}

type clerkService struct {
	repo   repositories.ClerkRepository
	emails EmailService
	auth   AuthService
}

func NewClerkService(repo repositories.ClerkRepository, emails EmailService, auth AuthService) ClerkService {
	return &clerkService{repo: repo, emails: emails, auth: auth}
}

// Register creates a clerk account from self-registration. The password is
// hashed before it reaches the repository; plaintext is never stored.
func (s *clerkService) Register(name, phoneNumber, email, password string) (*models.Clerk, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Message: "name is required"}
	}
	if len(strings.TrimSpace(password)) < 6 {
		return nil, &models.ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}

	hash, err := s.auth.HashPassword(strings.TrimSpace(password))
	if err != nil {
		return nil, err
	}
	clerk := &models.Clerk{
		Name:         name,
		PhoneNumber:  strings.TrimSpace(phoneNumber),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(clerk); err != nil {
		return nil, err
	}

	if s.emails != nil {
		if err := s.emails.SendWelcomeEmail(clerk.Email, clerk.Name); err != nil {
			// warn but do not fail registration
			log.Printf("[clerk][register] failed to send welcome email to %s: %v", clerk.Email, err)
		}
	}
	return clerk, nil
}

func (s *clerkService) Get(id int) (*models.Clerk, error) {
	clerk, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if clerk == nil {
		return nil, models.ErrNotFound
	}
	return clerk, nil
}

// UpdateEmail changes the login identity of an existing clerk.
func (s *clerkService) UpdateEmail(id int, email string) (*models.Clerk, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	clerk, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateEmail(id, email); err != nil {
		return nil, err
	}
	clerk.Email = email
	return clerk, nil
}
