package services

import (
	"log"
	"strings"

	"github.com/renan-throsa/Golden-leaf/internal/models"
	"github.com/renan-throsa/Golden-leaf/internal/repositories"
)

type ClientService interface {
	Get(id int) (*models.Client, error)
	List() ([]*models.Client, error)
	Search(name string) ([]*models.Client, error)
	Create(in *models.ClientInput) (*models.Client, error)
	Update(id int, in *models.ClientUpdate) (*models.Client, error)
	UpdateAddress(id int, in *models.AddressUpdate) (*models.Client, error)
}

type clientService struct {
	repo     repositories.ClientRepository
	notifier NotifyService
}

func NewClientService(repo repositories.ClientRepository, notifier NotifyService) ClientService {
	return &clientService{repo: repo, notifier: notifier}
}

func (s *clientService) Get(id int) (*models.Client, error) {
	client, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, models.ErrNotFound
	}
	return client, nil
}

func (s *clientService) List() ([]*models.Client, error) {
	return s.repo.List()
}

func (s *clientService) Search(name string) ([]*models.Client, error) {
	return s.repo.FindByName(strings.TrimSpace(name))
}

// Create validates the whole aggregate before anything is persisted.
func (s *clientService) Create(in *models.ClientInput) (*models.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	client := in.ToClient()
	id, err := s.repo.Create(client)
	if err != nil {
		return nil, err
	}
	client.ID = id

	if s.notifier != nil {
		if err := s.notifier.ClientCreated(client); err != nil {
			// notification is best-effort, creation already succeeded
			log.Printf("[client][create] notify failed for clientID=%d: %v", client.ID, err)
		}
	}
	return client, nil
}

// Update replaces the mutable client fields. Identification and the address
// are untouched. Status is taken from the status field.
func (s *clientService) Update(id int, in *models.ClientUpdate) (*models.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	client.Name = in.Name
	client.PhoneNumber = in.PhoneNumber
	client.Notifiable = in.Notifiable
	client.Status = in.Status

	if err := s.repo.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateAddress replaces the client's address; the client fields themselves
// are untouched.
func (s *clientService) UpdateAddress(id int, in *models.AddressUpdate) (*models.Client, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	client.Address = models.Address{
		Street:  in.Street,
		Detail:  in.Detail,
		ZipCode: in.ZipCode,
	}

	if err := s.repo.UpdateAddress(id, &client.Address); err != nil {
		return nil, err
	}
	return client, nil
}
