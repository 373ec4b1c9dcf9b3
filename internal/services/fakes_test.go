package services

import (
	"errors"
	"strings"
	"time"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// in-memory ClerkRepository
type fakeClerkRepo struct {
	nextID int
	byID   map[int]*models.Clerk
}

func newFakeClerkRepo() *fakeClerkRepo {
	return &fakeClerkRepo{byID: map[int]*models.Clerk{}}
}

func (f *fakeClerkRepo) Create(clerk *models.Clerk) error {
	for _, c := range f.byID {
		if c.Email == clerk.Email {
			return models.ErrEmailTaken
		}
	}
	f.nextID++
	clerk.ID = f.nextID
	f.byID[clerk.ID] = clerk
	return nil
}

func (f *fakeClerkRepo) GetByID(id int) (*models.Clerk, error) {
	return f.byID[id], nil
}

func (f *fakeClerkRepo) GetByEmail(email string) (*models.Clerk, error) {
	for _, c := range f.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClerkRepo) UpdateEmail(id int, email string) error {
	for _, c := range f.byID {
		if c.Email == email && c.ID != id {
			return models.ErrEmailTaken
		}
	}
	c := f.byID[id]
	if c == nil {
		return errors.New("no such clerk")
	}
	c.Email = email
	return nil
}

func (f *fakeClerkRepo) UpdatePassword(id int, passwordHash string) error {
	c := f.byID[id]
	if c == nil {
		return errors.New("no such clerk")
	}
	c.PasswordHash = passwordHash
	return nil
}

func (f *fakeClerkRepo) UpdateRefresh(clerkID int, token string, expiresAt time.Time) error {
	c := f.byID[clerkID]
	if c == nil {
		return errors.New("no such clerk")
	}
	c.RefreshToken = &token
	c.RefreshExpiresAt = &expiresAt
	c.RefreshRevoked = false
	return nil
}

func (f *fakeClerkRepo) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.Clerk, error) {
	for _, c := range f.byID {
		if c.RefreshToken != nil && *c.RefreshToken == oldToken {
			c.RefreshToken = &newToken
			c.RefreshExpiresAt = &newExpiresAt
			c.RefreshRevoked = false
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClerkRepo) ClearRefresh(clerkID int) error {
	if c := f.byID[clerkID]; c != nil {
		c.RefreshToken = nil
		c.RefreshExpiresAt = nil
		c.RefreshRevoked = true
	}
	return nil
}

func (f *fakeClerkRepo) GetByRefreshToken(token string) (*models.Clerk, error) {
	for _, c := range f.byID {
		if c.RefreshToken != nil && *c.RefreshToken == token {
			return c, nil
		}
	}
	return nil, nil
}

// in-memory PasswordResetRepository
type fakeResetRepo struct {
	nextID  int
	byToken map[string]*models.PasswordReset
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{byToken: map[string]*models.PasswordReset{}}
}

func (f *fakeResetRepo) Create(clerkID int, tokenID string, expiresAt time.Time) (*models.PasswordReset, error) {
	f.nextID++
	pr := &models.PasswordReset{
		ID:        f.nextID,
		ClerkID:   clerkID,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	f.byToken[tokenID] = pr
	return pr, nil
}

func (f *fakeResetRepo) GetByTokenID(tokenID string) (*models.PasswordReset, error) {
	return f.byToken[tokenID], nil
}

func (f *fakeResetRepo) MarkUsed(id int) error {
	for _, pr := range f.byToken {
		if pr.ID == id {
			now := time.Now()
			pr.UsedAt = &now
		}
	}
	return nil
}

// EmailService that records instead of sending
type fakeEmailService struct {
	welcomeTo  string
	resetTo    string
	resetToken string
}

func (f *fakeEmailService) SendWelcomeEmail(email, name string) error {
	f.welcomeTo = email
	return nil
}

func (f *fakeEmailService) SendPasswordResetEmail(email, token string) error {
	f.resetTo = email
	f.resetToken = token
	return nil
}

// in-memory ClientRepository
type fakeClientRepo struct {
	nextID  int
	byID    map[int]*models.Client
	creates int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: map[int]*models.Client{}}
}

func (f *fakeClientRepo) Create(client *models.Client) (int, error) {
	f.creates++
	f.nextID++
	cp := *client
	cp.ID = f.nextID
	f.byID[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeClientRepo) GetByID(id int) (*models.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) List() ([]*models.Client, error) {
	var res []*models.Client
	for i := 1; i <= f.nextID; i++ {
		if c, ok := f.byID[i]; ok {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (f *fakeClientRepo) FindByName(name string) ([]*models.Client, error) {
	var res []*models.Client
	for i := 1; i <= f.nextID; i++ {
		c, ok := f.byID[i]
		if !ok {
			continue
		}
		if name == "" || containsFold(c.Name, name) {
			cp := *c
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (f *fakeClientRepo) Update(client *models.Client) error {
	stored, ok := f.byID[client.ID]
	if !ok {
		return errors.New("no such client")
	}
	stored.Name = client.Name
	stored.PhoneNumber = client.PhoneNumber
	stored.Notifiable = client.Notifiable
	stored.Status = client.Status
	return nil
}

func (f *fakeClientRepo) UpdateAddress(clientID int, addr *models.Address) error {
	stored, ok := f.byID[clientID]
	if !ok {
		return errors.New("no such client")
	}
	stored.Address = *addr
	return nil
}

// notifier that records created clients
type fakeNotifier struct {
	created []int
}

func (f *fakeNotifier) ClientCreated(client *models.Client) error {
	f.created = append(f.created, client.ID)
	return nil
}
