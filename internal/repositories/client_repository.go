package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/renan-throsa/Golden-leaf/internal/models"
)

type ClientRepository interface {
	Create(client *models.Client) (int, error)
	GetByID(id int) (*models.Client, error)
	List() ([]*models.Client, error)
	FindByName(name string) ([]*models.Client, error)
	Update(client *models.Client) error
	UpdateAddress(clientID int, addr *models.Address) error
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts the client and its address in one transaction so a failed
// address insert never leaves a client without an address.
func (r *clientRepository) Create(client *models.Client) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("create client: begin: %w", err)
	}

	const insertClient = `
                INSERT INTO clients (name, identification, phone_number, notifiable, status)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id
        `
	var id int
	if err := tx.QueryRow(insertClient,
		client.Name, client.Identification, client.PhoneNumber, client.Notifiable, client.Status,
	).Scan(&id); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("create client: %w", err)
	}

	const insertAddress = `
                INSERT INTO addresses (client_id, street, detail, zip_code)
                VALUES ($1, $2, $3, $4)
        `
	if _, err := tx.Exec(insertAddress,
		id, client.Address.Street, client.Address.Detail, client.Address.ZipCode,
	); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("create client address: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("create client: commit: %w", err)
	}
	return id, nil
}

const clientColumns = `
                SELECT c.id, c.name, c.identification, c.phone_number, c.notifiable, c.status,
                       a.street, a.detail, a.zip_code
                FROM clients c
                JOIN addresses a ON a.client_id = c.id
`

func scanClient(row *sql.Row) (*models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Identification, &c.PhoneNumber, &c.Notifiable, &c.Status,
		&c.Address.Street, &c.Address.Detail, &c.Address.ZipCode,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *clientRepository) GetByID(id int) (*models.Client, error) {
	return scanClient(r.db.QueryRow(clientColumns+`WHERE c.id = $1`, id))
}

func (r *clientRepository) List() ([]*models.Client, error) {
	rows, err := r.db.Query(clientColumns + `ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return collectClients(rows)
}

func (r *clientRepository) FindByName(name string) ([]*models.Client, error) {
	rows, err := r.db.Query(clientColumns+`WHERE LOWER(c.name) LIKE $1 ORDER BY c.id`,
		"%"+strings.ToLower(name)+"%")
	if err != nil {
		return nil, fmt.Errorf("find clients by name: %w", err)
	}
	return collectClients(rows)
}

func collectClients(rows *sql.Rows) ([]*models.Client, error) {
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Identification, &c.PhoneNumber, &c.Notifiable, &c.Status,
			&c.Address.Street, &c.Address.Detail, &c.Address.ZipCode,
		); err != nil {
			return nil, err
		}
		res = append(res, &c)
	}
	return res, rows.Err()
}

func (r *clientRepository) Update(client *models.Client) error {
	const q = `
                UPDATE clients
                SET name=$1, phone_number=$2, notifiable=$3, status=$4
                WHERE id=$5
        `
	if _, err := r.db.Exec(q,
		client.Name, client.PhoneNumber, client.Notifiable, client.Status, client.ID,
	); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *clientRepository) UpdateAddress(clientID int, addr *models.Address) error {
	const q = `
                UPDATE addresses
                SET street=$1, detail=$2, zip_code=$3
                WHERE client_id=$4
        `
	if _, err := r.db.Exec(q, addr.Street, addr.Detail, addr.ZipCode, clientID); err != nil {
		return fmt.Errorf("update client address: %w", err)
	}
	return nil
}
