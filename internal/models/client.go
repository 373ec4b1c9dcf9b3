package models

// Address belongs to exactly one client and has no lifecycle of its own.
type Address struct {
	Street  string `json:"street"`
	Detail  string `json:"detail"`
	ZipCode string `json:"zip_code"`
}

// Client represents a customer record managed by clerks. Every client owns
// one address, created and persisted together with the client.
type Client struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Identification string  `json:"identification"`
	PhoneNumber    string  `json:"phone_number"`
	Notifiable     bool    `json:"notifiable"`
	Status         bool    `json:"status"`
	Address        Address `json:"address"`
}

// ClientInput is the flat creation shape: client and address fields arrive
// together because both records form a single aggregate.
type ClientInput struct {
	Name           string `json:"name"`
	Identification string `json:"identification"`
	PhoneNumber    string `json:"phone_number"`
	ZipCode        string `json:"zip_code"`
	Street         string `json:"street"`
	Detail         string `json:"detail"`
	Notifiable     bool   `json:"notifiable"`
}

// ToClient builds the aggregate. New clients start active.
func (in *ClientInput) ToClient() *Client {
	return &Client{
		Name:           in.Name,
		Identification: in.Identification,
		PhoneNumber:    in.PhoneNumber,
		Notifiable:     in.Notifiable,
		Status:         true,
		Address: Address{
			Street:  in.Street,
			Detail:  in.Detail,
			ZipCode: in.ZipCode,
		},
	}
}

// ClientUpdate carries the mutable client fields for PUT /client/:id.
type ClientUpdate struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Notifiable  bool   `json:"notifiable"`
	Status      bool   `json:"status"`
}

// AddressUpdate carries the address fields for PUT /client/:id/address.
type AddressUpdate struct {
	Street  string `json:"street"`
	Detail  string `json:"detail"`
	ZipCode string `json:"zip_code"`
}
