package dto

import "time"

type CreateClientRequest struct {
	Name         string  `json:"name"`
	ContactEmail string  `json:"contactEmail"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
}

type ClientResponse struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}
