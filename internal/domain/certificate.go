package domain

import "time"

// Certificate is the provenance record behind a verification code.
type Certificate struct {
	Code           string    `json:"code"`
	ProductName    string    `json:"product_name"`
	BlockchainHash string    `json:"blockchain_hash"`
	Manufacturer   string    `json:"manufacturer"`
	CertificateURL string    `json:"certificate_url"`
	Carat          string    `json:"carat"`
	Color          string    `json:"color"`
	Clarity        string    `json:"clarity"`
	Cut            string    `json:"cut"`
	Origin         string    `json:"origin"`
	IssuedAt       time.Time `json:"issued_at"`
}

// ContactMessage is an enquiry sent from the contact page.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
