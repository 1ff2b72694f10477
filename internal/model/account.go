package model

// Account is a bank account as exposed by the API.
type Account struct {
	AccountNumber string `json:"accountNumber"`
}
