package customers

import (
	"strconv"
	"strings"
)

// IDField is the payload key carrying the store-assigned identifier.
const IDField = "customerId"

// Customer is one record of the directory as returned by the list endpoint.
type Customer struct {
	CustomerID   int    `json:"customerId"`
	CustomerName string `json:"customerName"`
	ContactName  string `json:"contactName,omitempty"`
	ContactTitle string `json:"contactTitle,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Region       string `json:"region,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Fax          string `json:"fax,omitempty"`
}

// CustomerRevenue pairs a customer with its order aggregates.
type CustomerRevenue struct {
	Customer        Customer `json:"customer"`
	TotalOrderCount int      `json:"totalOrderCount"`
	TotalRevenue    float64  `json:"totalRevenue"`
}

// Attributes flattens the record into the string mapping editor fields bind
// to. The identifier is rendered in base 10.
func (c Customer) Attributes() map[string]string {
	return map[string]string{
		IDField:        strconv.Itoa(c.CustomerID),
		"customerName": c.CustomerName,
		"contactName":  c.ContactName,
		"contactTitle": c.ContactTitle,
		"address":      c.Address,
		"city":         c.City,
		"region":       c.Region,
		"postalCode":   c.PostalCode,
		"country":      c.Country,
		"phone":        c.Phone,
		"fax":          c.Fax,
	}
}

// ParseID converts a path or form identifier into the numeric form used by
// the store.
func ParseID(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

// FindByID returns the customer with the given identifier from a collection.
func FindByID(list []Customer, id int) (Customer, bool) {
	for _, c := range list {
		if c.CustomerID == id {
			return c, true
		}
	}
	return Customer{}, false
}
