package model

// Order is the canonical record extracted from one webhook payload.
// Every field is optional at the source; zero values mean "absent" and
// the presentation layer supplies the documented defaults.
type Order struct {
	ID            string
	Number        string
	DateCreated   string
	Status        string
	Total         string
	ShippingTotal string
	TotalTax      string
	Billing       Billing
	LineItems     []LineItem
}

type Billing struct {
	FirstName string
	LastName  string
	Company   string
	Email     string
	Phone     string
	Address1  string
	City      string
	State     string
	Postcode  string
}

type LineItem struct {
	Name     string
	Quantity int
	Total    string
}
