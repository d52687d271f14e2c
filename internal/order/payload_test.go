package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"invoicer/internal/order/model"
)

const orderBody = `{
	"id": 2506,
	"number": "2506",
	"date_created": "2025-11-21T20:20:21",
	"status": "processing",
	"total": "16.00",
	"shipping_total": "5.00",
	"total_tax": "1.00",
	"billing": {
		"first_name": "Augusto",
		"last_name": "Castro",
		"company": "My Company LTD",
		"email": "augusto.webdeveloping@gmail.com",
		"phone": "5527995271631",
		"address_1": "Main Street, 123",
		"city": "Vila Velha",
		"state": "ES",
		"postcode": "29100-000"
	},
	"line_items": [
		{"name": "Test Product (Item 1)", "quantity": 1, "total": "10.00"},
		{"name": "Additional Service Fee", "quantity": 2, "total": "6.00"}
	]
}`

var wantOrder = model.Order{
	ID:            "2506",
	Number:        "2506",
	DateCreated:   "2025-11-21T20:20:21",
	Status:        "processing",
	Total:         "16.00",
	ShippingTotal: "5.00",
	TotalTax:      "1.00",
	Billing: model.Billing{
		FirstName: "Augusto",
		LastName:  "Castro",
		Company:   "My Company LTD",
		Email:     "augusto.webdeveloping@gmail.com",
		Phone:     "5527995271631",
		Address1:  "Main Street, 123",
		City:      "Vila Velha",
		State:     "ES",
		Postcode:  "29100-000",
	},
	LineItems: []model.LineItem{
		{Name: "Test Product (Item 1)", Quantity: 1, Total: "10.00"},
		{Name: "Additional Service Fee", Quantity: 2, Total: "6.00"},
	},
}

func TestDecode_AcceptedShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "flat object",
			payload: orderBody,
		},
		{
			name:    "object wrapping body",
			payload: `{"body": ` + orderBody + `}`,
		},
		{
			name:    "array wrapping object with body",
			payload: `[{"body": ` + orderBody + `}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.payload))
			assert.NoError(t, err)
			assert.Equal(t, wantOrder, got, "every accepted shape must yield the same record")
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		inMsg   string
	}{
		{
			name:    "not valid JSON",
			payload: `{not json`,
			inMsg:   "valid JSON",
		},
		{
			name:    "scalar payload",
			payload: `42`,
			inMsg:   `"body"`,
		},
		{
			name:    "empty array",
			payload: `[]`,
			inMsg:   `"body"`,
		},
		{
			name:    "array element without body",
			payload: `[{"order": 1}]`,
			inMsg:   `"body"`,
		},
		{
			name:    "body is not an object",
			payload: `{"body": 5}`,
			inMsg:   `"body"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.payload))
			assert.ErrorIs(t, err, ErrMalformedPayload)
			assert.Contains(t, err.Error(), tt.inMsg)
		})
	}
}

func TestExtract_Defaulting(t *testing.T) {
	t.Run("empty body extracts without failing", func(t *testing.T) {
		got, err := Decode(strings.NewReader(`{}`))
		assert.NoError(t, err)
		assert.Equal(t, model.Order{}, got)
	})

	t.Run("quantity defaults to 1", func(t *testing.T) {
		got, err := Decode(strings.NewReader(`{"line_items": [{"name": "X", "total": "6.00"}]}`))
		assert.NoError(t, err)
		assert.Equal(t, []model.LineItem{{Name: "X", Quantity: 1, Total: "6.00"}}, got.LineItems)
	})

	t.Run("quantity accepts string numbers", func(t *testing.T) {
		got, err := Decode(strings.NewReader(`{"line_items": [{"name": "X", "quantity": "3"}]}`))
		assert.NoError(t, err)
		assert.Equal(t, 3, got.LineItems[0].Quantity)
	})

	t.Run("numeric identifier is kept as its string form", func(t *testing.T) {
		got, err := Decode(strings.NewReader(`{"id": 2506}`))
		assert.NoError(t, err)
		assert.Equal(t, "2506", got.ID)
		assert.Equal(t, "", got.Number)
	})

	t.Run("mistyped fields stay empty", func(t *testing.T) {
		got, err := Decode(strings.NewReader(`{"total": {"amount": 1}, "billing": "none", "line_items": [5]}`))
		assert.NoError(t, err)
		assert.Equal(t, model.Order{}, got)
	})
}
