package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"invoicer/internal/order/model"
)

// ErrMalformedPayload marks payloads that cannot be resolved to an order body.
var ErrMalformedPayload = errors.New("malformed payload")

// Decode reads one webhook payload and returns the canonical order record.
func Decode(r io.Reader) (model.Order, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return model.Order{}, fmt.Errorf("%w: request body must be valid JSON: %v", ErrMalformedPayload, err)
	}

	body, err := Resolve(raw)
	if err != nil {
		return model.Order{}, err
	}
	return Extract(body), nil
}

// Resolve normalizes the accepted payload shapes to one order body, tried in
// fixed priority: array wrapping an object with "body", object with "body",
// then the object itself.
func Resolve(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case []any:
		if len(v) > 0 {
			if first, ok := v[0].(map[string]any); ok {
				if b, ok := first["body"].(map[string]any); ok {
					return b, nil
				}
			}
		}
		return nil, fmt.Errorf(`%w: array payload has no object with key "body"`, ErrMalformedPayload)
	case map[string]any:
		if b, ok := v["body"]; ok {
			m, ok := b.(map[string]any)
			if !ok {
				return nil, fmt.Errorf(`%w: key "body" is not an object`, ErrMalformedPayload)
			}
			return m, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf(`%w: expected a JSON object or an array wrapping an object with key "body"`, ErrMalformedPayload)
	}
}

// Extract reads the order fields out of a resolved body. It never fails:
// absent or mistyped fields stay at their zero values and the presentation
// layer supplies the documented defaults.
func Extract(body map[string]any) model.Order {
	o := model.Order{
		ID:            scalar(body, "id"),
		Number:        scalar(body, "number"),
		DateCreated:   scalar(body, "date_created"),
		Status:        scalar(body, "status"),
		Total:         scalar(body, "total"),
		ShippingTotal: scalar(body, "shipping_total"),
		TotalTax:      scalar(body, "total_tax"),
	}

	if b, ok := body["billing"].(map[string]any); ok {
		o.Billing = model.Billing{
			FirstName: scalar(b, "first_name"),
			LastName:  scalar(b, "last_name"),
			Company:   scalar(b, "company"),
			Email:     scalar(b, "email"),
			Phone:     scalar(b, "phone"),
			Address1:  scalar(b, "address_1"),
			City:      scalar(b, "city"),
			State:     scalar(b, "state"),
			Postcode:  scalar(b, "postcode"),
		}
	}

	if items, ok := body["line_items"].([]any); ok {
		for _, it := range items {
			m, ok := it.(map[string]any)
			if !ok {
				continue
			}
			o.LineItems = append(o.LineItems, model.LineItem{
				Name:     scalar(m, "name"),
				Quantity: quantity(m),
				Total:    scalar(m, "total"),
			})
		}
	}

	return o
}

// scalar returns the string form of a scalar field, "" when absent or not scalar.
func scalar(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func quantity(m map[string]any) int {
	switch v := m["quantity"].(type) {
	case json.Number:
		if q, err := strconv.Atoi(v.String()); err == nil {
			return q
		}
		if f, err := v.Float64(); err == nil {
			return int(f)
		}
	case string:
		if q, err := strconv.Atoi(v); err == nil {
			return q
		}
	}
	return 1
}
