package invoice

import (
	"github.com/flosch/pongo2/v6"

	"invoicer/internal/order/model"
)

// The invoice layout is one static template; per-order data is interpolated
// only at the named placeholders below.
const invoiceHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order Invoice #{{ order_number }}</title>
    <style>
        @page { size: A4; margin: 1cm; }
        body { font-family: Arial, sans-serif; font-size: 10pt; line-height: 1.4; color: #333; }
        h1, h2 { margin-top: 0; }
        .header { overflow: hidden; margin-bottom: 20px; padding-bottom: 10px; border-bottom: 1px solid #ccc; }
        .logo { float: left; width: 80px; height: auto; margin-right: 20px; }
        .invoice-info { float: right; text-align: right; }
        .details h2 { border-bottom: 1px solid #eee; padding-bottom: 5px; font-size: 12pt; }
        .details p { margin: 2px 0; }

        .items-table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        .items-table th, .items-table td { border: 1px solid #eee; padding: 8px; text-align: left; }
        .items-table th { background-color: #f4f4f4; }
        .qty { width: 5%; text-align: center; }
        .price { width: 15%; text-align: right; }

        .total-summary {
            width: 300px;
            margin-top: 20px;
            float: right;
            border: 1px solid #ccc;
            padding: 10px;
        }
        .total-summary table { width: 100%; border-collapse: collapse; }
        .total-summary tr td { padding: 5px; border: none; }
        .total-summary .label { font-weight: bold; }
        .total-summary .value { text-align: right; }
    </style>
</head>
<body>
    <div class="container">

        <div class="header">
            <img src="{{ logo_url }}" class="logo" alt="Company Logo">

            <div class="invoice-info">
                <h1>INVOICE / ORDER NOTE</h1>
                <p><strong>Order #</strong>: {{ order_number }}</p>
                <p><strong>Date</strong>: {{ order_date }}</p>
                <p><strong>Status</strong>: {{ order_status }}</p>
            </div>
        </div>

        <div style="clear: both;"></div>

        <div class="details">
            <h2>Customer Details</h2>
            <p><strong>Name:</strong> {{ first_name }} {{ last_name }}{{ company_display }}</p>
            <p><strong>Email:</strong> {{ email }}</p>
            <p><strong>Phone:</strong> {{ phone }}</p>
            <p><strong>Address:</strong> {{ address_1 }}, {{ city }} - {{ state }} CEP: {{ postcode }}</p>
        </div>

        <h2>Order Items</h2>

        <table class="items-table">
            <thead>
                <tr>
                    <th class="qty">QTY</th>
                    <th class="item-name">ITEM</th>
                    <th class="notes">NOTES</th>
                    <th class="price">PRICE</th>
                </tr>
            </thead>
            <tbody>
                {% for item in items %}
                <tr>
                    <td class="qty">{{ item.Qty }}</td>
                    <td class="item-name">{{ item.Name }}</td>
                    <td class="notes"></td>
                    <td class="price">{{ item.Price }}</td>
                </tr>
                {% endfor %}
            </tbody>
        </table>

        <div class="total-summary">
            <table>
                <tr>
                    <td class="label">Sub Total:</td>
                    <td class="value">{{ sub_total }}</td>
                </tr>
                <tr>
                    <td class="label">Shipping:</td>
                    <td class="value">{{ shipping }}</td>
                </tr>
                <tr>
                    <td class="label">Tax:</td>
                    <td class="value">{{ tax }}</td>
                </tr>
                <tr>
                    <td class="label">GRAND TOTAL:</td>
                    <td class="value"><strong>{{ grand_total }}</strong></td>
                </tr>
            </table>
        </div>
        <div style="clear: both;"></div>

        <div style="margin-top: 50px; font-size: 8pt; text-align: center;">
            <p>Thank you for your business. Please contact us for any questions regarding this invoice.</p>
        </div>

    </div>
</body>
</html>
`

var invoiceTpl = pongo2.Must(pongo2.FromString(invoiceHTML))

type itemRow struct {
	Qty   int
	Name  string
	Price string
}

// Render fills the invoice template for one order. The logo URL must resolve
// from wherever the rendering engine loads the markup.
func Render(o model.Order, logoURL string) (string, error) {
	rows := make([]itemRow, 0, len(o.LineItems))
	for _, it := range o.LineItems {
		rows = append(rows, itemRow{
			Qty:   it.Quantity,
			Name:  defaultNA(it.Name),
			Price: FormatItemPrice(it.Total),
		})
	}

	// GRAND TOTAL mirrors the order's total field on purpose; upstream sends
	// it with shipping and tax already included.
	return invoiceTpl.Execute(pongo2.Context{
		"logo_url":        logoURL,
		"order_number":    Identifier(o),
		"order_date":      FormatDate(o.DateCreated),
		"order_status":    FormatStatus(o.Status),
		"first_name":      o.Billing.FirstName,
		"last_name":       o.Billing.LastName,
		"company_display": CompanySuffix(o.Billing.Company),
		"email":           defaultNA(o.Billing.Email),
		"phone":           defaultNA(o.Billing.Phone),
		"address_1":       o.Billing.Address1,
		"city":            o.Billing.City,
		"state":           o.Billing.State,
		"postcode":        o.Billing.Postcode,
		"items":           rows,
		"sub_total":       FormatAmount(o.Total),
		"shipping":        FormatAmount(o.ShippingTotal),
		"tax":             FormatAmount(o.TotalTax),
		"grand_total":     FormatAmount(o.Total),
	})
}
