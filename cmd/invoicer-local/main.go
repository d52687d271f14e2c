package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"invoicer/internal/config"
	"invoicer/internal/invoice"
	"invoicer/internal/order"
	"invoicer/internal/pdf"
)

const outputFile = "filled_order_invoice.pdf"

// Sample webhook payload in the wrapped-array shape the automation platform
// delivers, for generating an invoice without a running service.
const sampleOrder = `[{
  "body": {
    "id": 2506,
    "number": "2506",
    "date_created": "2025-11-21T20:20:21",
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
      "address_2": "Apt 101",
      "city": "Vila Velha",
      "state": "ES",
      "postcode": "29100-000"
    },
    "line_items": [
      {"name": "Test Product (Item 1)", "quantity": 1, "total": "10.00"},
      {"name": "Additional Service Fee", "quantity": 1, "total": "6.00"}
    ]
  }
}]`

func main() {
	l, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("error on create logger: %v", err)
	}
	logger := l.Sugar()
	defer logger.Sync()

	cnfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("failed to parse config, %v", err)
	}

	if _, err := os.Stat(cnfg.LogoFile); err != nil {
		logger.Warnf("logo file %q not found, the image link in the PDF will be broken", cnfg.LogoFile)
	}

	o, err := order.Decode(strings.NewReader(sampleOrder))
	if err != nil {
		logger.Fatalf("decode sample order: %v", err)
	}

	html, err := invoice.Render(o, invoice.LogoURL(cnfg.LogoFile))
	if err != nil {
		logger.Fatalf("build invoice markup: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cnfg.RenderTimeout)
	defer cancel()

	buf, err := pdf.NewChromeEngine(1).Render(ctx, html)
	if err != nil {
		logger.Fatalf("PDF generation failed: %v", err)
	}

	if err := os.WriteFile(outputFile, buf, 0o644); err != nil {
		logger.Fatalf("write %s: %v", outputFile, err)
	}

	abs, _ := filepath.Abs(outputFile)
	logger.Infof("invoice written to %s", abs)
}
