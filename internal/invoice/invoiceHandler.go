package invoice

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"invoicer/internal/order"
	"invoicer/internal/pdf"
)

type handler struct {
	renderer pdf.Renderer
	logoPath string
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

func NewHandler(renderer pdf.Renderer, logoPath string, timeout time.Duration, logger *zap.SugaredLogger) *handler {
	return &handler{renderer: renderer, logoPath: logoPath, timeout: timeout, logger: logger}
}

// GeneratePDF turns one order webhook payload into a downloadable invoice.
func (h *handler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	o, err := order.Decode(r.Body)
	if err != nil {
		h.logger.Infof("rejected payload: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := os.Stat(h.logoPath); err != nil {
		h.logger.Errorf("logo asset missing: %v", err)
		http.Error(w, fmt.Sprintf("logo asset %q is not available: %v", h.logoPath, err), http.StatusInternalServerError)
		return
	}

	html, err := Render(o, LogoURL(h.logoPath))
	if err != nil {
		h.logger.Errorf("build invoice markup: %v", err)
		http.Error(w, fmt.Sprintf("internal error while building invoice markup: %v", err), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()
	buf, err := h.renderer.Render(ctx, html)
	if err != nil {
		h.logger.Errorf("render invoice %s: %v", Identifier(o), err)
		http.Error(w, fmt.Sprintf("PDF conversion failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_order_%s.pdf"`, FileIdentifier(o)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf); err != nil {
		h.logger.Warnf("write response: %v", err)
	}
}
