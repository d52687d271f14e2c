package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// A4 paper with the template's 1cm page margin, in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
	pageMargin  = 0.39
)

// ChromeEngine renders markup with headless Chrome over the DevTools
// protocol. Renders are bounded by a semaphore: Chrome is CPU-bound and
// unbounded parallel requests would starve the host.
type ChromeEngine struct {
	sem chan struct{}
}

func NewChromeEngine(maxParallel int) *ChromeEngine {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &ChromeEngine{sem: make(chan struct{}, maxParallel)}
}

// Render stages the markup to a scratch file and prints it to PDF. The file
// URL navigation keeps file:// asset references (the logo) resolvable.
func (e *ChromeEngine) Render(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Err: err}
	}

	select {
	case e.sem <- struct{}{}:
		defer func() { <-e.sem }()
	case <-ctx.Done():
		return nil, &RenderError{Err: ctx.Err()}
	}

	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("invoice-%s.html", uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(html), 0o600); err != nil {
		return nil, &RenderError{Err: err}
	}
	defer os.Remove(tmp)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var out []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(tmp)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(pageMargin).
				WithMarginBottom(pageMargin).
				WithMarginLeft(pageMargin).
				WithMarginRight(pageMargin).
				Do(ctx)
			if err != nil {
				return err
			}
			out = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	return out, nil
}
