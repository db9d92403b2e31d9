package report

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrChromeNotFound is returned when no headless Chrome binary is available
// for PDF rendering. Markdown and HTML output are unaffected.
var ErrChromeNotFound = errors.New("headless chrome binary not found")

// PDFRenderer prints report HTML to PDF through headless Chrome.
type PDFRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewPDFRenderer builds a renderer using chromePath, or a detected system
// Chrome when empty. The timeout bounds a single render; zero means 30s.
func NewPDFRenderer(chromePath string, timeout time.Duration) *PDFRenderer {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PDFRenderer{chromePath: chromePath, timeout: timeout}
}

// Render prints an HTML document to A4 PDF bytes.
func (r *PDFRenderer) Render(ctx context.Context, htmlDoc string) ([]byte, error) {
	if r.chromePath == "" {
		return nil, ErrChromeNotFound
	}
	if _, err := os.Stat(r.chromePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrChromeNotFound, r.chromePath)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.ExecPath(r.chromePath),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, opts...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("printing report PDF: %w", err)
	}
	return pdf, nil
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
