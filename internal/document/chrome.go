package document

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	buildTimeout = 60 * time.Second

	// A4 paper size in inches, the unit PrintToPDF expects.
	paperWidthInches  = 8.27
	paperHeightInches = 11.69

	mmPerInch = 25.4
)

// ChromeBuilder renders documents to PDF with headless Chrome. The block
// sequence is first laid out as HTML, then printed via the DevTools
// PrintToPDF command. Requires Chrome/Chromium on the system; CHROME_PATH
// overrides the binary location.
type ChromeBuilder struct{}

// NewChromeBuilder returns a builder backed by headless Chrome.
func NewChromeBuilder() *ChromeBuilder { return &ChromeBuilder{} }

// Build renders the document and writes the PDF to outputPath.
func (b *ChromeBuilder) Build(ctx context.Context, doc *Document, outputPath string) error {
	html, err := RenderHTML(doc)
	if err != nil {
		return &BuildError{OutputPath: outputPath, Cause: err}
	}

	pdf, err := printHTML(ctx, html, doc.Margins)
	if err != nil {
		return &BuildError{OutputPath: outputPath, Cause: err}
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return &BuildError{OutputPath: outputPath, Cause: err}
	}
	return nil
}

func printHTML(ctx context.Context, html string, margins Margins) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, buildTimeout)
	defer cancelRun()

	// Chrome needs a real file URL; data URLs lose the charset on some
	// platforms.
	tmpDir, err := os.MkdirTemp("", "cvgen-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithMarginTop(margins.Top / mmPerInch).
				WithMarginBottom(margins.Bottom / mmPerInch).
				WithMarginLeft(margins.Left / mmPerInch).
				WithMarginRight(margins.Right / mmPerInch).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
