package report

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"shelter-cost/utils"
)

const (
	viewportWidth  = 1520
	viewportHeight = 900
	captureTimeout = 30 * time.Second
)

// ImageSink renders each artifact to HTML and captures it as <dir>/<name>.png
// with headless Chrome. One browser is shared; every capture opens its own tab.
type ImageSink struct {
	dir    string
	html   *HTMLSink
	logger *utils.Logger
	retry  *utils.RetryConfig

	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

// NewImageSink starts a headless browser. chromeBin may be empty, in which
// case the usual install locations are searched.
func NewImageSink(ctx context.Context, dir, chromeBin string, logger *utils.Logger) (*ImageSink, error) {
	html, err := NewHTMLSink(dir)
	if err != nil {
		return nil, err
	}

	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	logger.Info("[report] Using browser binary: %q", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.WindowSize(viewportWidth, viewportHeight),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	// Run with no actions starts the browser so a missing binary fails here.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("report: start browser: %w", err)
	}

	return &ImageSink{
		dir:    dir,
		html:   html,
		logger: logger,
		retry: &utils.RetryConfig{
			MaxAttempts: 2,
			BaseDelay:   time.Second,
			Logger:      logger,
		},
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}, nil
}

func (s *ImageSink) Table(name string, t *Table) error {
	if err := s.html.Table(name, t); err != nil {
		return err
	}
	return s.capture(name)
}

func (s *ImageSink) BarChart(name string, c *BarChart) error {
	if err := s.html.BarChart(name, c); err != nil {
		return err
	}
	return s.capture(name)
}

func (s *ImageSink) capture(name string) error {
	abs, err := filepath.Abs(s.html.Path(name))
	if err != nil {
		return fmt.Errorf("report: %s: %w", name, err)
	}
	page := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	out := filepath.Join(s.dir, name+".png")

	return s.retry.Do(s.browserCtx, "capture "+name, func() error {
		tabCtx, cancelTab := chromedp.NewContext(s.browserCtx)
		defer cancelTab()
		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, captureTimeout)
		defer cancelTimeout()

		var buf []byte
		if err := chromedp.Run(tabCtx,
			chromedp.EmulateViewport(viewportWidth, viewportHeight),
			chromedp.Navigate(page),
			chromedp.WaitReady("body"),
			chromedp.FullScreenshot(&buf, 100),
		); err != nil {
			return err
		}
		if err := os.WriteFile(out, buf, 0644); err != nil {
			return err
		}
		s.logger.Debug("[report] Captured %s (%d bytes)", out, len(buf))
		return nil
	})
}

// Close shuts the browser down.
func (s *ImageSink) Close() error {
	s.cancelBrowser()
	s.cancelAlloc()
	return nil
}

func findChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
