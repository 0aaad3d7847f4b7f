package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"birdwatch/internal/log"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// findTextJS scans the rendered page for the first div or span whose
// visible text matches the given pattern.
const findTextJS = `(() => {
	const re = new RegExp(%s, 'i');
	for (const el of document.querySelectorAll('div, span')) {
		const text = (el.innerText || '').trim();
		if (text && re.test(text)) {
			return text;
		}
	}
	return '';
})()`

// The ChromeDriver drives a real chrome instance via chromedp.
type ChromeDriver struct {
	*DriverConfig
	allocContext  context.Context
	cancelAlloc   context.CancelFunc
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	closeOnce     sync.Once
}

func NewChromeDriver(dc *DriverConfig) *ChromeDriver {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(1920, 1080), // init with a desktop view (sometimes pages look different on mobile, eg buttons are missing)
		chromedp.Flag("headless", dc.Headless),
	)
	if dc.UserAgent != "" {
		opts = append(opts,
			chromedp.UserAgent(dc.UserAgent))
	}
	allocContext, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocContext)
	return &ChromeDriver{
		DriverConfig:  dc,
		allocContext:  allocContext,
		cancelAlloc:   cancelAlloc,
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
	}
}

// runContext derives the context a chromedp operation runs on. It has to
// be based on the browser context, which carries the chromedp session, so
// the caller's ctx is wired in via AfterFunc: cancelling it cancels the
// in-flight operation. A timeout of 0 means no deadline.
func (d *ChromeDriver) runContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	var runCtx context.Context
	var cancel context.CancelFunc
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(d.browserCtx, timeout)
	} else {
		runCtx, cancel = context.WithCancel(d.browserCtx)
	}
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}

func (d *ChromeDriver) Navigate(ctx context.Context, urlStr string, timeout time.Duration) error {
	logger := log.LoggerFromContext(ctx).With(slog.String("driver", ChromeDriverType))
	logger.Debug("navigating", slog.String("url", urlStr), slog.String("user-agent", d.UserAgent))
	runCtx, cancel := d.runContext(ctx, timeout)
	defer cancel()
	return chromedp.Run(runCtx, chromedp.Navigate(urlStr))
}

func (d *ChromeDriver) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	log.LoggerFromContext(ctx).Debug(fmt.Sprintf("waiting for selector %s", selector))
	runCtx, cancel := d.runContext(ctx, timeout)
	defer cancel()
	return chromedp.Run(runCtx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (d *ChromeDriver) Elements(ctx context.Context, selector string) ([]Element, error) {
	runCtx, cancel := d.runContext(ctx, 0)
	defer cancel()
	var nodes []*cdp.Node
	if err := chromedp.Run(runCtx,
		chromedp.Nodes(selector, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	); err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, &chromeElement{d: d, node: n})
	}
	return elements, nil
}

func (d *ChromeDriver) FindText(ctx context.Context, pattern string) (string, bool, error) {
	runCtx, cancel := d.runContext(ctx, 0)
	defer cancel()
	var text string
	expr := fmt.Sprintf(findTextJS, strconv.Quote(pattern))
	if err := chromedp.Run(runCtx, chromedp.Evaluate(expr, &text)); err != nil {
		return "", false, err
	}
	return text, text != "", nil
}

func (d *ChromeDriver) ScrollToBottom(ctx context.Context) error {
	log.LoggerFromContext(ctx).Debug("scrolling down the page")
	runCtx, cancel := d.runContext(ctx, 0)
	defer cancel()
	return chromedp.Run(runCtx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
	)
}

func (d *ChromeDriver) PageHeight(ctx context.Context) (int64, error) {
	runCtx, cancel := d.runContext(ctx, 0)
	defer cancel()
	var height int64
	if err := chromedp.Run(runCtx,
		chromedp.Evaluate(`document.body.scrollHeight`, &height),
	); err != nil {
		return 0, err
	}
	return height, nil
}

func (d *ChromeDriver) Close() {
	d.closeOnce.Do(func() {
		d.cancelBrowser()
		d.cancelAlloc()
	})
}

type chromeElement struct {
	d    *ChromeDriver
	node *cdp.Node
}

func (e *chromeElement) Text(ctx context.Context, selector string, timeout time.Duration) (string, error) {
	runCtx, cancel := e.d.runContext(ctx, timeout)
	defer cancel()
	var text string
	if err := chromedp.Run(runCtx,
		chromedp.Text(selector, &text, chromedp.ByQuery, chromedp.FromNode(e.node)),
	); err != nil {
		return "", err
	}
	return text, nil
}
