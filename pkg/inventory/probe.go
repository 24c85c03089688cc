package inventory

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/tripweave/tripweave/pkg/errors"
	"github.com/tripweave/tripweave/pkg/logging"
)

// DefaultProbeTimeout bounds each individual probe request.
const DefaultProbeTimeout = 10 * time.Second

// Prober checks that every attachment URL actually serves the content type
// its slot promises. Probes are advisory; a failure produces a diagnostic,
// never an abort.
type Prober struct {
	client *http.Client
}

// ProbeResult is the outcome of probing one attachment.
type ProbeResult struct {
	Folder      string `json:"folder"`
	File        string `json:"file"`
	Label       string `json:"label"`
	URL         string `json:"url"`
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	OK          bool   `json:"ok"`

	// Err carries the diagnostic when OK is false.
	Err error `json:"-"`
}

// NewProber returns a prober with the default per-request timeout. Pass a
// non-nil client to override transport behavior in tests.
func NewProber(client *http.Client) *Prober {
	if client == nil {
		client = &http.Client{Timeout: DefaultProbeTimeout}
	}
	return &Prober{client: client}
}

// ProbeAll probes every attachment in the set, folder by folder in name
// order. The context bounds the whole sweep.
func (p *Prober) ProbeAll(ctx context.Context, s *Set) ([]ProbeResult, error) {
	names := s.Folders()
	sort.Strings(names)

	var results []ProbeResult
	for _, name := range names {
		folder, _ := s.Folder(name)
		for _, att := range folder.PDF {
			r, err := p.probeOne(ctx, name, att, false)
			if err != nil {
				return results, err
			}
			results = append(results, r)
		}
		for _, att := range folder.QR {
			r, err := p.probeOne(ctx, name, att, true)
			if err != nil {
				return results, err
			}
			results = append(results, r)
		}
	}
	return results, nil
}

// probeOne issues a HEAD request with a GET fallback and validates the
// response content type. A PDF must not come back as HTML; a QR image must
// come back as an image. The returned error is non-nil only for context
// cancellation; probe failures land in the result.
func (p *Prober) probeOne(ctx context.Context, folder string, att Attachment, wantImage bool) (ProbeResult, error) {
	result := ProbeResult{
		Folder: folder,
		File:   att.File,
		Label:  att.Label,
		URL:    att.URL,
	}

	resp, err := p.headOrGet(ctx, att.URL)
	if err != nil {
		if ctx.Err() != nil {
			return result, errors.WrapIO("probe", att.URL, ctx.Err())
		}
		result.Err = errors.NewProbeError(att.URL, 0, "", "request failed", err)
		logging.Ctx(ctx).Warn().
			Str("folder", folder).
			Str("file", att.File).
			Err(err).
			Msg("Attachment probe request failed")
		return result, nil
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.ContentType = resp.Header.Get("Content-Type")

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if wantImage {
		ok = ok && strings.HasPrefix(result.ContentType, "image/")
	} else {
		ok = ok && !strings.Contains(result.ContentType, "text/html")
	}
	result.OK = ok

	if !ok {
		msg := "unexpected response"
		if strings.Contains(result.ContentType, "text/html") {
			msg = "HTML returned instead of file content"
		}
		result.Err = errors.NewProbeError(att.URL, resp.StatusCode, result.ContentType, msg, nil)
		logging.Ctx(ctx).Warn().
			Str("folder", folder).
			Str("file", att.File).
			Int("status", resp.StatusCode).
			Str("content_type", result.ContentType).
			Msg("Attachment probe mismatch")
	}
	return result, nil
}

// headOrGet tries HEAD first and falls back to GET when the server rejects
// the method or the request errors outright.
func (p *Prober) headOrGet(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err == nil && resp.StatusCode != http.StatusMethodNotAllowed {
		return resp, nil
	}
	if err == nil {
		_ = resp.Body.Close()
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return p.client.Do(req)
}
