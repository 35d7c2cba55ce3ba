// Package biomart implements the remote mapping fetcher against the
// Ensembl BioMart martservice.
package biomart

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
	"go.trai.ch/zerr"
)

const maxAttempts = 3

var retryBackoff = 2 * time.Second

// Fetcher implements ports.Fetcher by querying the martservice for the
// attributes of both identifier types and projecting the response rows
// into value pairs.
type Fetcher struct {
	url      string
	dataset  string
	client   *http.Client
	progress ports.Progress
	log      ports.Logger
}

// New creates a Fetcher against the configured martservice endpoint.
func New(settings *domain.Settings, progress ports.Progress, log ports.Logger) *Fetcher {
	return &Fetcher{
		url:      settings.BioMartURL,
		dataset:  settings.BioMartDataset,
		client:   &http.Client{Timeout: settings.FetchTimeout},
		progress: progress,
		log:      log,
	}
}

// Fetch downloads the mapping for the given pair. The mart has no notion
// of pair direction, so the returned mapping is stored as (a, b) and
// serves lookups both ways.
func (f *Fetcher) Fetch(ctx context.Context, a, b domain.IDType) (*domain.Mapping, error) {
	query := buildQuery(f.dataset, unionAttributes(a, b))

	task := f.progress.Begin("biomart " + domain.PairKey(a, b))
	body, err := f.get(ctx, query, task)
	task.Done(err)
	if err != nil {
		return nil, err
	}

	pairs, err := parsePairs(body, a, b)
	if err != nil {
		return nil, err
	}

	return &domain.Mapping{TypeA: a, TypeB: b, Pairs: pairs}, nil
}

// get performs the martservice request with bounded retries, so a flaky
// annotation service degrades into a delay rather than a failed run.
func (f *Fetcher) get(ctx context.Context, query string, task ports.ProgressTask) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, zerr.Wrap(ctx.Err(), domain.ErrFetchFailed.Error())
			case <-time.After(retryBackoff):
			}
		}

		data, err := f.getOnce(ctx, query, task)
		if err == nil {
			return data, nil
		}
		lastErr = err
		f.log.Warn(fmt.Sprintf("martservice request failed (attempt %d of %d): %v", attempt, maxAttempts, err))
	}
	return nil, lastErr
}

func (f *Fetcher) getOnce(ctx context.Context, query string, task ports.ProgressTask) ([]byte, error) {
	reqURL := f.url + "?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		statusErr := zerr.With(domain.ErrFetchFailed, "status", resp.Status)
		return nil, zerr.With(statusErr, "url", f.url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	_, _ = fmt.Fprintf(task, "downloaded %d bytes\n", len(data))

	// The mart reports query problems in the body of a 200 response.
	if bytes.HasPrefix(data, []byte("Query ERROR")) {
		firstLine, _, _ := bytes.Cut(data, []byte("\n"))
		return nil, zerr.With(domain.ErrFetchFailed, "cause", string(firstLine))
	}

	return data, nil
}

// parsePairs projects the TSV response into value pairs for the two
// requested types. Rows where either side is empty are dropped: absence
// of a pair means unknown, not excluded.
func parsePairs(data []byte, a, b domain.IDType) ([]domain.Pair, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFetchFailed.Error())
	}
	if len(records) == 0 {
		return nil, zerr.With(domain.ErrFetchFailed, "cause", "empty response")
	}

	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		name := standardizeHeader(h)
		if attr, ok := headerToAttribute[name]; ok {
			name = attr
		}
		cols[name] = i
	}

	readValue := func(rec []string, t domain.IDType) (string, error) {
		spec := attrSpecs[t]
		for _, attr := range spec.attributes {
			i, ok := cols[attr]
			if !ok {
				missingErr := zerr.With(domain.ErrFetchFailed, "cause", "response is missing attribute column")
				return "", zerr.With(missingErr, "attribute", attr)
			}
			if i >= len(rec) || rec[i] == "" {
				continue
			}
			if spec.stripVersion {
				return dropVersion(rec[i]), nil
			}
			return rec[i], nil
		}
		return "", nil
	}

	var pairs []domain.Pair
	seen := make(map[domain.Pair]struct{})
	for _, rec := range records[1:] {
		va, err := readValue(rec, a)
		if err != nil {
			return nil, err
		}
		vb, err := readValue(rec, b)
		if err != nil {
			return nil, err
		}
		if va == "" || vb == "" {
			continue
		}
		p := domain.Pair{A: va, B: vb}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pairs = append(pairs, p)
	}

	return pairs, nil
}
