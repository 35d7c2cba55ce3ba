package biomart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.panid.dev/panid/internal/adapters/telemetry"
	"go.panid.dev/panid/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newTestFetcher(url string) *Fetcher {
	settings := domain.DefaultSettings()
	settings.BioMartURL = url
	settings.FetchTimeout = 5 * time.Second
	return New(&settings, telemetry.NewNoOpProgress(), nopLogger{})
}

func TestFetcher_Fetch(t *testing.T) {
	body := "Gene stable ID version\tRefSeq mRNA ID\tRefSeq ncRNA ID\n" +
		"ENSG00000001084.13\tNM_001498\t\n" +
		"ENSG00000001084.13\tNM_001197115\t\n" +
		"ENSG00000001084.13\tNM_001498\t\n" +
		"ENSG00000230424.1\t\tNR_046018\n" +
		"ENSG00000999999.1\t\t\n"

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	m, err := f.Fetch(context.Background(), domain.ENSG, domain.RefSeqRNAID)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, `<Attribute name = "ensembl_gene_id_version" />`)
	assert.Contains(t, gotQuery, `<Attribute name = "refseq_mrna" />`)
	assert.Contains(t, gotQuery, `<Attribute name = "refseq_ncrna" />`)

	assert.Equal(t, domain.ENSG, m.TypeA)
	assert.Equal(t, domain.RefSeqRNAID, m.TypeB)
	assert.Equal(t, []domain.Pair{
		{A: "ENSG00000001084", B: "NM_001498"},
		{A: "ENSG00000001084", B: "NM_001197115"},
		{A: "ENSG00000230424", B: "NR_046018"},
	}, m.Pairs)
}

func TestFetcher_Fetch_KeepsVersion(t *testing.T) {
	body := "Gene stable ID version\tHGNC symbol\n" +
		"ENSG00000001084.13\tGCLC\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	m, err := f.Fetch(context.Background(), domain.ENSGVersion, domain.HGNCSymbol)
	require.NoError(t, err)
	assert.Equal(t, []domain.Pair{{A: "ENSG00000001084.13", B: "GCLC"}}, m.Pairs)
}

func TestFetcher_Fetch_RetriesServerErrors(t *testing.T) {
	old := retryBackoff
	retryBackoff = time.Millisecond
	defer func() { retryBackoff = old }()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("Gene stable ID version\tHGNC symbol\nENSG00000001084.13\tGCLC\n"))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	m, err := f.Fetch(context.Background(), domain.ENSG, domain.HGNCSymbol)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Len(t, m.Pairs, 1)
}

func TestFetcher_Fetch_GivesUpAfterMaxAttempts(t *testing.T) {
	old := retryBackoff
	retryBackoff = time.Millisecond
	defer func() { retryBackoff = old }()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), domain.ENSG, domain.HGNCSymbol)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
	assert.Equal(t, maxAttempts, calls)
}

func TestFetcher_Fetch_QueryError(t *testing.T) {
	old := retryBackoff
	retryBackoff = time.Millisecond
	defer func() { retryBackoff = old }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Query ERROR: caught BioMart::Exception::Usage\nsecond line"))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), domain.ENSG, domain.HGNCSymbol)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}

func TestFetcher_Fetch_MissingAttributeColumn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Gene stable ID version\nENSG00000001084.13\n"))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	_, err := f.Fetch(context.Background(), domain.ENSG, domain.HGNCSymbol)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	old := retryBackoff
	retryBackoff = time.Minute
	defer func() { retryBackoff = old }()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newTestFetcher(srv.URL)
	_, err := f.Fetch(ctx, domain.ENSG, domain.HGNCSymbol)
	require.Error(t, err)
}
