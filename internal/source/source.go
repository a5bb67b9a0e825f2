package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnavailable indicates the source export could not be fetched or parsed.
// Callers surface it as a single user-facing message; no partial data is kept.
var ErrUnavailable = errors.New("source unavailable")

// Record is one raw CSV row, keyed by trimmed header name. Values are
// untyped strings; typing happens in the normalize package.
type Record map[string]string

// Client fetches the tabular export over HTTP.
type Client struct {
	client *http.Client
}

// NewClient creates a new source client.
func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the CSV export at url and parses it into records.
// Transport errors, timeouts and non-2xx responses all map to ErrUnavailable.
func (c *Client) Fetch(url string) ([]Record, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("User-Agent", "talentboard/1.0 (recruiting dashboard)")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	records, err := parseCSV(decode(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return records, nil
}

// FromFile parses a local CSV export. Used by check/report against a saved
// copy of the sheet, and by tests.
func FromFile(path string) ([]Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	records, err := parseCSV(decode(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return records, nil
}

// decode interprets the response bytes as UTF-8. The sheet export is served
// under a latin1 content declaration but the payload itself is UTF-8; bytes
// that do not form valid UTF-8 are re-read as Latin-1 so accented names in
// recruiter and label columns survive instead of becoming replacement runes.
func decode(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

func parseCSV(data string) ([]Record, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" || i >= len(fields) {
				continue
			}
			rec[name] = strings.TrimSpace(fields[i])
		}
		records = append(records, rec)
	}
	return records, nil
}
