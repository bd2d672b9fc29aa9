// Demo client: fans out over the public query routes concurrently and
// prints each response.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	base := getEnv("API_BASE_URL", "http://localhost:8080")
	client := &http.Client{Timeout: 10 * time.Second}

	queries := []struct {
		title string
		path  string
	}{
		{"all books", "/books"},
		{"by ISBN 9780451524935", "/books/isbn/9780451524935"},
		{"by author George Orwell", "/books/author/" + url.PathEscape("George Orwell")},
		{"by title 1984", "/books/title/" + url.PathEscape("1984")},
	}

	results := make([]json.RawMessage, len(queries))

	g, ctx := errgroup.WithContext(context.Background())
	for i, q := range queries {
		g.Go(func() error {
			body, err := fetchJSON(ctx, client, base+q.path)
			if err != nil {
				return fmt.Errorf("%s: %w", q.title, err)
			}
			results[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for i, q := range queries {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, results[i], "", "  "); err != nil {
			pretty.Write(results[i])
		}
		fmt.Printf("=== %s ===\n%s\n", q.title, pretty.String())
	}
}

func fetchJSON(ctx context.Context, client *http.Client, rawURL string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
