package aoc

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// sessionCookie returns the adventofcode.com session, from $AOC_SESSION or
// ~/keys/aoc.session.
func sessionCookie() (string, error) {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return s, nil
	}
	b, err := os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"))
	if err != nil {
		return "", fmt.Errorf("no session: set AOC_SESSION or write ~/keys/aoc.session: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// readInput returns the puzzle input for year/day. -input wins if set;
// otherwise the cached copy under year/ is used, downloading it first if
// needed.
func readInput(year, day int) ([]byte, error) {
	if flagInput != "" {
		return os.ReadFile(flagInput)
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", year, day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", year, day))
}

// fileOrFetch returns the contents of filename, downloading url into it
// first when the file does not exist yet.
func fileOrFetch(filename, url string) ([]byte, error) {
	f, err := os.ReadFile(filename)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	body, err := fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func fetch(url string) ([]byte, error) {
	session, err := sessionCookie()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}
