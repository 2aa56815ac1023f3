package commands

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"inkwell/internal/errors"
)

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// fileJar is a cookie jar that mirrors what it holds per origin to a file,
// so the refresh cookie outlives the process.
type fileJar struct {
	mu      sync.Mutex
	path    string
	jar     *cookiejar.Jar
	origins map[string][]storedCookie
}

func newFileJar(path string) (*fileJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "create cookie jar")
	}

	j := &fileJar{path: path, jar: jar, origins: map[string][]storedCookie{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return j, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read cookies")
	}
	if err := json.Unmarshal(raw, &j.origins); err != nil {
		return nil, errors.Wrap(err, "decode cookies")
	}

	for origin, stored := range j.origins {
		u, err := url.Parse(origin)
		if err != nil {
			continue
		}
		cookies := make([]*http.Cookie, 0, len(stored))
		for _, c := range stored {
			cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		jar.SetCookies(u, cookies)
	}

	return j, nil
}

func (j *fileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.jar.SetCookies(u, cookies)

	origin := (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}).String()
	held := j.jar.Cookies(&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"})
	if len(held) == 0 {
		delete(j.origins, origin)
	} else {
		stored := make([]storedCookie, 0, len(held))
		for _, c := range held {
			stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
		}
		j.origins[origin] = stored
	}

	// Persisting is best effort; the in-memory jar still serves this process.
	_ = j.save()
}

func (j *fileJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

func (j *fileJar) save() error {
	raw, err := json.Marshal(j.origins)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(j.path, raw, 0o600)
}
