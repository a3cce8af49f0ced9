// Package web serves the embedded single-page frontend.
//
// The static assets are compiled into the binary, so the server ships
// as one file. Paths that match no asset get the same JSON not-found
// answer as unknown API endpoints, which keeps probing responses
// uniform.
package web

import (
	"embed"
	"io/fs"
	"net/http"
	"net/url"
)

//go:embed static
var assets embed.FS

// Handler returns the frontend handler.
func Handler() http.Handler {
	content, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}

	fileServer := http.FileServerFS(content)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The file server redirects the canonical index path to "./";
		// serve it as the root instead.
		if r.URL.Path == "/index.html" {
			r2 := new(http.Request)
			*r2 = *r
			r2.URL = new(url.URL)
			*r2.URL = *r.URL
			r2.URL.Path = "/"
			r = r2
		}

		lookup := r.URL.Path
		if lookup == "/" {
			lookup = "/index.html"
		}

		if _, err := fs.Stat(content, lookup[1:]); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Error-Code", "TV-SYS-4040")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"endpoint not found"}` + "\n"))
			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
