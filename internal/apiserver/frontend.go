package apiserver

import (
	"io/fs"
	"net/http"

	"github.com/altairalabs/omnia-console/web"
)

// frontendHandler serves the embedded dashboard build. Unknown paths fall
// back to index.html so client-side routing works on deep links.
func (s *Server) frontendHandler() http.Handler {
	dist, err := fs.Sub(web.Dist, "dist")
	if err != nil {
		// The embed directive guarantees dist exists in a correct build.
		s.log.Error(err, "frontend assets missing")
		return http.NotFoundHandler()
	}

	fileServer := http.FileServer(http.FS(dist))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path != "/" {
			if _, err := fs.Stat(dist, path[1:]); err != nil {
				r.URL.Path = "/"
			}
		}
		fileServer.ServeHTTP(w, r)
	})
}
