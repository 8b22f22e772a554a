package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/goblog/internal/pkg/pkgerror"
)

// Static serves files under prefix from dir for GET and HEAD requests.
//
// Directories, dotfiles and missing files are not served: the request falls
// through to the not-found failure.
func (r *Router) Static(prefix, dir string) {
	fs := http.Dir(dir)

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := GetParam(req.Context(), "filepath")
		if hasDotSegment(name) {
			r.fail(w, req, pkgerror.NewNotFound(NotFoundMessage))
			return
		}

		f, err := fs.Open(name)
		if err != nil {
			r.fail(w, req, pkgerror.NewNotFound(NotFoundMessage))
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			r.fail(w, req, pkgerror.NewNotFound(NotFoundMessage))
			return
		}

		http.ServeContent(w, req, info.Name(), info.ModTime(), f)
	})

	path := strings.TrimSuffix(prefix, "/") + "/*filepath"
	r.Handle(http.MethodGet, path, h)
	r.Handle(http.MethodHead, path, h)
}

func hasDotSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
