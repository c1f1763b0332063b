package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"go.uber.org/multierr"

	"github.com/matzehuels/stackshelf/pkg/buildinfo"
	"github.com/matzehuels/stackshelf/pkg/errors"
	shelfio "github.com/matzehuels/stackshelf/pkg/io"
	"github.com/matzehuels/stackshelf/pkg/pipeline"
	"github.com/matzehuels/stackshelf/pkg/scene/sink"
	"github.com/matzehuels/stackshelf/pkg/shelf"
)

// Response headers set on render responses.
const (
	HeaderRenderID = "X-Render-ID"
	HeaderCache    = "X-Cache"
)

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error    string   `json:"error"`
	Code     string   `json:"code,omitempty"`
	Problems []string `json:"problems,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleRender renders the posted description in one format. A description
// without rows renders nothing and answers 204.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := sink.FormatCollada
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := sink.ParseFormat(q)
		if err != nil {
			s.writeError(w, err)
			return
		}
		format = f
	}
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	sh, err := s.readShelf(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), sh, pipeline.Options{
		Formats: []string{string(format)},
		Refresh: refresh,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Server", buildinfo.Tool())
	w.Header().Set(HeaderRenderID, result.ID.String())
	if result.Stats.Rows == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set(HeaderCache, cacheStatus(result.CacheInfo.RenderHit))

	data := result.Artifacts[string(format)]
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

// handleLayout answers with the layout and boards of the posted description.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	sh, err := s.readShelf(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, hit, err := s.runner.LayoutReport(r.Context(), sh)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set(HeaderCache, cacheStatus(hit))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("write response", "err", err)
	}
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// readShelf decodes and validates the request body.
func (s *Server) readShelf(w http.ResponseWriter, r *http.Request) (*shelf.Shelf, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	sh, err := shelfio.DecodeBytes(data, descriptionFormat(r.Header.Get("Content-Type")))
	if err != nil {
		return nil, err
	}
	if err := sh.Validate(); err != nil {
		return nil, err
	}
	return sh, nil
}

// descriptionFormat maps a Content-Type to a description format. Unknown
// and generic types return "" so the body is sniffed.
func descriptionFormat(contentType string) shelfio.Format {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mt {
	case "application/toml", "text/toml", "text/x-toml":
		return shelfio.FormatTOML
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return shelfio.FormatYAML
	case "application/json":
		return shelfio.FormatJSON
	}
	return ""
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}

	resp := errorResponse{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))}
	if problems := multierr.Errors(err); len(problems) > 1 {
		resp.Error = fmt.Sprintf("%d problems found", len(problems))
		for _, p := range problems {
			resp.Problems = append(resp.Problems, errors.UserMessage(p))
		}
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("request rejected", "status", status, "err", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
