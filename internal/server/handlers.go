package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/buildinfo"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/observability"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/pipeline"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/plane"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
)

var contentTypes = map[string]string{
	sink.FormatPNG:  "image/png",
	sink.FormatTIFF: "image/tiff",
	sink.FormatPPM:  "image/x-portable-pixmap",
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

type schemaResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSchemas(w http.ResponseWriter, r *http.Request) {
	out := make([]schemaResponse, len(palette.Schemas))
	for i, sc := range palette.Schemas {
		out[i] = schemaResponse{Name: sc.String(), Description: sc.Description()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	cacheState := "miss"
	if result.CacheInfo.RenderHit {
		cacheState = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheState)
	w.Header().Set("X-Render-Bands", strconv.Itoa(result.Stats.Bands))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// parseRenderRequest builds validated pipeline options from the query string.
// Unlike the CLI, unknown schema names are rejected.
func (s *Server) parseRenderRequest(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()

	bounds, err := plane.ParseBounds(q.Get("size"))
	if err != nil {
		return pipeline.Options{}, err
	}
	if bounds.Width > s.maxPixels || bounds.Height > s.maxPixels || bounds.Width*bounds.Height > s.maxPixels {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidBounds,
			"image size %s exceeds the %d pixel limit", bounds, s.maxPixels)
	}

	rect, err := plane.ParseRect(q.Get("ul"), q.Get("lr"))
	if err != nil {
		return pipeline.Options{}, err
	}

	schema := palette.Palette
	if name := q.Get("schema"); name != "" {
		if schema, err = palette.ParseSchemaStrict(name); err != nil {
			return pipeline.Options{}, err
		}
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.DefaultFormat
	}

	opts := pipeline.Options{
		Width:      bounds.Width,
		Height:     bounds.Height,
		UpperLeft:  rect.UpperLeft,
		LowerRight: rect.LowerRight,
		Schema:     schema,
		Formats:    []string{format},
	}
	if opts.Limit, err = intParam(q.Get("limit"), "limit"); err != nil {
		return pipeline.Options{}, err
	}
	if opts.RowsPerBand, err = intParam(q.Get("rows"), "rows"); err != nil {
		return pipeline.Options{}, err
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// intParam parses an optional positive integer; empty means 0 (use default).
func intParam(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be an integer", name)
	}
	if err := errors.ValidatePositive(name, n); err != nil {
		return 0, err
	}
	return n, nil
}

func statusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", middleware.GetReqID(r.Context()), "err", err)
	}

	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{
		Error:     msg,
		Code:      string(code),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
