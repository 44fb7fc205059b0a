package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/fractal"
)

// Progress message types sent on the render websocket.
const (
	msgStart = "start"
	msgBand  = "band"
	msgDone  = "done"
	msgError = "error"
)

// progressMessage is one JSON text frame of the render stream. The encoded
// image follows the "done" message as a single binary frame.
type progressMessage struct {
	Type   string `json:"type"`
	Bands  int    `json:"bands,omitempty"`
	Index  int    `json:"index,omitempty"`
	Top    int    `json:"top,omitempty"`
	Rows   int    `json:"rows,omitempty"`
	Cached bool   `json:"cached,omitempty"`
	Format string `json:"format,omitempty"`
	Bytes  int    `json:"bytes,omitempty"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

// handleRenderWS renders like handleRender but reports each finished band
// before sending the image. Query errors are answered with a plain HTTP
// error before the upgrade.
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	opts, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()

	// Bands finish on their own goroutines; a single writer keeps frames
	// ordered and off the render path.
	events := make(chan fractal.Band, opts.BandCount())
	opts.OnBand = func(b fractal.Band) { events <- b }

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for b := range events {
			_ = wsjson.Write(ctx, conn, progressMessage{Type: msgBand, Index: b.Index, Top: b.Top, Rows: b.Bounds.Height})
		}
	}()

	if err := wsjson.Write(ctx, conn, progressMessage{Type: msgStart, Bands: opts.BandCount()}); err != nil {
		close(events)
		wg.Wait()
		return
	}

	result, err := s.runner.Execute(ctx, opts)
	close(events)
	wg.Wait()
	if err != nil {
		s.closeWithError(ctx, conn, err)
		return
	}

	format := opts.Formats[0]
	data := result.Artifacts[format]
	done := progressMessage{Type: msgDone, Cached: result.CacheInfo.RenderHit, Format: format, Bytes: len(data)}
	if err := wsjson.Write(ctx, conn, done); err != nil {
		return
	}
	if err := conn.Write(ctx, websocket.MessageBinary, data); err != nil {
		return
	}
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) closeWithError(ctx context.Context, conn *websocket.Conn, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.logger.Error("websocket render failed", "err", err)
	_ = wsjson.Write(ctx, conn, progressMessage{Type: msgError, Code: string(code), Error: errors.UserMessage(err)})
	conn.Close(websocket.StatusInternalError, string(code))
}
