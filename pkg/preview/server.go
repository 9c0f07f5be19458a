// Package preview serves an HTTP/SSE live view of an in-progress render:
// the idiomatic Go analogue of a native GL preview window, since a
// headless CLI has no window surface to re-upload a texture into.
package preview

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/lumenray/raygo/pkg/output"
	"github.com/lumenray/raygo/pkg/renderer"
	"github.com/lumenray/raygo/pkg/rtlog"
	"go.uber.org/zap"
)

// Server streams periodic PNG snapshots of a render buffer as
// server-sent events over GET /preview, until the render completes or the
// client disconnects. A client disconnect sets Cancel so the render
// driver stops early, mirroring a user closing the reference preview
// window.
type Server struct {
	Buffer *renderer.Buffer
	Cancel *atomic.Bool
	Done   <-chan struct{}

	addr string
	srv  *http.Server
}

// NewServer builds a preview server bound to addr (e.g. ":8080") that
// streams buf and sets cancel on client disconnect. done is closed by the
// caller once rendering has finished, so the final frame can be sent and
// the stream closed cleanly.
func NewServer(addr string, buf *renderer.Buffer, cancel *atomic.Bool, done <-chan struct{}) *Server {
	return &Server{Buffer: buf, Cancel: cancel, Done: done, addr: addr}
}

// Start begins serving in a background goroutine. A failure to bind is
// logged as a warning and preview is disabled; rendering proceeds
// headless, per the error-handling policy for preview-surface failures.
func (s *Server) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/preview", s.handlePreview)

	s.srv = &http.Server{Addr: s.addr, Handler: mux}

	ln, err := newListener(s.addr)
	if err != nil {
		rtlog.Log.Warn("preview: failed to bind, continuing headless", zap.Error(err))
		return
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			rtlog.Log.Warn("preview: server stopped", zap.Error(err))
		}
	}()
}

// Stop shuts the preview server down.
func (s *Server) Stop() {
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.srv.Shutdown(ctx)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	ctx := r.Context()

	for {
		select {
		case <-ctx.Done():
			s.Cancel.Store(true)
			return
		case <-s.Done:
			s.sendFrame(w)
			flusher.Flush()
			return
		case <-ticker.C:
			s.sendFrame(w)
			flusher.Flush()
		}
	}
}

func (s *Server) sendFrame(w http.ResponseWriter) {
	var buf bytes.Buffer
	img := output.ToImage(s.Buffer)
	if err := encodePNG(&buf, img); err != nil {
		return
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	fmt.Fprintf(w, "event: frame\ndata: %s\n\n", encoded)
}
