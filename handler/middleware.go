package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// リクエストごとの logger を context に載せ、終わったらアクセスログを出す
func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := h.logger.With().
			Str("request_id", middleware.GetReqID(r.Context())).
			Logger()
		ctx := logger.WithContext(r.Context())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", statusCode(ww)).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("access")
	})
}

// 何も書かずに返したハンドラは 200 扱い
func statusCode(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
