// Package server exposes a stemmer over HTTP with fasthttp.
package server

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/internal/core/domain"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/baditaflorin/go_porter_stemmer/pkg/config"
	"github.com/valyala/fasthttp"
)

// Stemmer is what the handler needs from the stemming facade.
type Stemmer interface {
	Result(word string) (domain.Result, error)
}

// Request is the body of POST /stem.
type Request struct {
	Word string `json:"word"`
}

// Response is returned for a stemmed word.
type Response struct {
	Word   string `json:"word"`
	Stem   string `json:"stem"`
	Length int    `json:"length"`
	Engine string `json:"engine"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler routes requests to the stemmer.
type Handler struct {
	stemmer Stemmer
	logger  ports.Logger
}

// NewHandler creates a request handler.
func NewHandler(stemmer Stemmer, logger ports.Logger) *Handler {
	return &Handler{stemmer: stemmer, logger: logger}
}

// New builds a fasthttp server for h from the server configuration.
func New(cfg config.ServerConfig, h *Handler) *fasthttp.Server {
	return &fasthttp.Server{
		Handler:               h.Handle,
		Name:                  "PorterStemmer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}
}

// Handle is the fasthttp request handler.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		h.handleHealthCheck(ctx)
	case "/stem":
		h.handleStem(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		h.writeJSONError(ctx, "Not found")
	}

	h.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (h *Handler) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleStem accepts the word as a query parameter on GET or as JSON on POST.
func (h *Handler) handleStem(ctx *fasthttp.RequestCtx) {
	var word string
	switch {
	case ctx.IsGet():
		word = string(ctx.QueryArgs().Peek("word"))
	case ctx.IsPost():
		var req Request
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			h.writeJSONError(ctx, "Invalid request: "+err.Error())
			return
		}
		word = req.Word
	default:
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		h.writeJSONError(ctx, "Method not allowed")
		return
	}

	if word == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		h.writeJSONError(ctx, "A word is required")
		return
	}

	result, err := h.stemmer.Result(word)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidLength) {
			ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
		} else {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		}
		h.writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	h.writeJSONResponse(ctx, Response{
		Word:   result.Word,
		Stem:   result.Stem,
		Length: len(result.Stem),
		Engine: result.Engine,
	})
}

// writeJSONResponse writes a JSON response to the context
func (h *Handler) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		h.logger.Error("Error marshaling JSON response", "error", err)
		h.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (h *Handler) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		h.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
