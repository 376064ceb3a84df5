package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hance08/zenith/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pterm/pterm"
)

type toolHandler struct {
	registry *tools.Registry
	log      *pterm.Logger
}

// NewRouter serves the tool catalogue as plain JSON next to the MCP SSE
// endpoints. sse may be nil when only the JSON API is wanted.
func NewRouter(registry *tools.Registry, sse *server.SSEServer, log *pterm.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &toolHandler{registry: registry, log: log}
	r.GET("/tools", h.list)
	r.POST("/tools/:name", h.call)

	if sse != nil {
		r.GET("/sse", gin.WrapH(sse))
		r.POST("/message", gin.WrapH(sse))
	}

	return r
}

func (h *toolHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.registry.Tools()})
}

func (h *toolHandler) call(c *gin.Context) {
	name := c.Param("name")

	args := map[string]any{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	res, err := h.registry.Call(c.Request.Context(), name, args)
	if err != nil {
		var argErr *tools.ArgumentError
		switch {
		case errors.Is(err, tools.ErrUnknownTool):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.As(err, &argErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error("tool call failed", h.log.Args("tool", name, "error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, res)
}

func requestLogger(log *pterm.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug("request", log.Args(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		))
	}
}
