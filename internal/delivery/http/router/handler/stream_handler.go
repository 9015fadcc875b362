package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"tourquote/internal/delivery/http/response"
	"tourquote/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Watcher repository.CatalogWatcher
	Logger  *slog.Logger
}

// StreamHandler pushes live catalog snapshots to the console over SSE. Every
// remote change produces one event carrying the full collection, so the
// console replaces its local copy instead of patching it.
type StreamHandler struct {
	watcher repository.CatalogWatcher
	logger  *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		watcher: params.Watcher,
		logger:  params.Logger,
	}
}

// StreamCollection subscribes the client to one catalog collection.
func (h *StreamHandler) StreamCollection(c echo.Context) error {
	ctx := c.Request().Context()

	switch c.Param("collection") {
	case "countries":
		return streamSSE(c, h.logger, h.watcher.WatchCountries(ctx))
	case "cities":
		return streamSSE(c, h.logger, h.watcher.WatchCities(ctx))
	case "categories":
		return streamSSE(c, h.logger, h.watcher.WatchCategories(ctx))
	case "products":
		return streamSSE(c, h.logger, h.watcher.WatchProducts(ctx))
	default:
		return response.NotFound(c, "UNKNOWN_COLLECTION", "Unknown catalog collection")
	}
}

func streamSSE[T any](c echo.Context, logger *slog.Logger, snapshots <-chan repository.Snapshot[T]) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snapshots:
			if !ok {
				return nil
			}
			if snap.Err != nil {
				logger.Error("Catalog subscription failed",
					"error", snap.Err.Error(),
					"path", c.Request().URL.Path,
				)
				fmt.Fprint(c.Response(), "event: error\ndata: {}\n\n")
				c.Response().Flush()

				return nil
			}

			data := snap.Data
			if data == nil {
				// empty collection still renders as a JSON array
				data = []T{}
			}
			payload, err := json.Marshal(data)
			if err != nil {
				logger.Error("Failed to encode catalog snapshot", "error", err.Error())

				return nil
			}
			fmt.Fprintf(c.Response(), "data: %s\n\n", payload)
			c.Response().Flush()
		}
	}
}
