// Package http implements the HTTP transport layer of the development
// object store. It provides middleware, route handlers, and
// request/response utilities for the REST API. Authentication, logging and
// tracing concerns are all handled at this layer before requests reach the
// object store.
package http

import (
	"github.com/pkruglov/notesync/internal/config"
	"github.com/pkruglov/notesync/internal/devstore"
	"github.com/pkruglov/notesync/internal/logger"
)

type Handler struct {
	store *devstore.ObjectStore
	cfg   config.ServerConfig

	logger *logger.Logger
}

func NewHandler(store *devstore.ObjectStore, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}
