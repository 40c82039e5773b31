package handler

import (
	"io/fs"
	"net/http"

	"go.uber.org/fx"

	"github.com/lambda-feedback/greeter/internal/pipeline"
)

const indexFile = "index.html"

type IndexHandlerParams struct {
	fx.In

	Public fs.FS
}

// IndexHandler serves the index page of the asset root.
type IndexHandler struct {
	public fs.FS
}

func NewIndexHandler(params IndexHandlerParams) *IndexHandler {
	return &IndexHandler{public: params.Public}
}

func (h *IndexHandler) Serve(w http.ResponseWriter, r *http.Request) error {
	return pipeline.ServeFile(w, r, h.public, indexFile)
}
