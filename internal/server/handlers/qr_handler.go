package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/pkg/qr"
)

// QRHandler renders a tag as a scannable PNG.
type QRHandler struct {
	logger log.Logger
}

func NewQRHandler(logger log.Logger) *QRHandler {
	return &QRHandler{logger: logger}
}

func (h *QRHandler) Get(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]
	if _, err := asset.ParseTag(tag); err != nil {
		if errors.As(err, new(asset.InvalidTagError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	size := 0
	if sizeString := r.URL.Query().Get("size"); sizeString != "" {
		if parsed, err := strconv.Atoi(sizeString); err == nil {
			size = parsed
		}
	}

	png, err := qr.PNG(tag, size)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	w.Header().Set("content-type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
