package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goto/salt/log"

	"github.com/goto/tagger/core/asset"
)

const defaultRecentSize = 10

// AssetHandler exposes a REST interface to the issued tag collection.
type AssetHandler struct {
	logger  log.Logger
	service *asset.Service
}

func NewAssetHandler(logger log.Logger, service *asset.Service) *AssetHandler {
	return &AssetHandler{
		logger:  logger,
		service: service,
	}
}

// GetAll lists assets. With sort=recent the list is newest first and
// limited by size (default 10).
func (h *AssetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var (
		assets []asset.Asset
		err    error
	)

	if r.URL.Query().Get("sort") == "recent" {
		size := defaultRecentSize
		if sizeString := r.URL.Query().Get("size"); sizeString != "" {
			if parsed, convErr := strconv.Atoi(sizeString); convErr == nil {
				size = parsed
			}
		}
		assets, err = h.service.Recent(r.Context(), size)
	} else {
		assets, err = h.service.GetAll(r.Context())
	}
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	if assets == nil {
		assets = []asset.Asset{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":  assets,
		"total": len(assets),
	})
}

type generatePayload struct {
	CountryCode      string `json:"country_code"`
	ManufacturerCode string `json:"manufacturer_code"`
	Name             string `json:"name"`
	Count            int    `json:"count"`
}

// Generate issues a batch of sequential tags and persists them.
func (h *AssetHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var payload generatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}
	if payload.Count == 0 {
		payload.Count = 1
	}

	generated, err := h.service.GenerateTags(r.Context(), payload.CountryCode, payload.ManufacturerCode, payload.Name, payload.Count)
	if err != nil {
		if errors.As(err, new(asset.ValidationError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data":  generated,
		"total": len(generated),
	})
}

type importPayload struct {
	Text string `json:"text"`
}

// Import parses pasted tag lines and appends the accepted ones.
func (h *AssetHandler) Import(w http.ResponseWriter, r *http.Request) {
	var payload importPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}

	imported, err := h.service.Import(r.Context(), payload.Text)
	if err != nil {
		if errors.As(err, new(asset.ValidationError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data":  imported,
		"total": len(imported),
	})
}

func (h *AssetHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
