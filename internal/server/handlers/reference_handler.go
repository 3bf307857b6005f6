package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/tagger/core/reference"
)

// ReferenceHandler exposes a REST interface to one reference catalog. Two
// instances are mounted, one per kind.
type ReferenceHandler struct {
	logger  log.Logger
	service *reference.Service
	kind    reference.Kind
}

func NewReferenceHandler(logger log.Logger, service *reference.Service, kind reference.Kind) *ReferenceHandler {
	return &ReferenceHandler{
		logger:  logger,
		service: service,
		kind:    kind,
	}
}

func (h *ReferenceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetAll(r.Context(), h.kind)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}
	if entries == nil {
		entries = []reference.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": entries,
	})
}

// Add appends an entry. Codes are normalised to upper case before the
// case-sensitive duplicate check.
func (h *ReferenceHandler) Add(w http.ResponseWriter, r *http.Request) {
	var entry reference.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}
	entry.Code = strings.ToUpper(strings.TrimSpace(entry.Code))
	entry.Name = strings.TrimSpace(entry.Name)

	err := h.service.Add(r.Context(), h.kind, entry)
	if err != nil {
		if errors.As(err, new(reference.ValidationError)) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(reference.DuplicateError)) {
			WriteJSONError(w, http.StatusConflict, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *ReferenceHandler) Remove(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.service.Remove(r.Context(), h.kind, code); err != nil {
		if errors.As(err, new(reference.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
