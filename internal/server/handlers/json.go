package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goto/salt/log"
)

type ErrorResponse struct {
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, &ErrorResponse{Reason: msg})
}

func internalServerError(w http.ResponseWriter, logger log.Logger, msg string) {
	ref := "error processing request"
	logger.Error(msg)
	WriteJSONError(w, http.StatusInternalServerError, ref)
}

func bodyParserErrorMsg(err error) string {
	return fmt.Sprintf("error parsing request body: %v", err)
}
