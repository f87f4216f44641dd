package validator

import (
	"encoding/json"
	"net/http"

	"github.com/mikepage/dmarc-validator/dmarc"
)

// lookupResponse is the success payload of GET /api/dmarc.
type lookupResponse struct {
	Success           bool        `json:"success"`
	Domain            string      `json:"domain"`
	Record            string      `json:"record"`
	Tags              []dmarc.Tag `json:"tags"`
	Policy            string      `json:"policy"`
	PolicyDescription string      `json:"policyDescription"`
	QueryTime         int64       `json:"queryTime"`
}

// errorResponse is the payload of every non-200 response. Success serializes
// explicitly as false.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the error payload with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
