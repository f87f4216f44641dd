package validator

import (
	"errors"
	"net/http"

	"github.com/mikepage/dmarc-validator/dmarc"
)

// handleLookup serves GET /api/dmarc?domain=<domain>.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		writeError(w, http.StatusBadRequest, "Domain is required")
		return
	}

	result, err := dmarc.Lookup(r.Context(), s.config.Resolver, domain)
	if err != nil {
		if errors.Is(err, dmarc.ErrNoRecord) {
			lookupsTotal.WithLabelValues(outcomeNoRecord).Inc()
			writeError(w, http.StatusNotFound,
				"No DMARC record found for "+dmarc.CleanDomain(domain)+". The domain may not publish a DMARC policy.")
			return
		}
		lookupsTotal.WithLabelValues(outcomeError).Inc()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	lookupsTotal.WithLabelValues(outcomeOK).Inc()
	queryDuration.Observe(float64(result.QueryTime) / 1000)

	writeJSON(w, http.StatusOK, lookupResponse{
		Success:           true,
		Domain:            result.Domain,
		Record:            result.Record,
		Tags:              result.Tags,
		Policy:            result.Policy,
		PolicyDescription: result.PolicyDescription,
		QueryTime:         result.QueryTime,
	})
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
