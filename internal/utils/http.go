package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as the response body with the given
// status code, setting Content-Type to application/json. Every API handler
// answers through it: upload results, metadata records, verification
// answers, and error envelopes alike.
//
// Marshaling failures answer 500 and return a wrapped error; the status
// code requested by the caller is not written in that case.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
