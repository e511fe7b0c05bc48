package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it with statusCode and a JSON
// content type. The body carries no trailing newline, so the inspection
// endpoints return exactly the marshalled document.
//
// If marshaling fails nothing from data is written: the response becomes a
// plain 500 and the wrapped error is returned.
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
