package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type status struct {
	OK   bool   `json:"ok"`
	Date string `json:"date"`
}

// RootHandler answers uptime pingers with a bare OK.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "OK")
}

// Handler reports liveness as JSON.
func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status{
		OK:   true,
		Date: time.Now().Format(time.RFC3339),
	})
}
