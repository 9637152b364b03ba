package httputils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON shape every endpoint responds with.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

func Success(w http.ResponseWriter, status int, data interface{}, message string) {
	respond(w, status, Envelope{Success: true, Data: data, Message: message})
}

func Error(w http.ResponseWriter, status int, message string) {
	respond(w, status, Envelope{Success: false, Message: message})
}

func respond(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
