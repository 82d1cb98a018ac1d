package dto

import (
	"encoding/json"
	"net/http"
)

// Response 統一的回應信封
// {success, data, count?} / {success:false, error}
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeResponse(w, status, Response{Success: true, Data: data})
}

// WriteJSONWithCount 清單回應會多帶count
func WriteJSONWithCount(w http.ResponseWriter, status int, data interface{}, count int) {
	writeResponse(w, status, Response{Success: true, Data: data, Count: &count})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	writeResponse(w, status, Response{Success: false, Error: message})
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
