package api

import (
	"encoding/json"
	"net/http"

	"textblocks/models"
	"textblocks/splitter"
)

var maxDocumentBytes = 1048576

func SetMaxDocumentBytes(limit int) {
	maxDocumentBytes = limit
}

func GetMaxDocumentBytes() int {
	return maxDocumentBytes
}

// SplitterInfoHandler handles requests for the splitter vocabulary and limits
func SplitterInfoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept GET requests
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Method not allowed. Use GET",
		})
		return
	}

	response := models.SplitterInfoResponse{
		DefaultMode: string(splitter.DelimiterAuto),
		DelimiterModes: []string{
			string(splitter.DelimiterAuto),
			string(splitter.DelimiterExplicit),
			string(splitter.DelimiterPattern),
		},
		LineParsers:      splitter.LineParserNames(),
		BlockReducers:    splitter.BlockReducerNames(),
		MaxDocumentBytes: maxDocumentBytes,
		Success:          true,
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// HealthCheckHandler handles health check requests
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"status": "healthy",
		"server": "mcp-textblocks-server",
	}
	json.NewEncoder(w).Encode(response)
}
