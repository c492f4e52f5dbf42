package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"textblocks/models"
	"textblocks/splitter"
	"textblocks/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupHandlerRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := store.CreateRedisClient(mr.Addr(), "")
	t.Cleanup(func() { store.CloseRedisClient(client) })

	return client
}

func TestSplitterInfoHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	w := httptest.NewRecorder()

	SplitterInfoHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var response models.SplitterInfoResponse
	err := json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}

	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.DefaultMode != "auto" {
		t.Errorf("Expected default mode 'auto', got %q", response.DefaultMode)
	}
	if len(response.DelimiterModes) != 3 {
		t.Errorf("Expected 3 delimiter modes, got %v", response.DelimiterModes)
	}

	foundInt := false
	for _, parser := range response.LineParsers {
		if parser == "int" {
			foundInt = true
		}
	}
	if !foundInt {
		t.Errorf("Expected line parsers to contain 'int', got %v", response.LineParsers)
	}

	foundSum := false
	for _, reducer := range response.BlockReducers {
		if reducer == "sum" {
			foundSum = true
		}
	}
	if !foundSum {
		t.Errorf("Expected block reducers to contain 'sum', got %v", response.BlockReducers)
	}

	if response.MaxDocumentBytes <= 0 {
		t.Errorf("Expected positive max document bytes, got %d", response.MaxDocumentBytes)
	}
}

func TestSplitterInfoHandler_WrongMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/info", nil)
	w := httptest.NewRecorder()

	SplitterInfoHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected status code %d, got %d", http.StatusMethodNotAllowed, resp.StatusCode)
	}
}

func TestSplitBlocksHandler(t *testing.T) {
	tests := []struct {
		name          string
		request       models.SplitBlocksRequest
		expectedCount int
		expectedLines int
		expected      [][]string
	}{
		{
			name: "Blank line separated blocks",
			request: models.SplitBlocksRequest{
				Document: "a\nb\n\nc",
			},
			expectedCount: 2,
			expectedLines: 3,
			expected:      [][]string{{"a", "b"}, {"c"}},
		},
		{
			name: "Windows line endings",
			request: models.SplitBlocksRequest{
				Document: "a\r\nb\r\n\r\nc",
			},
			expectedCount: 2,
			expectedLines: 3,
			expected:      [][]string{{"a", "b"}, {"c"}},
		},
		{
			name: "Explicit delimiter",
			request: models.SplitBlocksRequest{
				Document:  "1\n2***3\n4",
				Delimiter: splitter.ExplicitDelimiter("***"),
			},
			expectedCount: 2,
			expectedLines: 4,
			expected:      [][]string{{"1", "2"}, {"3", "4"}},
		},
		{
			name: "Whitespace only document",
			request: models.SplitBlocksRequest{
				Document: "   \n\t  \n",
			},
			expectedCount: 0,
			expectedLines: 0,
			expected:      [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyBytes, _ := json.Marshal(tt.request)
			req := httptest.NewRequest(http.MethodPost, "/split", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			SplitBlocksHandler(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
			}

			var response models.SplitBlocksResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if !response.Success {
				t.Errorf("Expected success to be true, got error %q", response.Error)
			}
			if response.BlockCount != tt.expectedCount {
				t.Errorf("Expected %d blocks, got %d", tt.expectedCount, response.BlockCount)
			}
			if response.LineCount != tt.expectedLines {
				t.Errorf("Expected %d lines, got %d", tt.expectedLines, response.LineCount)
			}
			if !reflect.DeepEqual(response.Blocks, tt.expected) {
				t.Errorf("Expected blocks %v, got %v", tt.expected, response.Blocks)
			}
		})
	}
}

func TestSplitBlocksHandler_RequestValidation(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		method         string
		expectedStatus int
	}{
		{
			name: "Invalid method - GET instead of POST",
			requestBody: models.SplitBlocksRequest{
				Document: "a\n\nb",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "Invalid JSON body",
			requestBody:    "invalid json",
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Empty document field",
			requestBody: models.SplitBlocksRequest{
				Document: "",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Pattern delimiter is rejected",
			requestBody: models.SplitBlocksRequest{
				Document:  "a\n\nb",
				Delimiter: splitter.PatternDelimiter("^#"),
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Explicit delimiter without value",
			requestBody: models.SplitBlocksRequest{
				Document:  "a\n\nb",
				Delimiter: splitter.ExplicitDelimiter(""),
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bodyBytes []byte
			if str, ok := tt.requestBody.(string); ok {
				bodyBytes = []byte(str)
			} else {
				bodyBytes, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(tt.method, "/split", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			SplitBlocksHandler(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, resp.StatusCode)
			}

			var response models.SplitBlocksResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if response.Success {
				t.Error("Expected success to be false")
			}
			if response.Error == "" {
				t.Error("Expected error message")
			}
		})
	}
}

func TestSplitBlocksHandler_DocumentTooLarge(t *testing.T) {
	originalLimit := GetMaxDocumentBytes()
	defer SetMaxDocumentBytes(originalLimit)
	SetMaxDocumentBytes(8)

	bodyBytes, _ := json.Marshal(models.SplitBlocksRequest{
		Document: "this document is longer than eight bytes",
	})
	req := httptest.NewRequest(http.MethodPost, "/split", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	SplitBlocksHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	var response models.SplitBlocksResponse
	json.NewDecoder(resp.Body).Decode(&response)
	if !strings.Contains(response.Error, "maximum size") {
		t.Errorf("Expected size limit error, got %q", response.Error)
	}
}

func TestParseLinesHandler(t *testing.T) {
	tests := []struct {
		name     string
		request  models.ParseLinesRequest
		expected [][]any
	}{
		{
			name: "Integer parser",
			request: models.ParseLinesRequest{
				Document: "1\n2\n\n3",
				Parser:   "int",
			},
			expected: [][]any{{float64(1), float64(2)}, {float64(3)}},
		},
		{
			name: "Text parser",
			request: models.ParseLinesRequest{
				Document: "hello\nworld",
				Parser:   "text",
			},
			expected: [][]any{{"hello", "world"}},
		},
		{
			name: "Float parser",
			request: models.ParseLinesRequest{
				Document: "1.5\n\n2.5",
				Parser:   "float",
			},
			expected: [][]any{{1.5}, {2.5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyBytes, _ := json.Marshal(tt.request)
			req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			ParseLinesHandler(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
			}

			var response models.ParseLinesResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if !response.Success {
				t.Errorf("Expected success to be true, got error %q", response.Error)
			}
			if response.Parser != tt.request.Parser {
				t.Errorf("Expected parser %q, got %q", tt.request.Parser, response.Parser)
			}
			if !reflect.DeepEqual(response.Blocks, tt.expected) {
				t.Errorf("Expected blocks %v, got %v", tt.expected, response.Blocks)
			}
		})
	}
}

func TestParseLinesHandler_RequestValidation(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		method         string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Invalid method - GET instead of POST",
			requestBody: models.ParseLinesRequest{
				Document: "1\n2",
				Parser:   "int",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name: "Missing parser field",
			requestBody: models.ParseLinesRequest{
				Document: "1\n2",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Parser is required",
		},
		{
			name: "Unknown parser",
			requestBody: models.ParseLinesRequest{
				Document: "1\n2",
				Parser:   "roman",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "unknown line parser",
		},
		{
			name: "Line that does not parse",
			requestBody: models.ParseLinesRequest{
				Document: "1\n2\n\nnope",
				Parser:   "int",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "block 2, line 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(tt.method, "/parse", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			ParseLinesHandler(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, resp.StatusCode)
			}

			var response models.ParseLinesResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if response.Success {
				t.Error("Expected success to be false")
			}
			if tt.expectedError != "" && !strings.Contains(response.Error, tt.expectedError) {
				t.Errorf("Expected error containing %q, got %q", tt.expectedError, response.Error)
			}
		})
	}
}

func TestAggregateBlocksHandler(t *testing.T) {
	tests := []struct {
		name     string
		request  models.AggregateBlocksRequest
		expected []any
	}{
		{
			name: "Sum of unsigned integers",
			request: models.AggregateBlocksRequest{
				Document: "100\n200\n\n300\n400\n\n500\n600",
				Parser:   "uint",
				Reducer:  "sum",
			},
			expected: []any{float64(300), float64(700), float64(1100)},
		},
		{
			name: "Range of integers",
			request: models.AggregateBlocksRequest{
				Document: "5\n1\n9\n\n3\n3",
				Parser:   "int",
				Reducer:  "range",
			},
			expected: []any{float64(8), float64(0)},
		},
		{
			name: "Count of text lines",
			request: models.AggregateBlocksRequest{
				Document: "a\nb\nc\n\nd",
				Parser:   "text",
				Reducer:  "count",
			},
			expected: []any{float64(3), float64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyBytes, _ := json.Marshal(tt.request)
			req := httptest.NewRequest(http.MethodPost, "/aggregate", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			AggregateBlocksHandler(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.StatusCode)
			}

			var response models.AggregateBlocksResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if !response.Success {
				t.Errorf("Expected success to be true, got error %q", response.Error)
			}
			if !reflect.DeepEqual(response.Results, tt.expected) {
				t.Errorf("Expected results %v, got %v", tt.expected, response.Results)
			}
		})
	}
}

func TestAggregateBlocksHandler_RequestValidation(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		method         string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Invalid method - GET instead of POST",
			requestBody: models.AggregateBlocksRequest{
				Document: "1\n2",
				Parser:   "int",
				Reducer:  "sum",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name: "Missing reducer field",
			requestBody: models.AggregateBlocksRequest{
				Document: "1\n2",
				Parser:   "int",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Reducer is required",
		},
		{
			name: "Numeric reducer over text lines",
			requestBody: models.AggregateBlocksRequest{
				Document: "a\nb",
				Parser:   "text",
				Reducer:  "sum",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "numeric line parser",
		},
		{
			name: "Unknown reducer",
			requestBody: models.AggregateBlocksRequest{
				Document: "1\n2",
				Parser:   "int",
				Reducer:  "median",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "unknown block reducer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(tt.method, "/aggregate", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			AggregateBlocksHandler(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, resp.StatusCode)
			}

			var response models.AggregateBlocksResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if response.Success {
				t.Error("Expected success to be false")
			}
			if tt.expectedError != "" && !strings.Contains(response.Error, tt.expectedError) {
				t.Errorf("Expected error containing %q, got %q", tt.expectedError, response.Error)
			}
		})
	}
}

func TestSplitAndStoreHandler(t *testing.T) {
	client := setupHandlerRedis(t)
	ctx := context.Background()

	bodyBytes, _ := json.Marshal(models.SplitAndStoreRequest{
		Document: "alpha\nbeta\n\ngamma",
		Label:    "greek",
		Metadata: "letters",
	})
	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	SplitAndStoreHandler(w, req, ctx, client, "test_idx")

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, resp.StatusCode)
	}

	var response models.SplitAndStoreResponse
	err := json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}

	if !response.Success {
		t.Errorf("Expected success to be true, got error %q", response.Error)
	}
	if !strings.HasPrefix(response.ID, "doc:") {
		t.Errorf("Expected document ID with doc: prefix, got %q", response.ID)
	}
	if response.BlockCount != 2 {
		t.Errorf("Expected 2 blocks, got %d", response.BlockCount)
	}
	if response.LineCount != 3 {
		t.Errorf("Expected 3 lines, got %d", response.LineCount)
	}
	if response.Label != "greek" {
		t.Errorf("Expected label 'greek', got %q", response.Label)
	}
	if response.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	// The stored document can be read back
	getReq := httptest.NewRequest(http.MethodGet, "/documents/get?id="+response.ID, nil)
	getW := httptest.NewRecorder()

	GetDocumentHandler(getW, getReq, ctx, client, "test_idx")

	getResp := getW.Result()
	defer getResp.Body.Close()

	if getResp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, getResp.StatusCode)
	}

	var getResponse models.GetDocumentResponse
	err = json.NewDecoder(getResp.Body).Decode(&getResponse)
	if err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}

	if getResponse.Content != "alpha\nbeta\n\ngamma" {
		t.Errorf("Expected original content, got %q", getResponse.Content)
	}
	expectedBlocks := [][]string{{"alpha", "beta"}, {"gamma"}}
	if !reflect.DeepEqual(getResponse.Blocks, expectedBlocks) {
		t.Errorf("Expected blocks %v, got %v", expectedBlocks, getResponse.Blocks)
	}
	if getResponse.Label != "greek" {
		t.Errorf("Expected label 'greek', got %q", getResponse.Label)
	}
	if getResponse.Metadata != "letters" {
		t.Errorf("Expected metadata 'letters', got %q", getResponse.Metadata)
	}
}

func TestSplitAndStoreHandler_RequestValidation(t *testing.T) {
	client := setupHandlerRedis(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		requestBody    interface{}
		method         string
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Invalid method - GET instead of POST",
			requestBody: models.SplitAndStoreRequest{
				Document: "a\n\nb",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name: "Empty document field",
			requestBody: models.SplitAndStoreRequest{
				Document: "",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Document is required",
		},
		{
			name: "Whitespace only document",
			requestBody: models.SplitAndStoreRequest{
				Document: "   \n \t ",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No blocks found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(tt.method, "/documents", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			SplitAndStoreHandler(w, req, ctx, client, "test_idx")

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, resp.StatusCode)
			}

			var response models.SplitAndStoreResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if response.Success {
				t.Error("Expected success to be false")
			}
			if tt.expectedError != "" && !strings.Contains(response.Error, tt.expectedError) {
				t.Errorf("Expected error containing %q, got %q", tt.expectedError, response.Error)
			}
		})
	}
}

func TestGetDocumentHandler_NotFound(t *testing.T) {
	client := setupHandlerRedis(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/documents/get?id=doc:missing", nil)
	w := httptest.NewRecorder()

	GetDocumentHandler(w, req, ctx, client, "test_idx")

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, resp.StatusCode)
	}
}

func TestGetDocumentHandler_MissingID(t *testing.T) {
	client := setupHandlerRedis(t)
	ctx := context.Background()

	req := httptest.NewRequest(http.MethodGet, "/documents/get", nil)
	w := httptest.NewRecorder()

	GetDocumentHandler(w, req, ctx, client, "test_idx")

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestDeleteDocumentHandler(t *testing.T) {
	client := setupHandlerRedis(t)
	ctx := context.Background()

	// Store a document first
	storeBody, _ := json.Marshal(models.SplitAndStoreRequest{
		Document: "to\nbe\n\ndeleted",
	})
	storeReq := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBuffer(storeBody))
	storeW := httptest.NewRecorder()
	SplitAndStoreHandler(storeW, storeReq, ctx, client, "test_idx")

	var stored models.SplitAndStoreResponse
	json.NewDecoder(storeW.Result().Body).Decode(&stored)
	if stored.ID == "" {
		t.Fatal("Expected stored document ID")
	}

	// Delete it
	deleteBody, _ := json.Marshal(models.DeleteDocumentRequest{ID: stored.ID})
	deleteReq := httptest.NewRequest(http.MethodPost, "/documents/delete", bytes.NewBuffer(deleteBody))
	deleteW := httptest.NewRecorder()

	DeleteDocumentHandler(deleteW, deleteReq, ctx, client, "test_idx")

	deleteResp := deleteW.Result()
	defer deleteResp.Body.Close()

	if deleteResp.StatusCode != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, deleteResp.StatusCode)
	}

	var deleted models.DeleteDocumentResponse
	err := json.NewDecoder(deleteResp.Body).Decode(&deleted)
	if err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}
	if !deleted.Success {
		t.Errorf("Expected success to be true, got error %q", deleted.Error)
	}
	if deleted.ID != stored.ID {
		t.Errorf("Expected deleted ID %q, got %q", stored.ID, deleted.ID)
	}

	// Deleting again returns not found
	deleteBody, _ = json.Marshal(models.DeleteDocumentRequest{ID: stored.ID})
	deleteReq = httptest.NewRequest(http.MethodPost, "/documents/delete", bytes.NewBuffer(deleteBody))
	deleteW = httptest.NewRecorder()

	DeleteDocumentHandler(deleteW, deleteReq, ctx, client, "test_idx")

	secondResp := deleteW.Result()
	defer secondResp.Body.Close()

	if secondResp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, secondResp.StatusCode)
	}
}

func TestSearchDocumentsHandler_RequestValidation(t *testing.T) {
	client := setupHandlerRedis(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		requestBody    interface{}
		method         string
		expectedStatus int
	}{
		{
			name: "Invalid method - GET instead of POST",
			requestBody: models.SearchDocumentsRequest{
				Label: "test",
			},
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name: "Empty label field",
			requestBody: models.SearchDocumentsRequest{
				Label: "",
			},
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON body",
			requestBody:    "invalid json",
			method:         http.MethodPost,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bodyBytes []byte
			if str, ok := tt.requestBody.(string); ok {
				bodyBytes = []byte(str)
			} else {
				bodyBytes, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(tt.method, "/documents/search", bytes.NewBuffer(bodyBytes))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			SearchDocumentsHandler(w, req, ctx, client, "test_idx")

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, resp.StatusCode)
			}

			var response models.SearchDocumentsResponse
			err := json.NewDecoder(resp.Body).Decode(&response)
			if err != nil {
				t.Errorf("Failed to decode response: %v", err)
			}

			if response.Success {
				t.Error("Expected success to be false")
			}
			if response.Error == "" {
				t.Error("Expected error message")
			}
		})
	}
}
