package responseformat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type payload struct {
	Name  string `json:"name"`
	Grams int    `json:"grams"`
}

func TestWriteResponseJSON(t *testing.T) {
	f := NewFormatter(false)
	req := httptest.NewRequest(http.MethodGet, "/api/plants", nil)
	rec := httptest.NewRecorder()

	if err := f.WriteResponse(rec, req, http.StatusOK, payload{Name: "monstera", Grams: 1200}); err != nil {
		t.Fatalf("WriteResponse returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var decoded payload
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding JSON body: %v", err)
	}
	if decoded.Name != "monstera" || decoded.Grams != 1200 {
		t.Errorf("decoded = %+v, want monstera/1200", decoded)
	}
}

func TestWriteResponseMsgPack(t *testing.T) {
	f := NewFormatter(true)
	req := httptest.NewRequest(http.MethodGet, "/api/plants?format=msgpack", nil)
	rec := httptest.NewRecorder()

	if err := f.WriteResponse(rec, req, http.StatusOK, payload{Name: "ficus", Grams: 800}); err != nil {
		t.Fatalf("WriteResponse returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/x-msgpack" {
		t.Errorf("Content-Type = %q, want application/x-msgpack", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q, want *", got)
	}

	// Encoder uses json struct tags, so decode into a tag-keyed map
	var decoded map[string]any
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding msgpack body: %v", err)
	}
	if decoded["name"] != "ficus" {
		t.Errorf("name = %v, want ficus", decoded["name"])
	}
}

func TestWriteError(t *testing.T) {
	f := NewFormatter(false)
	req := httptest.NewRequest(http.MethodGet, "/api/plants/nope", nil)
	rec := httptest.NewRecorder()

	if err := f.WriteError(rec, req, http.StatusNotFound, "plant not found"); err != nil {
		t.Fatalf("WriteError returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var decoded map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding JSON body: %v", err)
	}
	if decoded["error"] != "plant not found" {
		t.Errorf("error = %q, want %q", decoded["error"], "plant not found")
	}
}
