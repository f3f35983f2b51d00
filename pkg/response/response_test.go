package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestEnvelopeWritten(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "rid-1")

	Success(c, 0, map[string]string{"k": "v"}, "ok", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body APIResponse[map[string]string]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.RequestID != "rid-1" || body.Data["k"] != "v" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestErrorDefaultsToBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error[any](c, 0, "bad", ErrorBody{Code: "VALIDATION"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["success"] != false || body["error"].(map[string]any)["code"] != "VALIDATION" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Fatal("data should be omitted on error")
	}
}
