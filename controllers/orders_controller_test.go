package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The handlers validate ids and bodies before touching the database, so the
// rejection paths are testable without a live connection.

func ordersTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// auth context as the middleware would set it
	r.Use(func(c *gin.Context) {
		c.Set("userID", "64f000000000000000000001")
		c.Set("email", "admin@example.com")
		c.Set("role", "ADMIN")
	})
	r.PATCH("/admin/orders/:id/status", AdminUpdateOrderStatus())
	r.POST("/advertiser/orders", CreateOrder())
	r.POST("/publisher/orders/:id/deliver", PublisherDeliverOrder())
	return r
}

func patchJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAdminUpdateOrderStatusInvalidID(t *testing.T) {
	r := ordersTestRouter()

	w := patchJSON(r, "/admin/orders/not-an-id/status", `{"status":"completed","note":"done"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid order id")
}

func TestAdminUpdateOrderStatusRequiresNote(t *testing.T) {
	r := ordersTestRouter()

	w := patchJSON(r, "/admin/orders/64f000000000000000000010/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Note")
}

func TestAdminUpdateOrderStatusUnknownStatus(t *testing.T) {
	r := ordersTestRouter()

	w := patchJSON(r, "/admin/orders/64f000000000000000000010/status", `{"status":"cancelled","note":"because"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown status")
}

func TestCreateOrderRejectsBadPayload(t *testing.T) {
	r := ordersTestRouter()

	// unknown type fails the oneof binding
	w := postJSON(r, "/advertiser/orders", `{"websiteId":"64f000000000000000000020","type":"BANNER"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed website id
	w = postJSON(r, "/advertiser/orders", `{"websiteId":"nope","type":"GUEST_POST"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid website id")
}

func TestPublisherDeliverOrderRequiresPublishedURL(t *testing.T) {
	r := ordersTestRouter()

	w := postJSON(r, "/publisher/orders/64f000000000000000000010/deliver", `{"note":"published"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "publishedUrl")

	w = postJSON(r, "/publisher/orders/64f000000000000000000010/deliver", `{"note":"published","publishedUrl":"not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
