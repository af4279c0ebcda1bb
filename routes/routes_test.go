package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flowerdecor/handlers"
	"flowerdecor/models"
	"flowerdecor/services/booking"
	"flowerdecor/services/contact"
	"flowerdecor/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type tokenAdmin struct{}

func (tokenAdmin) Login(context.Context, string, string) (*models.AdminLoginResponse, error) {
	return &models.AdminLoginResponse{Token: "valid"}, nil
}

func (tokenAdmin) Authenticate(_ context.Context, token string) (*models.Admin, error) {
	if token == "valid" {
		return &models.Admin{ID: primitive.NewObjectID(), Username: "owner"}, nil
	}
	return nil, errors.New("invalid token")
}

func (tokenAdmin) CreateAdmin(context.Context, string, string) (*models.Admin, error) {
	return nil, errors.New("unused")
}

type acceptAll struct{}

func (acceptAll) Handle(context.Context, map[string]any) booking.Outcome {
	return booking.Outcome{Status: http.StatusCreated, Body: models.BookingCreatedResponse{Message: "Booking created successfully", BookingID: "BK1"}}
}

type relayAll struct{}

func (relayAll) Handle(context.Context, models.ContactRequest) contact.Outcome {
	return contact.Outcome{Status: http.StatusOK, Body: models.ContactResponse{Success: true, Message: "Message sent successfully!"}}
}

type emptyBookings struct{}

func (emptyBookings) Create(_ context.Context, b models.Booking) (models.Booking, error) { return b, nil }
func (emptyBookings) ListRecent(context.Context, int) ([]models.Booking, error)        { return nil, nil }
func (emptyBookings) Count(context.Context) (int64, error)                             { return 0, nil }
func (emptyBookings) GetByBookingID(context.Context, string) (*models.Booking, error) {
	return &models.Booking{BookingID: "BK1"}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := tokenAdmin{}
	hb := &handlers.HandlerBundle{
		AdminService: svc,
		Booking:      handlers.NewBookingHandler(acceptAll{}, emptyBookings{}),
		Contact:      handlers.NewContactHandler(relayAll{}),
		Content:      handlers.NewContentHandler(nil),
		Admin:        handlers.NewAdminHandler(svc),
		Storage:      handlers.NewStorageHandler(storage.DisabledStore{}),
		Health:       handlers.NewHealthHandler(nil),
	}
	r := gin.New()
	RegisterRoutes(r, hb)
	return r
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter()
	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/bookings/BK1"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/services"},
		{http.MethodPost, "/api/admin/services"},
		{http.MethodPut, "/api/admin/services/abc"},
		{http.MethodDelete, "/api/admin/services/abc"},
		{http.MethodPost, "/api/events"},
		{http.MethodPut, "/api/events/abc"},
		{http.MethodDelete, "/api/delete/events/abc"},
		{http.MethodPost, "/api/upload"},
	}

	for _, p := range protected {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"No token"}`, w.Body.String())

			req := httptest.NewRequest(p.method, p.path, nil)
			req.Header.Set("Authorization", "Bearer forged")
			w = httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"name":"Asha"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ravi"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "API is running", w.Body.String())
}

func TestAuthorizedBookingLookup(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/BK1", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingId":"BK1"`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://flowerdecor.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
