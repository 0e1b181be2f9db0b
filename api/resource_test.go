package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/airportservice/internal/auth"
	"github.com/Domenick1991/airportservice/internal/domain"
	"github.com/Domenick1991/airportservice/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrar interface {
	Register(router *gin.RouterGroup)
}

func newRouter(path string, h registrar, caller *auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	if caller != nil {
		r.Use(func(c *gin.Context) { middleware.SetIdentity(c, *caller) })
	}
	h.Register(r.Group(path))
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

var (
	jfk   = domain.Airport{ID: 1, Name: "JFK", ClosestBigCity: "New York"}
	lax   = domain.Airport{ID: 2, Name: "LAX", ClosestBigCity: "Los Angeles"}
	route = domain.Route{ID: 3, SourceID: 1, DestinationID: 2, Distance: 4000}
)

func TestAirportHandler_list(t *testing.T) {
	mockService := &MockUseCase[domain.Airport, domain.AirportInput]{}
	handler := NewAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/airports", nil)

	mockService.On("List", c.Request.Context()).Return([]domain.Airport{jfk, lax}, nil)

	handler.listAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id": 1, "name": "JFK", "closest_big_city": "New York"},
		{"id": 2, "name": "LAX", "closest_big_city": "Los Angeles"}
	]`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestAirportHandler_list_Empty(t *testing.T) {
	mockService := &MockUseCase[domain.Airport, domain.AirportInput]{}
	r := newRouter("/airports", NewAirportHandler(mockService), nil)

	mockService.On("List", mock.Anything).Return([]domain.Airport(nil), nil)

	w := serve(r, http.MethodGet, "/airports", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouteHandler_get_Detail(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	detail := route
	detail.Source, detail.Destination = &jfk, &lax
	mockService.On("Get", mock.Anything, int64(3)).Return(&detail, nil)

	w := serve(r, http.MethodGet, "/routes/3", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 3,
		"source": {"id": 1, "name": "JFK", "closest_big_city": "New York"},
		"destination": {"id": 2, "name": "LAX", "closest_big_city": "Los Angeles"},
		"distance": 4000
	}`, w.Body.String())
}

func TestRouteHandler_list_NeverEmbeds(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	detail := route
	detail.Source, detail.Destination = &jfk, &lax
	mockService.On("List", mock.Anything).Return([]domain.Route{detail}, nil)

	w := serve(r, http.MethodGet, "/routes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id": 3, "source": 1, "destination": 2, "distance": 4000}]`, w.Body.String())
}

func TestRouteHandler_get_NonIntegerIDIs404(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	w := serve(r, http.MethodGet, "/routes/abc", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestRouteHandler_get_NotFound(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	mockService.On("Get", mock.Anything, int64(99)).Return(nil, domain.NotFoundError{Resource: "route", ID: 99})

	w := serve(r, http.MethodGet, "/routes/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, "not_found", body["code"])
	assert.Equal(t, "route 99 not found", body["error"])
	assert.NotEmpty(t, body["request_id"])
}

func TestRouteHandler_create(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in domain.RouteInput) bool {
		return *in.Source == 1 && *in.Destination == 2 && *in.Distance == 4000
	})).Return(&route, nil)

	w := serve(r, http.MethodPost, "/routes", `{"source": 1, "destination": 2, "distance": 4000}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 3, "source": 1, "destination": 2, "distance": 4000}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestRouteHandler_create_MissingFields(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	w := serve(r, http.MethodPost, "/routes", `{"source": 1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "validation_error", body["code"])
	details := body["details"].(map[string]any)
	assert.Equal(t, "This field is required.", details["destination"])
	assert.Equal(t, "This field is required.", details["distance"])
	assert.NotContains(t, details, "source")
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRouteHandler_create_WrongType(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	w := serve(r, http.MethodPost, "/routes", `{"source": "one", "destination": 2, "distance": 4000}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	details := decode(t, w)["details"].(map[string]any)
	assert.Contains(t, details, "source")
}

func TestRouteHandler_create_MissingAirport(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ReferenceError{Field: "destination"})

	w := serve(r, http.MethodPost, "/routes", `{"source": 1, "destination": 404, "distance": 10}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "invalid_reference", body["code"])
	assert.Contains(t, body["details"], "destination")
}

func TestRouteHandler_update(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	updated := domain.Route{ID: 3, SourceID: 2, DestinationID: 1, Distance: 4100}
	mockService.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(in domain.RouteInput) bool {
		return *in.Source == 2 && *in.Destination == 1 && *in.Distance == 4100
	})).Return(&updated, nil)

	w := serve(r, http.MethodPut, "/routes/3", `{"source": 2, "destination": 1, "distance": 4100}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 3, "source": 2, "destination": 1, "distance": 4100}`, w.Body.String())
}

func TestRouteHandler_update_RequiresFullBody(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	w := serve(r, http.MethodPut, "/routes/3", `{"distance": 4100}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteHandler_patch_MergesOntoCurrent(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	current := route
	updated := domain.Route{ID: 3, SourceID: 1, DestinationID: 2, Distance: 5000}
	mockService.On("Get", mock.Anything, int64(3)).Return(&current, nil)
	mockService.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(in domain.RouteInput) bool {
		return *in.Source == 1 && *in.Destination == 2 && *in.Distance == 5000
	})).Return(&updated, nil)

	w := serve(r, http.MethodPatch, "/routes/3", `{"distance": 5000}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 3, "source": 1, "destination": 2, "distance": 5000}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestRouteHandler_patch_NullClearsAndFails(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	current := route
	mockService.On("Get", mock.Anything, int64(3)).Return(&current, nil)

	w := serve(r, http.MethodPatch, "/routes/3", `{"source": null}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteHandler_delete(t *testing.T) {
	mockService := &MockUseCase[domain.Route, domain.RouteInput]{}
	r := newRouter("/routes", NewRouteHandler(mockService), nil)

	mockService.On("Delete", mock.Anything, int64(3)).Return(nil)
	mockService.On("Delete", mock.Anything, int64(4)).Return(domain.NotFoundError{Resource: "route", ID: 4})

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/routes/3", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodDelete, "/routes/4", "").Code)
}

func TestHandler_InternalErrorIsGeneric(t *testing.T) {
	mockService := &MockUseCase[domain.Airport, domain.AirportInput]{}
	r := newRouter("/airports", NewAirportHandler(mockService), nil)

	mockService.On("List", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := serve(r, http.MethodGet, "/airports", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "internal server error", body["error"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAirplaneHandler_Shapes(t *testing.T) {
	mockService := &MockUseCase[domain.Airplane, domain.AirplaneInput]{}
	r := newRouter("/airplanes", NewAirplaneHandler(mockService), nil)

	boeing := domain.AirplaneType{ID: 4, Name: "Boeing 737"}
	plane := domain.Airplane{ID: 5, Name: "Airplane 1", Rows: 30, SeatsInRow: 6, AirplaneTypeID: 4, AirplaneType: &boeing}
	mockService.On("List", mock.Anything).Return([]domain.Airplane{plane}, nil)
	mockService.On("Get", mock.Anything, int64(5)).Return(&plane, nil)

	w := serve(r, http.MethodGet, "/airplanes", "")
	assert.JSONEq(t, `[{"id": 5, "name": "Airplane 1", "rows": 30, "seats_in_row": 6, "airplane_type": 4}]`, w.Body.String())

	w = serve(r, http.MethodGet, "/airplanes/5", "")
	assert.JSONEq(t, `{"id": 5, "name": "Airplane 1", "rows": 30, "seats_in_row": 6,
		"airplane_type": {"id": 4, "name": "Boeing 737"}}`, w.Body.String())
}

func TestFlightHandler_create_AcceptsArrivalBeforeDeparture(t *testing.T) {
	mockService := &MockUseCase[domain.Flight, domain.FlightInput]{}
	r := newRouter("/flights", NewFlightHandler(mockService), nil)

	dep := time.Date(2024, 9, 30, 23, 0, 0, 0, time.UTC)
	arr := time.Date(2024, 9, 30, 19, 0, 0, 0, time.UTC)
	created := domain.Flight{ID: 6, RouteID: 3, AirplaneID: 5, DepartureTime: dep, ArrivalTime: arr}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in domain.FlightInput) bool {
		return in.DepartureTime.Equal(dep) && in.ArrivalTime.Equal(arr)
	})).Return(&created, nil)

	w := serve(r, http.MethodPost, "/flights", `{"route": 3, "airplane": 5,
		"departure_time": "2024-09-30 23:00:00", "arrival_time": "2024-09-30T19:00:00Z"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 6, "route": 3, "airplane": 5,
		"departure_time": "2024-09-30 23:00:00", "arrival_time": "2024-09-30 19:00:00"}`, w.Body.String())
}

func TestFlightHandler_create_BadDatetime(t *testing.T) {
	mockService := &MockUseCase[domain.Flight, domain.FlightInput]{}
	r := newRouter("/flights", NewFlightHandler(mockService), nil)

	w := serve(r, http.MethodPost, "/flights", `{"route": 3, "airplane": 5,
		"departure_time": "tomorrow", "arrival_time": "2024-09-30 19:00:00"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_create_DefaultsUserToCaller(t *testing.T) {
	mockService := &MockUseCase[domain.Order, domain.OrderInput]{}
	caller := auth.Identity{UserID: 9, Email: "testuser@example.com"}
	r := newRouter("/orders", NewOrderHandler(mockService), &caller)

	created := domain.Order{ID: 7, CreatedAt: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC), UserID: 9, CustomerEmail: "testuser@example.com"}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in domain.OrderInput) bool {
		return in.User != nil && *in.User == 9
	})).Return(&created, nil)

	w := serve(r, http.MethodPost, "/orders", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 7, "created_at": "2024-09-01 08:00:00", "customer": "testuser@example.com"}`, w.Body.String())
}

func TestOrderHandler_create_ExplicitUser(t *testing.T) {
	mockService := &MockUseCase[domain.Order, domain.OrderInput]{}
	caller := auth.Identity{UserID: 1, IsStaff: true}
	r := newRouter("/orders", NewOrderHandler(mockService), &caller)

	created := domain.Order{ID: 8, UserID: 9, CustomerEmail: "testuser@example.com"}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in domain.OrderInput) bool {
		return *in.User == 9
	})).Return(&created, nil)

	w := serve(r, http.MethodPost, "/orders", `{"user": 9}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_update_MissingUserIsRejected(t *testing.T) {
	mockService := &MockUseCase[domain.Order, domain.OrderInput]{}
	caller := auth.Identity{UserID: 99, IsStaff: true}
	r := newRouter("/orders", NewOrderHandler(mockService), &caller)

	w := serve(r, http.MethodPut, "/orders/5", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["details"], "user")
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_patch_NullUserIsRejected(t *testing.T) {
	mockService := &MockUseCase[domain.Order, domain.OrderInput]{}
	caller := auth.Identity{UserID: 99, IsStaff: true}
	r := newRouter("/orders", NewOrderHandler(mockService), &caller)

	current := domain.Order{ID: 5, UserID: 7, CustomerEmail: "owner@example.com"}
	mockService.On("Get", mock.Anything, int64(5)).Return(&current, nil)

	w := serve(r, http.MethodPatch, "/orders/5", `{"user": null}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderHandler_patch_KeepsOwner(t *testing.T) {
	mockService := &MockUseCase[domain.Order, domain.OrderInput]{}
	caller := auth.Identity{UserID: 99, IsStaff: true}
	r := newRouter("/orders", NewOrderHandler(mockService), &caller)

	current := domain.Order{ID: 5, UserID: 7, CustomerEmail: "owner@example.com"}
	mockService.On("Get", mock.Anything, int64(5)).Return(&current, nil)
	mockService.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(in domain.OrderInput) bool {
		return in.User != nil && *in.User == 7
	})).Return(&current, nil)

	w := serve(r, http.MethodPatch, "/orders/5", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCrewHandler_patch_KeepsFlights(t *testing.T) {
	mockService := &MockCrewUseCase{}
	r := newRouter("/crews", NewCrewHandler(mockService, "/media/"), nil)

	current := domain.Crew{ID: 10, FirstName: "John", LastName: "Doe", FlightIDs: []int64{6, 7}}
	updated := domain.Crew{ID: 10, FirstName: "Johnny", LastName: "Doe", FlightIDs: []int64{6, 7}}
	mockService.On("Get", mock.Anything, int64(10)).Return(&current, nil)
	mockService.On("Update", mock.Anything, int64(10), mock.MatchedBy(func(in domain.CrewInput) bool {
		return *in.FirstName == "Johnny" && *in.LastName == "Doe" && len(*in.Flights) == 2
	})).Return(&updated, nil)

	w := serve(r, http.MethodPatch, "/crews/10", `{"first_name": "Johnny"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 10, "first_name": "Johnny", "last_name": "Doe", "flight": [6, 7], "picture_member": null}`, w.Body.String())
	assert.Equal(t, []int64{6, 7}, current.FlightIDs)
}

func TestCrewHandler_create_FlightKey(t *testing.T) {
	mockService := &MockCrewUseCase{}
	r := newRouter("/crews", NewCrewHandler(mockService, "/media/"), nil)

	created := domain.Crew{ID: 11, FirstName: "Jane", LastName: "Roe", FlightIDs: []int64{6}}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in domain.CrewInput) bool {
		return in.Flights != nil && len(*in.Flights) == 1 && (*in.Flights)[0] == 6
	})).Return(&created, nil)

	w := serve(r, http.MethodPost, "/crews", `{"first_name": "Jane", "last_name": "Roe", "flight": [6]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 11, "first_name": "Jane", "last_name": "Roe", "flight": [6], "picture_member": null}`, w.Body.String())
}
