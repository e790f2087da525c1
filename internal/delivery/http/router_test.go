package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management/internal/delivery/http/handler"
	"hospital-management/internal/delivery/http/middleware"
	"hospital-management/internal/repository/memory"
	"hospital-management/internal/service"
	"hospital-management/internal/usecase"
	"hospital-management/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	audit := service.NewAuditService(log)
	locks := service.NewLocalKeyLock()
	v := validator.NewValidator()

	router := NewRouter(
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(store, log, audit, locks), v),
		handler.NewPatientHandler(usecase.NewPatientUsecase(store, log, audit, locks), v),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(store, log, audit, locks), v),
		handler.NewBillHandler(usecase.NewBillUsecase(store, log, audit, locks), v),
		handler.NewAuditLogHandler(usecase.NewAuditLogUsecase(store, log)),
		middleware.NewCORSMiddleware([]string{"http://ward.local"}),
		middleware.NewRequestIDMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, srv.URL+"/api/v1"+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}

func dataField(t *testing.T, env envelope, key string) interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &m))
	return m[key]
}

func TestHealth(t *testing.T) {
	srv := setupServer(t)
	resp, err := srv.Client().Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}

func TestDoctorEndpoints(t *testing.T) {
	srv := setupServer(t)

	code, env := call(t, srv, http.MethodPost, "/doctors", `{"name":"Dr. X","specialty":"Cardiology","license_number":"LIC-1"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(1), dataField(t, env, "id"))

	code, env = call(t, srv, http.MethodPost, "/doctors", `{"name":"Dr. Y","specialty":"Cardiology","license_number":"LIC-1"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "licenseNumber already exists: LIC-1", env.Message)

	code, env = call(t, srv, http.MethodPost, "/doctors", `{"specialty":"Cardiology"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed", env.Message)

	code, _ = call(t, srv, http.MethodPost, "/doctors", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, srv, http.MethodGet, "/doctors/specialty/Cardiology", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), dataField(t, env, "total"))

	code, _ = call(t, srv, http.MethodGet, "/doctors/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, srv, http.MethodGet, "/doctors/42", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Doctor not found with id: 42", env.Message)

	code, env = call(t, srv, http.MethodPut, "/doctors/1", `{"name":"Dr. X","specialty":"Surgery","license_number":"LIC-1","years_of_experience":8}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Surgery", dataField(t, env, "specialty"))

	code, _ = call(t, srv, http.MethodDelete, "/doctors/1", "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, srv, http.MethodDelete, "/doctors/1", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAppointmentAndCascade(t *testing.T) {
	srv := setupServer(t)

	code, _ := call(t, srv, http.MethodPost, "/patients", `{"name":"Ann","email":"ann@x.com","phone":"555-1"}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, srv, http.MethodPost, "/doctors", `{"name":"Dr. X","specialty":"Cardiology"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, srv, http.MethodPost, "/appointments",
		`{"patient":1,"doctor":{"kind":"id","id":1},"date_time":"2024-03-01T09:30:00","status":"SCHEDULED"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "2024-03-01T09:30:00", dataField(t, env, "date_time"))
	assert.Equal(t, "Ann", dataField(t, env, "patient_name"))

	code, env = call(t, srv, http.MethodPost, "/appointments",
		`{"patient":1,"doctor":7,"date_time":"2024-03-01T09:30:00"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Doctor not found with id: 7", env.Message)

	code, _ = call(t, srv, http.MethodPost, "/appointments",
		`{"patient":1,"doctor":1,"date_time":"2024-03-01T09:30:00","status":"DONE"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, srv, http.MethodPost, "/appointments", `{"patient":1,"doctor":1}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.JSONEq(t, `{"date_time":"date_time is required"}`, string(env.Error))

	code, env = call(t, srv, http.MethodGet, "/appointments/status/SCHEDULED", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), dataField(t, env, "total"))

	code, _ = call(t, srv, http.MethodDelete, "/doctors/1", "")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = call(t, srv, http.MethodDelete, "/patients/1", "")
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, srv, http.MethodGet, "/appointments/1", "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = call(t, srv, http.MethodGet, "/appointments/patient/1", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, env = call(t, srv, http.MethodGet, "/audit-logs/appointment/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), dataField(t, env, "total"))
}

func TestBillEndpoints(t *testing.T) {
	srv := setupServer(t)

	code, _ := call(t, srv, http.MethodPost, "/patients", `{"name":"Ann","email":"ann@x.com"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, srv, http.MethodPost, "/bills", `{"patient":1,"amount":"100.00","status":"PENDING"}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "PENDING", dataField(t, env, "status"))

	code, env = call(t, srv, http.MethodPut, "/bills/1",
		`{"patient":1,"amount":"100.00","status":"PAID","payment_date":"2024-06-02T15:00:00"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "PAID", dataField(t, env, "status"))
	assert.Equal(t, "2024-06-02T15:00:00", dataField(t, env, "payment_date"))

	code, _ = call(t, srv, http.MethodPost, "/bills", `{"patient":1,"amount":"-5"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = call(t, srv, http.MethodGet, "/bills/patient/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), dataField(t, env, "total"))

	code, env = call(t, srv, http.MethodGet, "/bills/status/PAID", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), dataField(t, env, "total"))

	code, _ = call(t, srv, http.MethodGet, "/audit-logs/nurse/1", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCORSPreflight(t *testing.T) {
	srv := setupServer(t)

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/appointments/1", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	resp := preflight("http://ward.local")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://ward.local", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPut)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "X-Request-ID")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp = preflight("http://elsewhere.local")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
