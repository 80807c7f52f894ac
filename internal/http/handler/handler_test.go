package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medref/internal/model"
	"medref/internal/service"
	serviceMocks "medref/internal/service/mocks"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterDoctor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDoctorService)
	app := fiber.New()
	app.Post("/api/doctors", RegisterDoctor(mockSvc))

	t.Run("created", func(t *testing.T) {
		in := model.Doctor{
			Name:        "Dr. Asha Rao",
			City:        "Delhi",
			Email:       "asha.rao@example.com",
			PhoneNumber: "9876543210",
			Speciality:  model.SpecialityOrthopaedic,
		}
		stored := in
		stored.ID = 7
		mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.Doctor")).
			Return(&stored, nil).Once()

		resp := postJSON(t, app, "/api/doctors", in)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var out model.Doctor
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Equal(t, int64(7), out.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, &model.ValidationError{Fields: []string{"name (min)"}}).Once()

		resp := postJSON(t, app, "/api/doctors", model.Doctor{Name: "Al"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Message, "name (min)")
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/doctors", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, errors.New("db fail")).Once()

		resp := postJSON(t, app, "/api/doctors", model.Doctor{Name: "Dr. Valid Name"})

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDoctor(t *testing.T) {
	mockSvc := new(serviceMocks.MockDoctorService)
	app := fiber.New()
	app.Delete("/api/doctors/:id", DeleteDoctor(mockSvc))

	t.Run("no content even for absent id", func(t *testing.T) {
		mockSvc.On("Remove", mock.Anything, int64(99)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/doctors/99", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/doctors/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_ID", body.Error.Code)
	})
}

func TestRegisterPatient(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Post("/api/patients", RegisterPatient(mockSvc))

	t.Run("created", func(t *testing.T) {
		in := model.Patient{
			Name:        "Ravi Kumar",
			City:        "Noida",
			Email:       "ravi.kumar@example.com",
			PhoneNumber: "9123456780",
			Symptom:     model.SymptomEarPain,
		}
		stored := in
		stored.ID = 11
		mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.Patient")).
			Return(&stored, nil).Once()

		resp := postJSON(t, app, "/api/patients", in)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var out model.Patient
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Equal(t, int64(11), out.ID)
		assert.Equal(t, model.SymptomEarPain, out.Symptom)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, mock.Anything).
			Return(nil, &model.ValidationError{Fields: []string{"symptom (symptom)"}}).Once()

		resp := postJSON(t, app, "/api/patients", model.Patient{Symptom: "HEADACHE"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetPatient(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Get("/api/patients/:id", GetPatient(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(11)).
			Return(&model.Patient{ID: 11, Name: "Ravi Kumar"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/patients/11", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out model.Patient
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Equal(t, int64(11), out.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found is 404, not empty 200", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(404)).
			Return(nil, service.ErrPatientNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/patients/404", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "PATIENT_NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/patients/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeletePatient(t *testing.T) {
	mockSvc := new(serviceMocks.MockPatientService)
	app := fiber.New()
	app.Delete("/api/patients/:id", DeletePatient(mockSvc))

	mockSvc.On("Remove", mock.Anything, int64(11)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/patients/11", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestSuggestDoctors(t *testing.T) {
	mockSvc := new(serviceMocks.MockSuggestionService)
	app := fiber.New()
	app.Get("/api/suggestions/:patientId", SuggestDoctors(mockSvc))

	t.Run("returns the matching set", func(t *testing.T) {
		docs := []model.Doctor{
			{ID: 2, Name: "Dr. Asha Rao", City: "Delhi", Speciality: model.SpecialityOrthopaedic},
			{ID: 5, Name: "Dr. Nikhil Sen", City: "Delhi", Speciality: model.SpecialityOrthopaedic},
		}
		mockSvc.On("Suggest", mock.Anything, int64(1)).Return(docs, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/suggestions/1", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out []model.Doctor
		json.NewDecoder(resp.Body).Decode(&out)
		assert.Len(t, out, 2)
		assert.Equal(t, int64(2), out[0].ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("patient not found", func(t *testing.T) {
		mockSvc.On("Suggest", mock.Anything, int64(404)).
			Return(nil, service.ErrPatientNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/suggestions/404", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "PATIENT_NOT_FOUND", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unsupported region", func(t *testing.T) {
		mockSvc.On("Suggest", mock.Anything, int64(2)).
			Return(nil, service.ErrUnsupportedRegion).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/suggestions/2", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "UNSUPPORTED_REGION", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no doctor available", func(t *testing.T) {
		mockSvc.On("Suggest", mock.Anything, int64(3)).
			Return(nil, service.ErrNoDoctorAvailable).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/suggestions/3", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "NO_DOCTOR_AVAILABLE", body.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid patient id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/suggestions/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
