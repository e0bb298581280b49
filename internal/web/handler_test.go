package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schedule-bot/internal/models"
	"schedule-bot/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockScheduleService struct {
	mock.Mock
}

func (m *MockScheduleService) Resolve(q service.Query, group models.Group) (models.LookupKey, error) {
	args := m.Called(q, group)
	return args.Get(0).(models.LookupKey), args.Error(1)
}

func (m *MockScheduleService) FindSubjects(ctx context.Context, key models.LookupKey) ([]models.Subject, error) {
	args := m.Called(ctx, key)
	subjects, _ := args.Get(0).([]models.Subject)
	return subjects, args.Error(1)
}

func (m *MockScheduleService) SubjectsForChat(ctx context.Context, chatID int64, q service.Query) (*service.Answer, error) {
	args := m.Called(ctx, chatID, q)
	answer, _ := args.Get(0).(*service.Answer)
	return answer, args.Error(1)
}

func (m *MockScheduleService) SubjectsForGroup(ctx context.Context, group models.Group, q service.Query) (*service.Answer, error) {
	args := m.Called(ctx, group, q)
	answer, _ := args.Get(0).(*service.Answer)
	return answer, args.Error(1)
}

var fixedNow = time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC)

func newTestHandler(svc service.ScheduleService) *Handler {
	h := NewHandler(svc, zap.NewNop())
	h.now = func() time.Time { return fixedNow }
	return h
}

func TestSubjectsAPI_OK(t *testing.T) {
	svc := new(MockScheduleService)
	svc.On("SubjectsForGroup", mock.Anything, models.K25, service.Query{Now: fixedNow, Slot: "II"}).
		Return(&service.Answer{
			Key:      models.LookupKey{Weekday: models.Wed, Slot: models.SlotII, Parity: models.Odd, Group: models.K25},
			Subjects: []models.Subject{{ID: 1, Title: "Math", Group: models.K25}},
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/subjects?group=K-25&slot=II", nil)
	newTestHandler(svc).Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp subjectsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Wed", resp.Weekday)
	assert.Equal(t, "II", resp.Slot)
	assert.Equal(t, "Odd", resp.Parity)
	assert.Equal(t, "K-25", resp.Group)
	require.Len(t, resp.Subjects, 1)
	assert.Equal(t, "Math", resp.Subjects[0].Title)
	svc.AssertExpectations(t)
}

func TestSubjectsAPI_EmptyIsArray(t *testing.T) {
	svc := new(MockScheduleService)
	svc.On("SubjectsForGroup", mock.Anything, models.K25, mock.Anything).
		Return(&service.Answer{Key: models.LookupKey{Weekday: models.Wed, Slot: models.SlotIV, Parity: models.Odd, Group: models.K25}}, nil)

	rec := httptest.NewRecorder()
	newTestHandler(svc).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects?group=K-25", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subjects":[]`)
}

func TestSubjectsAPI_BadInput(t *testing.T) {
	svc := new(MockScheduleService)
	svc.On("SubjectsForGroup", mock.Anything, models.K25, mock.Anything).
		Return(nil, &service.InputError{Field: "slot", Value: "9"})

	h := newTestHandler(svc).Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects?group=K-25&slot=9", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid slot: 9."}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects?group=X", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid group: X."}`, rec.Body.String())
}

func TestSubjectsAPI_StorageError(t *testing.T) {
	svc := new(MockScheduleService)
	svc.On("SubjectsForGroup", mock.Anything, models.K25, mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	newTestHandler(svc).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/subjects?group=K-25", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(new(MockScheduleService)).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
