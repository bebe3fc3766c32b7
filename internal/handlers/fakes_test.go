package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
)

type fakeDocumentRepo struct {
	docs      map[uuid.UUID]*models.Document
	createErr error
}

func (f *fakeDocumentRepo) Create(document *models.Document) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.docs == nil {
		f.docs = map[uuid.UUID]*models.Document{}
	}
	f.docs[document.ID] = document
	return nil
}

func (f *fakeDocumentRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document not found")
	}
	return doc, nil
}

func (f *fakeDocumentRepo) FindByIDs(ids []uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

type fakeMatchRepo struct {
	matches   map[uuid.UUID]*models.MatchEvaluation
	createErr error
}

func (f *fakeMatchRepo) Create(match *models.MatchEvaluation) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.matches == nil {
		f.matches = map[uuid.UUID]*models.MatchEvaluation{}
	}
	f.matches[match.ID] = match
	return nil
}

func (f *fakeMatchRepo) FindByID(id uuid.UUID) (*models.MatchEvaluation, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, fmt.Errorf("match evaluation not found")
	}
	return match, nil
}

func (f *fakeMatchRepo) UpdateStatus(id uuid.UUID, status models.MatchStatus) error {
	return nil
}

func (f *fakeMatchRepo) UpdateResult(id uuid.UUID, result *repositories.MatchUpdateData) error {
	return nil
}

func (f *fakeMatchRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	return nil
}

func (f *fakeMatchRepo) FindPendingJobs(limit int) ([]models.MatchEvaluation, error) {
	return nil, nil
}

type fakeAssessmentRepo struct {
	assessments []*models.AttritionAssessment
	createErr   error
}

func (f *fakeAssessmentRepo) Create(assessment *models.AttritionAssessment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.assessments = append(f.assessments, assessment)
	return nil
}

func (f *fakeAssessmentRepo) ListByEmployee(employeeID string) ([]models.AttritionAssessment, error) {
	var result []models.AttritionAssessment
	for _, assessment := range f.assessments {
		if assessment.EmployeeID == employeeID {
			result = append(result, *assessment)
		}
	}
	return result, nil
}

type fakeCheckInRepo struct {
	checkIns  []*models.AttendanceCheckIn
	createErr error
}

func (f *fakeCheckInRepo) Create(checkIn *models.AttendanceCheckIn) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.checkIns = append(f.checkIns, checkIn)
	return nil
}

func (f *fakeCheckInRepo) ListByEmployee(employeeID string) ([]models.AttendanceCheckIn, error) {
	var result []models.AttendanceCheckIn
	for _, checkIn := range f.checkIns {
		if checkIn.EmployeeID == employeeID {
			result = append(result, *checkIn)
		}
	}
	return result, nil
}

type fakeWorker struct {
	enqueued []uuid.UUID
}

func (f *fakeWorker) Start(ctx context.Context) {}

func (f *fakeWorker) Stop() {}

func (f *fakeWorker) EnqueueJob(matchID uuid.UUID) {
	f.enqueued = append(f.enqueued, matchID)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFile struct {
	field   string
	name    string
	content []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for field, value := range fields {
		require.NoError(t, writer.WriteField(field, value))
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.field, file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
