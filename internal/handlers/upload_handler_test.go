package handlers

import (
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/services"
)

type uploadResponseBody struct {
	Message   string                  `json:"message"`
	Documents []models.UploadResponse `json:"documents"`
}

func newUploadApp(t *testing.T, docRepo *fakeDocumentRepo, maxFileSize int64) *fiber.App {
	storageService := services.NewStorageService(t.TempDir())
	require.NoError(t, storageService.EnsureUploadDir())

	handler := NewUploadHandler(docRepo, storageService, maxFileSize)

	app := fiber.New()
	app.Post("/api/v1/upload", handler.HandleUpload)

	return app
}

func TestHandleUploadResume(t *testing.T) {
	docRepo := &fakeDocumentRepo{}
	app := newUploadApp(t, docRepo, 10485760)

	req := multipartRequest(t, "/api/v1/upload", nil,
		formFile{field: "resume", name: "candidate.pdf", content: []byte("%PDF-1.4 resume")},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body uploadResponseBody
	decodeBody(t, resp, &body)

	require.Len(t, body.Documents, 1)
	assert.Equal(t, "resume", body.Documents[0].Kind)
	assert.Equal(t, "candidate.pdf", body.Documents[0].OriginalName)

	require.Len(t, docRepo.docs, 1)
	for _, doc := range docRepo.docs {
		assert.Equal(t, models.KindResume, doc.Kind)

		saved, err := os.ReadFile(doc.FilePath)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 resume"), saved)
	}
}

func TestHandleUploadBothDocuments(t *testing.T) {
	docRepo := &fakeDocumentRepo{}
	app := newUploadApp(t, docRepo, 10485760)

	req := multipartRequest(t, "/api/v1/upload", nil,
		formFile{field: "resume", name: "candidate.pdf", content: []byte("%PDF-1.4 resume")},
		formFile{field: "job_description", name: "role.pdf", content: []byte("%PDF-1.4 job")},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body uploadResponseBody
	decodeBody(t, resp, &body)

	require.Len(t, body.Documents, 2)
	kinds := []string{body.Documents[0].Kind, body.Documents[1].Kind}
	assert.ElementsMatch(t, []string{"resume", "job_description"}, kinds)
	assert.Len(t, docRepo.docs, 2)
}

func TestHandleUploadNoFiles(t *testing.T) {
	app := newUploadApp(t, &fakeDocumentRepo{}, 10485760)

	req := multipartRequest(t, "/api/v1/upload", map[string]string{"note": "nothing attached"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadUnknownFieldIgnored(t *testing.T) {
	docRepo := &fakeDocumentRepo{}
	app := newUploadApp(t, docRepo, 10485760)

	req := multipartRequest(t, "/api/v1/upload", nil,
		formFile{field: "photo", name: "selfie.jpg", content: []byte("jpeg bytes")},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, docRepo.docs)
}

func TestHandleUploadFileTooLarge(t *testing.T) {
	app := newUploadApp(t, &fakeDocumentRepo{}, 8)

	req := multipartRequest(t, "/api/v1/upload", nil,
		formFile{field: "resume", name: "candidate.pdf", content: []byte("definitely more than eight bytes")},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleUploadWrongExtension(t *testing.T) {
	docRepo := &fakeDocumentRepo{}
	app := newUploadApp(t, docRepo, 10485760)

	req := multipartRequest(t, "/api/v1/upload", nil,
		formFile{field: "resume", name: "candidate.txt", content: []byte("plain text resume")},
	)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, docRepo.docs)
}
