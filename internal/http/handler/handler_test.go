package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeapi/internal/model"
	"resumeapi/internal/service"
	serviceMocks "resumeapi/internal/service/mocks"
)

// multipartBody builds a multipart request body with the given files under
// one field name plus optional form values.
func multipartBody(t *testing.T, field string, files map[string][]byte, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for name, data := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func sampleReport() *model.AnalysisReport {
	return &model.AnalysisReport{
		AnalysisDate: time.Now().UTC(),
		FileInfo:     model.FileInfo{Filename: "resume.txt", FileType: "txt"},
		ATSScore:     model.ATSScore{Score: 75, MaxScore: 100, Percentage: 75.0, Feedback: []string{}},
		Keywords: model.KeywordReport{
			ResumeKeywords:  []string{"python"},
			JobKeywords:     []string{},
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
		},
		Suggestions: []model.Suggestion{},
		WordCount:   320,
	}
}

func TestHealthCheck(t *testing.T) {
	app := fiber.New()
	app.Get("/health", HealthCheck())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Resume Analyzer API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestAnalyzeResume(t *testing.T) {
	mockSvc := new(serviceMocks.MockAnalysisService)
	app := fiber.New()
	app.Post("/analyze", AnalyzeResume(mockSvc))

	t.Run("success", func(t *testing.T) {
		report := sampleReport()
		mockSvc.On("Analyze", mock.Anything, mock.MatchedBy(func(up service.Upload) bool {
			return up.Filename == "resume.txt" && string(up.Data) == "experienced engineer"
		}), "golang backend").Return(report, nil).Once()

		body, ct := multipartBody(t, "file",
			map[string][]byte{"resume.txt": []byte("experienced engineer")},
			map[string]string{"job_description": "golang backend"})

		req := httptest.NewRequest(http.MethodPost, "/analyze", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got model.AnalysisReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "resume.txt", got.FileInfo.Filename)
		assert.Equal(t, 75, got.ATSScore.Score)

		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file field", func(t *testing.T) {
		body, ct := multipartBody(t, "file", nil, map[string]string{"job_description": "x"})

		req := httptest.NewRequest(http.MethodPost, "/analyze", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var got map[string]string
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "file is required", got["error"])
	})

	t.Run("extraction failure is a structured 200", func(t *testing.T) {
		mockSvc.On("Analyze", mock.Anything, mock.Anything, "").
			Return(nil, service.ErrNoText).Once()

		body, ct := multipartBody(t, "file",
			map[string][]byte{"broken.pdf": {0x25, 0x50}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/analyze", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got map[string]string
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, service.ErrNoText.Error(), got["error"])

		mockSvc.AssertExpectations(t)
	})

	t.Run("unexpected fault", func(t *testing.T) {
		mockSvc.On("Analyze", mock.Anything, mock.Anything, "").
			Return(nil, assert.AnError).Once()

		body, ct := multipartBody(t, "file",
			map[string][]byte{"resume.txt": []byte("text")}, nil)

		req := httptest.NewRequest(http.MethodPost, "/analyze", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var got map[string]string
		json.NewDecoder(resp.Body).Decode(&got)
		assert.NotEmpty(t, got["error"])

		mockSvc.AssertExpectations(t)
	})
}

func TestAnalyzeBulk(t *testing.T) {
	mockSvc := new(serviceMocks.MockAnalysisService)
	app := fiber.New()
	app.Post("/analyze/bulk", AnalyzeBulk(mockSvc))

	t.Run("mixed results keep input order", func(t *testing.T) {
		idx := 0
		report := sampleReport()
		report.FileIndex = &idx
		items := []model.BulkItem{
			{Report: report},
			{Err: &model.BulkError{FileIndex: 1, Filename: "bad.pdf", Error: service.ErrNoText.Error()}},
		}

		mockSvc.On("AnalyzeBatch", mock.Anything, mock.MatchedBy(func(ups []service.Upload) bool {
			return len(ups) == 2 && ups[0].Filename == "a.txt" && ups[1].Filename == "bad.pdf"
		}), "").Return(items).Once()

		body := new(bytes.Buffer)
		w := multipart.NewWriter(body)
		for _, name := range []string{"a.txt", "bad.pdf"} {
			part, err := w.CreateFormFile("files", name)
			require.NoError(t, err)
			part.Write([]byte("content"))
		}
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got struct {
			Results    []json.RawMessage `json:"results"`
			TotalFiles int               `json:"total_files"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, 2, got.TotalFiles)
		require.Len(t, got.Results, 2)

		var first model.AnalysisReport
		require.NoError(t, json.Unmarshal(got.Results[0], &first))
		require.NotNil(t, first.FileIndex)
		assert.Equal(t, 0, *first.FileIndex)

		var second model.BulkError
		require.NoError(t, json.Unmarshal(got.Results[1], &second))
		assert.Equal(t, 1, second.FileIndex)
		assert.Equal(t, "bad.pdf", second.Filename)

		mockSvc.AssertExpectations(t)
	})

	t.Run("no files", func(t *testing.T) {
		body, ct := multipartBody(t, "files", nil, map[string]string{"job_description": "x"})

		req := httptest.NewRequest(http.MethodPost, "/analyze/bulk", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var got map[string]string
		json.NewDecoder(resp.Body).Decode(&got)
		assert.Equal(t, "files are required", got["error"])
	})
}
