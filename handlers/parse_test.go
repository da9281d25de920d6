package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"resumematch/parsers"
)

const sampleResumeText = `Jane Smith
jane.smith@example.com | (415) 555-0199 | San Francisco, CA

EXPERIENCE
Software Engineer | Acme Corp | Jan 2020 - Present
- Built data pipelines in Go

EDUCATION
Bachelor of Science in Computer Science, Stanford University, 2015 - 2019

SKILLS
Go, Python, PostgreSQL, Docker
`

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, _ := http.NewRequest("POST", "/api/resume/parse", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestParseResume_TextUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/resume/parse", ParseResume(nil, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "jane.txt", sampleResumeText))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID     string               `json:"id"`
			Resume parsers.ParsedResume `json:"resume"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "Jane Smith", resp.Data.Resume.Contact.Name)
	assert.Equal(t, "jane.smith@example.com", resp.Data.Resume.Contact.Email)
	assert.NotEmpty(t, resp.Data.Resume.Experience)
	assert.NotEmpty(t, resp.Data.Resume.Skills)
}

func TestParseResume_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/resume/parse", ParseResume(nil, nil))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/resume/parse", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseResume_UnsupportedExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/resume/parse", ParseResume(nil, nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "resume.exe", "not a resume"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unsupported file type")
}
