package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumematch/models"
	"resumematch/parsers"
	"resumematch/services"
	"resumematch/utils"
)

const maxUploadBytes = 10 << 20 // 10 MB

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// ParseResume accepts a multipart "resume" file, runs the parser and
// returns the structured result. When a resume model is available the
// parsed output is persisted for the authenticated user, and when an
// S3 service is available the original file is archived.
func ParseResume(resumes *models.ResumeModel, store *services.S3Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("resume")
		if err != nil {
			utils.BadRequestError(c, "Missing resume file", err)
			return
		}

		if fileHeader.Size > maxUploadBytes {
			utils.BadRequestError(c, "File too large", fmt.Errorf("limit is %d bytes", maxUploadBytes))
			return
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !supportedExtensions[ext] {
			utils.BadRequestError(c, "Unsupported file type", fmt.Errorf("extension %q not supported", ext))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.InternalServerError(c, "Failed to open uploaded file", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			utils.InternalServerError(c, "Failed to read uploaded file", err)
			return
		}

		parser := parsers.NewResumeParser()
		parsed, err := parser.ParseFile(fileHeader.Filename, data)
		if err != nil {
			utils.BadRequestError(c, "Failed to parse resume", err)
			return
		}

		resumeID := uuid.NewString()

		if store != nil {
			key := storageKey(resumeID, fileHeader.Filename)
			if _, err := store.UploadFile(key, data, fileHeader.Header.Get("Content-Type")); err != nil {
				utils.LogWarn("resume archive upload failed", err.Error())
			}
		}

		userID := c.GetInt("user_id")
		if resumes != nil && userID != 0 {
			raw, err := parsed.ToJSON()
			if err == nil {
				if err := resumes.Save(resumeID, userID, fileHeader.Filename, raw, parsed.Metadata.Confidence); err != nil {
					utils.LogError("resume persist failed", err)
				}
			}
		}

		utils.SuccessResponse(c, http.StatusOK, "Resume parsed", gin.H{
			"id":     resumeID,
			"resume": parsed,
		})
	}
}

// GetLatestResume returns the most recently parsed resume for the
// authenticated user.
func GetLatestResume(resumes *models.ResumeModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resumes == nil {
			utils.InternalServerError(c, "Resume storage not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		resume, err := resumes.GetLatestByUserID(userID)
		if err != nil {
			utils.NotFoundError(c, "No parsed resume found")
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Resume retrieved", resume)
	}
}

// storageKey derives the S3 object key for a stored resume. Upload and
// download must agree on it.
func storageKey(resumeID, filename string) string {
	return fmt.Sprintf("resumes/%s%s", resumeID, strings.ToLower(filepath.Ext(filename)))
}

// DownloadResume returns a time-limited URL for the archived original file.
func DownloadResume(resumes *models.ResumeModel, store *services.S3Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resumes == nil || store == nil {
			utils.InternalServerError(c, "Resume archive not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			utils.BadRequestError(c, "Invalid resume id", err)
			return
		}

		resume, err := resumes.GetByID(id.String(), userID)
		if err != nil {
			utils.NotFoundError(c, "Resume not found")
			return
		}

		url, err := store.GeneratePresignedURL(storageKey(resume.ID, resume.Filename))
		if err != nil {
			utils.InternalServerError(c, "Failed to generate download URL", err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Download URL generated", gin.H{"url": url})
	}
}

// ReparseResume fetches the archived original from S3 and runs it through
// the parser again. Useful after extraction heuristics change.
func ReparseResume(resumes *models.ResumeModel, store *services.S3Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resumes == nil || store == nil {
			utils.InternalServerError(c, "Resume archive not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			utils.BadRequestError(c, "Invalid resume id", err)
			return
		}

		resume, err := resumes.GetByID(id.String(), userID)
		if err != nil {
			utils.NotFoundError(c, "Resume not found")
			return
		}

		data, err := store.DownloadFile(storageKey(resume.ID, resume.Filename))
		if err != nil {
			utils.InternalServerError(c, "Failed to fetch archived file", err)
			return
		}

		parsed, err := parsers.NewResumeParser().ParseFile(resume.Filename, data)
		if err != nil {
			utils.InternalServerError(c, "Failed to parse resume", err)
			return
		}

		if raw, err := parsed.ToJSON(); err == nil {
			if err := resumes.UpdateParsed(resume.ID, userID, raw, parsed.Metadata.Confidence); err != nil {
				utils.LogError("resume persist failed", err)
			}
		}

		utils.SuccessResponse(c, http.StatusOK, "Resume reparsed", gin.H{
			"id":     resume.ID,
			"resume": parsed,
		})
	}
}

// DeleteResume removes a stored resume and its archived file.
func DeleteResume(resumes *models.ResumeModel, store *services.S3Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resumes == nil {
			utils.InternalServerError(c, "Resume storage not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			utils.BadRequestError(c, "Invalid resume id", err)
			return
		}

		resume, err := resumes.GetByID(id.String(), userID)
		if err != nil {
			utils.NotFoundError(c, "Resume not found")
			return
		}

		if err := resumes.Delete(resume.ID, userID); err != nil {
			utils.InternalServerError(c, "Failed to delete resume", err)
			return
		}

		if store != nil {
			if err := store.DeleteFile(storageKey(resume.ID, resume.Filename)); err != nil {
				utils.LogWarn("archived resume delete failed", err.Error())
			}
		}

		utils.SuccessResponse(c, http.StatusOK, "Resume deleted", nil)
	}
}

// ListResumes returns all stored resumes for the authenticated user.
func ListResumes(resumes *models.ResumeModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if resumes == nil {
			utils.InternalServerError(c, "Resume storage not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		list, err := resumes.ListByUserID(userID)
		if err != nil {
			utils.InternalServerError(c, "Failed to list resumes", err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Resumes retrieved", list)
	}
}
