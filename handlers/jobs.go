package handlers

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"resumematch/models"
	"resumematch/parsers"
	"resumematch/services"
	"resumematch/utils"
)

type ScoreJobsRequest struct {
	Jobs   []services.JobListing `json:"jobs" binding:"required"`
	Skills []string              `json:"skills"`
}

type ScoredJob struct {
	Job   services.JobListing `json:"job"`
	Score services.JobScore   `json:"score"`
}

// ScoreJobs ranks the submitted job listings against the caller's
// application preferences and skills. Skills default to the latest
// parsed resume when the request omits them.
func ScoreJobs(prefs *models.ApplicationPreferencesModel, resumes *models.ResumeModel) gin.HandlerFunc {
	scorer := services.NewJobScorer()

	return func(c *gin.Context) {
		var req ScoreJobsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request data", err)
			return
		}
		if len(req.Jobs) == 0 {
			utils.BadRequestError(c, "No jobs to score", nil)
			return
		}

		userID := c.GetInt("user_id")

		var userPrefs *models.ApplicationPreferences
		if prefs != nil && userID != 0 {
			if p, err := prefs.GetByUserID(userID); err == nil {
				userPrefs = p
			}
		}

		skills := req.Skills
		if len(skills) == 0 && resumes != nil && userID != 0 {
			skills = latestResumeSkills(resumes, userID)
		}

		scored := make([]ScoredJob, 0, len(req.Jobs))
		for _, job := range req.Jobs {
			scored = append(scored, ScoredJob{
				Job:   job,
				Score: scorer.Score(job, userPrefs, skills),
			})
		}

		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Score.Total > scored[j].Score.Total
		})

		utils.SuccessResponse(c, http.StatusOK, "Jobs scored", scored)
	}
}

func latestResumeSkills(resumes *models.ResumeModel, userID int) []string {
	resume, err := resumes.GetLatestByUserID(userID)
	if err != nil {
		return nil
	}

	var parsed parsers.ParsedResume
	if err := json.Unmarshal(resume.Parsed, &parsed); err != nil {
		return nil
	}
	return parsed.Skills
}

// GetPreferences returns the authenticated user's application preferences.
func GetPreferences(prefs *models.ApplicationPreferencesModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if prefs == nil {
			utils.InternalServerError(c, "Preference storage not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		p, err := prefs.GetByUserID(userID)
		if err != nil {
			utils.NotFoundError(c, "No preferences found")
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Preferences retrieved", p)
	}
}

// UpdatePreferences creates or replaces the authenticated user's
// application preferences.
func UpdatePreferences(prefs *models.ApplicationPreferencesModel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if prefs == nil {
			utils.InternalServerError(c, "Preference storage not configured", nil)
			return
		}

		userID := c.GetInt("user_id")
		if userID == 0 {
			utils.UnauthorizedError(c, "User not authenticated")
			return
		}

		var req models.ApplicationPreferences
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request data", err)
			return
		}
		req.UserID = userID

		if req.SalaryMin > req.SalaryMax && req.SalaryMax != 0 {
			utils.BadRequestError(c, "salary_min cannot exceed salary_max", nil)
			return
		}

		if err := prefs.Upsert(&req); err != nil {
			utils.InternalServerError(c, "Failed to save preferences", err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Preferences saved", req)
	}
}
