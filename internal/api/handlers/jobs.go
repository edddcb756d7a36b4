package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobboard-utils/internal/store"
	"jobboard-utils/pkg/models"
	"jobboard-utils/pkg/utils"
)

var validate = validator.New()

// ListJobsHandler serves the published job list to the browsing UI
func ListJobsHandler(jobStore *store.JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ListJobsRequest
		if err := c.Bind(&req); err != nil {
			return errorJSON(c, "invalid_request", utils.NewBadRequestError("Invalid query parameters"))
		}

		if err := validate.Struct(&req); err != nil {
			return errorJSON(c, "validation_failed", utils.NewValidationError(err.Error()))
		}

		jobs, publishedAt := jobStore.Snapshot()
		jobs = filterJobs(jobs, req)

		return c.JSON(http.StatusOK, models.JobListResponse{
			Jobs:        jobs,
			Total:       len(jobs),
			PublishedAt: publishedAt,
		})
	}
}

// GetJobHandler serves a single published job by ID
func GetJobHandler(jobStore *store.JobStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		job, ok := jobStore.Get(c.Param("id"))
		if !ok {
			return errorJSON(c, "job_not_found", utils.NewNotFoundError("No published job with that ID"))
		}

		return c.JSON(http.StatusOK, job)
	}
}

// filterJobs applies the optional listing filters, preserving source order
func filterJobs(jobs []models.Job, req models.ListJobsRequest) []models.Job {
	if req.Type == "" && req.Company == "" && req.Location == "" {
		return jobs
	}

	filtered := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if req.Type != "" && job.Type != req.Type {
			continue
		}
		if req.Company != "" && !strings.EqualFold(job.Company, req.Company) {
			continue
		}
		if req.Location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(req.Location)) {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}
