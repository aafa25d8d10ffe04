package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/muhammadolammi/aithera/internal/resume"
)

const maxUploadFiles = 5

// uploadResumes takes a multipart form with one or more "files" parts plus
// targetRole and jobDescription fields, and queues them for analysis.
func (h *handler) uploadResumes(c *gin.Context) {
	studentID, ok := h.targetStudent(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	headers := form.File["files"]
	if len(headers) > maxUploadFiles {
		abortWithError(c, fmt.Errorf("%w: at most %d files", errBadRequest, maxUploadFiles))
		return
	}

	sub := resume.Submission{
		StudentID:      studentID,
		TargetRole:     c.PostForm("targetRole"),
		JobDescription: c.PostForm("jobDescription"),
	}
	for _, fh := range headers {
		if fh.Size > resume.MaxFileSize {
			abortWithError(c, fmt.Errorf("%w: %s", resume.ErrFileTooLarge, fh.Filename))
			return
		}
		f, err := fh.Open()
		if err != nil {
			abortWithError(c, err)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, resume.MaxFileSize+1))
		f.Close()
		if err != nil {
			abortWithError(c, err)
			return
		}
		sub.Files = append(sub.Files, resume.File{Name: fh.Filename, Data: data})
	}

	job, err := h.uploads.Submit(c.Request.Context(), sub)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resume.JobStatus{
		ID:         job.ID,
		StudentID:  job.StudentID,
		Status:     job.Status,
		TargetRole: job.TargetRole,
	})
}

func (h *handler) listUploads(c *gin.Context) {
	studentID, ok := h.targetStudent(c)
	if !ok {
		return
	}
	jobs, err := h.uploads.Jobs(c.Request.Context(), studentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *handler) uploadStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: invalid job id", errBadRequest))
		return
	}
	st, err := h.uploads.Status(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.sessions.Authorize(sessionState(c), st.StudentID); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
