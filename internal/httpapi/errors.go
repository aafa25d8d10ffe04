package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/app"
	"github.com/muhammadolammi/aithera/internal/interview"
	"github.com/muhammadolammi/aithera/internal/oracle"
	"github.com/muhammadolammi/aithera/internal/recruiter"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/muhammadolammi/aithera/internal/scenario"
	"github.com/muhammadolammi/aithera/internal/softskills"
)

var (
	errBadRequest  = errors.New("invalid request body")
	errUnavailable = errors.New("feature is not configured on this server")
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Message string `json:"message"`
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrSessionNotFound):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, app.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrStudentNotFound),
		errors.Is(err, scenario.ErrScenarioNotFound),
		errors.Is(err, resume.ErrJobNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, oracle.ErrOracleUnavailable),
		errors.Is(err, oracle.ErrOracleResponse):
		return http.StatusBadGateway, oracle.UserMessage
	case errors.Is(err, interview.ErrNoQuestions):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, scenario.ErrInvalidScenario),
		errors.Is(err, scenario.ErrCorruptedScenario):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, softskills.ErrNoSimulation),
		errors.Is(err, scenario.ErrNotRunning),
		errors.Is(err, interview.ErrFinished),
		errors.Is(err, interview.ErrExpired),
		errors.Is(err, recruiter.ErrNoConversation):
		return http.StatusConflict, err.Error()
	case errors.Is(err, resume.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, errUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, errBadRequest),
		errors.Is(err, app.ErrInvalidRating),
		errors.Is(err, app.ErrInvalidName),
		errors.Is(err, app.ErrNoStudentSelected),
		errors.Is(err, softskills.ErrEmptyDescription),
		errors.Is(err, scenario.ErrUnknownChoice),
		errors.Is(err, interview.ErrInvalidType),
		errors.Is(err, interview.ErrCompanyRequired),
		errors.Is(err, interview.ErrMentorUnavailable),
		errors.Is(err, recruiter.ErrEmptyMessage),
		errors.Is(err, resume.ErrNoFiles),
		errors.Is(err, resume.ErrUnsupportedType):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// abortWithError records err for the request logger and writes the mapped response.
func abortWithError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, APIError{Message: msg})
}
