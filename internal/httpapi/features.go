package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/app"
	"github.com/muhammadolammi/aithera/internal/models"
)

type roadmapRequest struct {
	Role       string `json:"role" binding:"required"`
	Year       int    `json:"year" binding:"required,min=1,max=4"`
	SkillLevel string `json:"skillLevel" binding:"required"`
}

// generateRoadmap replaces the target student's roadmap with a fresh one.
func (h *handler) generateRoadmap(c *gin.Context) {
	id, ok := h.targetStudent(c)
	if !ok {
		return
	}
	var req roadmapRequest
	if !bind(c, &req) {
		return
	}
	r, err := h.oracle.GenerateRoadmap(c.Request.Context(), req.Role, req.Year, req.SkillLevel)
	if err != nil {
		abortWithError(c, err)
		return
	}
	s, err := h.dir.SetRoadmap(id, r)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handler) toggleMilestone(c *gin.Context) {
	id, ok := h.targetStudent(c)
	if !ok {
		return
	}
	s, err := h.dir.ToggleMilestone(id, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *handler) jobListings(c *gin.Context) {
	var req roleRequest
	if !bind(c, &req) {
		return
	}
	jobs, err := h.oracle.GenerateJobListings(c.Request.Context(), req.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

type projectsRequest struct {
	Role   string `json:"role" binding:"required"`
	Skills string `json:"skills"`
}

func (h *handler) projectSuggestions(c *gin.Context) {
	var req projectsRequest
	if !bind(c, &req) {
		return
	}
	ps, err := h.oracle.SuggestProjects(c.Request.Context(), req.Role, req.Skills)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

func (h *handler) careerRoleDetails(c *gin.Context) {
	var req roleRequest
	if !bind(c, &req) {
		return
	}
	d, err := h.oracle.CareerRoleDetails(c.Request.Context(), req.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type topicRequest struct {
	Topic string `json:"topic" binding:"required"`
}

func (h *handler) industryInsights(c *gin.Context) {
	var req topicRequest
	if !bind(c, &req) {
		return
	}
	ins, err := h.oracle.IndustryInsights(c.Request.Context(), req.Topic)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ins)
}

func (h *handler) careerGuide(c *gin.Context) {
	var req topicRequest
	if !bind(c, &req) {
		return
	}
	g, err := h.oracle.CareerGuide(c.Request.Context(), req.Topic)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

type resumeAnalysisRequest struct {
	Role           string `json:"role" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
}

// resumeAnalysis scores the target student's stored resume against a job description.
func (h *handler) resumeAnalysis(c *gin.Context) {
	id, ok := h.targetStudent(c)
	if !ok {
		return
	}
	var req resumeAnalysisRequest
	if !bind(c, &req) {
		return
	}
	s, err := h.dir.Student(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	a, err := h.oracle.AnalyzeResume(c.Request.Context(), s.ResumeData, req.JobDescription, req.Role)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// dashboardSuggestions skips the oracle until the student has practised something.
func (h *handler) dashboardSuggestions(c *gin.Context) {
	id, ok := h.targetStudent(c)
	if !ok {
		return
	}
	s, err := h.dir.Student(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	summary, ok := app.DashboardSummary(s)
	if !ok {
		c.JSON(http.StatusOK, []models.DashboardSuggestion{})
		return
	}
	sug, err := h.oracle.DashboardSuggestions(c.Request.Context(), summary)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sug)
}

type progressRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

func (h *handler) progressReport(c *gin.Context) {
	id, ok := h.targetStudent(c)
	if !ok {
		return
	}
	var req progressRequest
	if !bind(c, &req) {
		return
	}
	from, err1 := time.Parse(time.DateOnly, req.From)
	to, err2 := time.Parse(time.DateOnly, req.To)
	if err1 != nil || err2 != nil || to.Before(from) {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "please select a valid date range"})
		return
	}
	s, err := h.dir.Student(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	// The range covers the whole of the last day.
	to = to.Add(24*time.Hour - time.Nanosecond)
	r, err := h.oracle.ProgressReport(c.Request.Context(), app.ProgressSummary(s, from, to))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

type challengeRequest struct {
	Role       string `json:"role" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required,oneof=Beginner Intermediate Advanced"`
}

func (h *handler) codingChallenge(c *gin.Context) {
	var req challengeRequest
	if !bind(c, &req) {
		return
	}
	ch, err := h.oracle.GenerateCodingChallenge(c.Request.Context(), req.Role, req.Difficulty)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

type evaluateRequest struct {
	Challenge  models.CodingChallenge `json:"challenge"`
	Difficulty string                 `json:"difficulty" binding:"required"`
	Solution   string                 `json:"solution" binding:"required"`
	Language   string                 `json:"language" binding:"required"`
}

// evaluateChallenge grades a solution and files it in the target student's history.
func (h *handler) evaluateChallenge(c *gin.Context) {
	id, ok := h.targetStudent(c)
	if !ok {
		return
	}
	var req evaluateRequest
	if !bind(c, &req) {
		return
	}
	fb, err := h.oracle.EvaluateCodeSolution(c.Request.Context(), req.Challenge, req.Solution, req.Language)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := h.dir.AddChallenge(id, req.Challenge, req.Difficulty, req.Solution, *fb); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}
