// Package httpapi exposes the application over a JSON API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/app"
	"github.com/muhammadolammi/aithera/internal/interview"
	"github.com/muhammadolammi/aithera/internal/models"
	"github.com/muhammadolammi/aithera/internal/oracle"
	"github.com/muhammadolammi/aithera/internal/recruiter"
	"github.com/muhammadolammi/aithera/internal/resume"
	"github.com/muhammadolammi/aithera/internal/scenario"
	"github.com/muhammadolammi/aithera/internal/softskills"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps is everything the API serves from. Chat and Uploads are optional;
// their routes answer 503 when they are nil.
type Deps struct {
	Directory  *app.Directory
	Sessions   *app.Sessions
	Oracle     oracle.Oracle
	Labs       *softskills.Manager
	Library    *scenario.Library
	Interviews *interview.Store
	Chat       *recruiter.Chat
	Uploads    *resume.Uploader
	Log        *zap.Logger

	AllowOrigins []string
	Now          func() time.Time
}

type handler struct {
	dir        *app.Directory
	sessions   *app.Sessions
	oracle     oracle.Oracle
	labs       *softskills.Manager
	library    *scenario.Library
	interviews *interview.Store
	chat       *recruiter.Chat
	uploads    *resume.Uploader
	log        *zap.Logger
	now        func() time.Time
}

func NewRouter(d Deps) *gin.Engine {
	h := &handler{
		dir:        d.Directory,
		sessions:   d.Sessions,
		oracle:     d.Oracle,
		labs:       d.Labs,
		library:    d.Library,
		interviews: d.Interviews,
		chat:       d.Chat,
		uploads:    d.Uploads,
		log:        d.Log.Named("http"),
		now:        d.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}

	router := gin.New()
	router.Use(requestLogger(h.log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(d.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = d.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", tokenHeader, requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pub := router.Group("/api")
	pub.GET("/users", h.listUsers)
	pub.POST("/login", h.login)

	api := router.Group("/api", h.requireSession)
	{
		api.POST("/logout", h.logout)
		api.GET("/me", h.me)
		api.POST("/navigate", h.navigate)
		api.POST("/feedback", requireRole(models.RoleStudent), h.submitFeedback)
	}

	labs := api.Group("/soft-skills", requireRole(models.RoleStudent))
	{
		labs.GET("/catalogue", h.catalogue)
		labs.GET("/library", h.listLibrary)
		labs.GET("/library/:id", h.getLibraryScenario)
		labs.POST("/library/:id/start", h.startLibraryScenario)
		labs.POST("/start", h.startSimulation)
		labs.GET("/state", h.simulationState)
		labs.POST("/choose", h.choose)
		labs.POST("/end", h.endSimulation)
	}

	features := api.Group("/features")
	{
		features.POST("/roadmap", h.generateRoadmap)
		features.POST("/roadmap/milestones/:id/toggle", h.toggleMilestone)
		features.POST("/jobs", h.jobListings)
		features.POST("/projects", h.projectSuggestions)
		features.POST("/career", h.careerRoleDetails)
		features.POST("/industry", h.industryInsights)
		features.POST("/career-guide", h.careerGuide)
		features.POST("/resume-analysis", h.resumeAnalysis)
		features.GET("/dashboard-suggestions", h.dashboardSuggestions)
		features.POST("/progress-report", h.progressReport)
		features.POST("/challenge", h.codingChallenge)
		features.POST("/challenge/evaluate", h.evaluateChallenge)
	}

	iv := api.Group("/interview", requireRole(models.RoleStudent))
	{
		iv.POST("/start", h.startInterview)
		iv.GET("", h.currentInterview)
		iv.POST("/advance", h.advanceInterview)
		iv.POST("/answer", h.answerQuestion)
		iv.POST("/code", h.submitCode)
		iv.DELETE("", h.abandonInterview)
		iv.GET("/mentors", h.listMentors)
		iv.POST("/mentors/book", h.bookMentor)
	}

	students := api.Group("/students")
	{
		students.GET("", requireRole(models.RoleTeacher, models.RoleAdmin), h.listStudents)
		students.POST("/select", requireRole(models.RoleTeacher, models.RoleAdmin), h.selectStudent)
		students.POST("/clear", h.clearStudent)
		students.GET("/:id", h.getStudent)
		students.GET("/:id/analytics", h.studentAnalytics)
		students.PUT("/:id/applications", h.setApplications)
		students.PUT("/:id/integrations", h.setIntegrations)
		students.PUT("/:id/resume", h.setResume)
		students.PUT("/:id/profile", h.setProfile)
	}

	admin := api.Group("/admin", requireRole(models.RoleAdmin))
	{
		admin.GET("/stats", h.stats)
		admin.GET("/teachers", h.listTeachers)
		admin.POST("/teachers", h.addTeacher)
		admin.POST("/teachers/:id/students", h.assignStudent)
		admin.GET("/feedback", h.listFeedback)
		admin.POST("/feedback/analysis", h.analyzeFeedback)
	}

	chat := api.Group("/recruiter", requireRole(models.RoleStudent), h.requireChat)
	{
		chat.POST("/start", h.startChat)
		chat.GET("/messages", h.chatHistory)
		chat.POST("/messages", h.sendChat)
		chat.DELETE("", h.endChat)
	}

	uploads := api.Group("/resume/uploads", h.requireUploads)
	{
		uploads.POST("", h.uploadResumes)
		uploads.GET("", h.listUploads)
		uploads.GET("/:id", h.uploadStatus)
	}

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) requireChat(c *gin.Context) {
	if h.chat == nil {
		abortWithError(c, errUnavailable)
		return
	}
	c.Next()
}

func (h *handler) requireUploads(c *gin.Context) {
	if h.uploads == nil {
		abortWithError(c, errUnavailable)
		return
	}
	c.Next()
}

// bind decodes the JSON body into req and aborts with 400 on failure.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: errBadRequest.Error() + ": " + err.Error()})
		return false
	}
	return true
}

// targetStudent resolves the student the session is acting on and checks access.
func (h *handler) targetStudent(c *gin.Context) (string, bool) {
	st := sessionState(c)
	id, err := st.TargetStudent()
	if err == nil {
		err = h.sessions.Authorize(st, id)
	}
	if err != nil {
		abortWithError(c, err)
		return "", false
	}
	return id, true
}

// pathStudent checks access to the student named in the URL.
func (h *handler) pathStudent(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := h.sessions.Authorize(sessionState(c), id); err != nil {
		abortWithError(c, err)
		return "", false
	}
	return id, true
}
