package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/app"
	"github.com/muhammadolammi/aithera/internal/models"
	"go.uber.org/zap"
)

type loginRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type sessionResponse struct {
	app.State
	Views   []app.View `json:"views"`
	Message string     `json:"message,omitempty"`
}

func newSessionResponse(st app.State) sessionResponse {
	return sessionResponse{State: st, Views: app.Views(st.User.Role)}
}

func (h *handler) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.dir.Users())
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bind(c, &req) {
		return
	}
	st, err := h.sessions.Login(req.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.log.Info("User logged in", zap.String("user_id", st.User.ID), zap.String("role", string(st.User.Role)))
	resp := newSessionResponse(st)
	resp.Message = st.Greeting()
	c.JSON(http.StatusOK, resp)
}

// logout tears down everything the user had open once their last session
// is gone. Simulations, interviews and chats are shared by a user's sessions.
func (h *handler) logout(c *gin.Context) {
	st, err := h.sessions.Logout(sessionState(c).Token)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if h.sessions.Active(st.User.ID) > 0 {
		c.Status(http.StatusNoContent)
		return
	}
	h.labs.Drop(st.User.ID)
	h.interviews.Delete(st.User.ID)
	if h.chat != nil {
		h.chat.End(c.Request.Context(), st.User.ID)
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, newSessionResponse(sessionState(c)))
}

type navigateRequest struct {
	View app.View `json:"view" binding:"required"`
}

func (h *handler) navigate(c *gin.Context) {
	var req navigateRequest
	if !bind(c, &req) {
		return
	}
	st, err := h.sessions.Navigate(sessionState(c).Token, req.View)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(st))
}

type feedbackRequest struct {
	Feature string `json:"feature" binding:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *handler) submitFeedback(c *gin.Context) {
	var req feedbackRequest
	if !bind(c, &req) {
		return
	}
	fb, err := h.dir.SubmitFeedback(sessionState(c).User.ID, req.Feature, req.Rating, req.Comment)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// listStudents is the teacher's roster or, for the admin, every student.
func (h *handler) listStudents(c *gin.Context) {
	st := sessionState(c)
	if st.User.Role == models.RoleAdmin {
		c.JSON(http.StatusOK, h.dir.Students())
		return
	}
	roster, err := h.dir.Roster(st.User.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

type selectStudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
}

func (h *handler) selectStudent(c *gin.Context) {
	var req selectStudentRequest
	if !bind(c, &req) {
		return
	}
	st, err := h.sessions.SelectStudent(sessionState(c).Token, req.StudentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(st))
}

func (h *handler) clearStudent(c *gin.Context) {
	st, err := h.sessions.ClearStudent(sessionState(c).Token)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(st))
}

func (h *handler) getStudent(c *gin.Context) {
	id, ok := h.pathStudent(c)
	if !ok {
		return
	}
	s, err := h.dir.Student(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handler) studentAnalytics(c *gin.Context) {
	id, ok := h.pathStudent(c)
	if !ok {
		return
	}
	s, err := h.dir.Student(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.Analyze(s))
}

// updateStudent binds a body of type T and stores it with set.
func updateStudent[T any](h *handler, c *gin.Context, set func(id string, v T) (models.Student, error)) {
	id, ok := h.pathStudent(c)
	if !ok {
		return
	}
	var v T
	if !bind(c, &v) {
		return
	}
	s, err := set(id, v)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type applicationsRequest struct {
	Applications []models.Application `json:"applications" binding:"dive"`
}

func (h *handler) setApplications(c *gin.Context) {
	updateStudent(h, c, func(id string, req applicationsRequest) (models.Student, error) {
		return h.dir.SetApplications(id, req.Applications)
	})
}

func (h *handler) setIntegrations(c *gin.Context) {
	updateStudent(h, c, h.dir.SetIntegrations)
}

func (h *handler) setResume(c *gin.Context) {
	updateStudent(h, c, h.dir.SetResume)
}

func (h *handler) setProfile(c *gin.Context) {
	updateStudent(h, c, h.dir.SetProfile)
}

func (h *handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dir.Stats())
}

func (h *handler) listTeachers(c *gin.Context) {
	c.JSON(http.StatusOK, h.dir.Teachers())
}

type addTeacherRequest struct {
	Name string `json:"name"`
}

func (h *handler) addTeacher(c *gin.Context) {
	var req addTeacherRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.dir.AddTeacher(req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *handler) assignStudent(c *gin.Context) {
	var req selectStudentRequest
	if !bind(c, &req) {
		return
	}
	t, err := h.dir.AssignStudent(c.Param("id"), req.StudentID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *handler) listFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, h.dir.AllFeedback())
}

func (h *handler) analyzeFeedback(c *gin.Context) {
	fb := h.dir.AllFeedback()
	if len(fb) == 0 {
		c.JSON(http.StatusOK, gin.H{"analysis": nil, "message": "No feedback has been submitted yet."})
		return
	}
	analysis, err := h.oracle.AnalyzeFeedback(c.Request.Context(), fb)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
