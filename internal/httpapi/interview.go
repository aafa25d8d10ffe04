package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/interview"
	"github.com/muhammadolammi/aithera/internal/models"
	"go.uber.org/zap"
)

var errNoInterview = errors.New("no interview in progress")

type startInterviewRequest struct {
	Role    string               `json:"role" binding:"required"`
	Type    models.InterviewType `json:"type" binding:"required"`
	Company string               `json:"company"`
}

// startInterview prepares every question up front and replaces any open interview.
func (h *handler) startInterview(c *gin.Context) {
	var req startInterviewRequest
	if !bind(c, &req) {
		return
	}
	userID := sessionState(c).User.ID
	sess, err := interview.Prepare(c.Request.Context(), h.oracle, req.Role, req.Type, req.Company, h.now())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.interviews.Put(userID, sess)
	h.log.Info("Interview started", zap.String("user_id", userID), zap.String("type", string(req.Type)))
	c.JSON(http.StatusCreated, sess.Snapshot(h.now()))
}

func (h *handler) openInterview(c *gin.Context) (*interview.Session, bool) {
	sess, ok := h.interviews.Get(sessionState(c).User.ID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, APIError{Message: errNoInterview.Error()})
		return nil, false
	}
	return sess, true
}

func (h *handler) currentInterview(c *gin.Context) {
	sess, ok := h.openInterview(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot(h.now()))
}

func (h *handler) advanceInterview(c *gin.Context) {
	sess, ok := h.openInterview(c)
	if !ok {
		return
	}
	if err := sess.Advance(h.now()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot(h.now()))
}

type answerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// answerQuestion grades the answer to the open question and files it in the
// student's interview history. The session stays on the question until advanced.
func (h *handler) answerQuestion(c *gin.Context) {
	sess, ok := h.openInterview(c)
	if !ok {
		return
	}
	var req answerRequest
	if !bind(c, &req) {
		return
	}
	_, q, err := sess.Current(h.now())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if q == nil {
		c.AbortWithStatusJSON(http.StatusConflict, APIError{Message: "the current stage is a coding challenge"})
		return
	}
	fb, err := h.oracle.EvaluateAnswer(c.Request.Context(), sess.Role, q.Question, req.Answer)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := h.dir.AddInterview(sessionState(c).User.ID, *q, req.Answer, *fb); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}

type codeRequest struct {
	Solution string `json:"solution" binding:"required"`
	Language string `json:"language" binding:"required"`
}

func (h *handler) submitCode(c *gin.Context) {
	sess, ok := h.openInterview(c)
	if !ok {
		return
	}
	var req codeRequest
	if !bind(c, &req) {
		return
	}
	st, _, err := sess.Current(h.now())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if st.Challenge == nil {
		c.AbortWithStatusJSON(http.StatusConflict, APIError{Message: "the current stage has no coding challenge"})
		return
	}
	fb, err := h.oracle.EvaluateCodeSolution(c.Request.Context(), *st.Challenge, req.Solution, req.Language)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := h.dir.AddChallenge(sessionState(c).User.ID, *st.Challenge, interview.ChallengeDifficulty, req.Solution, *fb); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, fb)
}

func (h *handler) abandonInterview(c *gin.Context) {
	h.interviews.Delete(sessionState(c).User.ID)
	c.Status(http.StatusNoContent)
}

func (h *handler) listMentors(c *gin.Context) {
	c.JSON(http.StatusOK, interview.Mentors)
}

type bookRequest struct {
	MentorID string `json:"mentorId"`
	Slot     string `json:"slot"`
}

func (h *handler) bookMentor(c *gin.Context) {
	var req bookRequest
	if !bind(c, &req) {
		return
	}
	msg, err := interview.Book(req.MentorID, req.Slot)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
