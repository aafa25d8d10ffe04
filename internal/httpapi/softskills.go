package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/muhammadolammi/aithera/internal/softskills"
)

type skillTopics struct {
	Skill  string   `json:"skill"`
	Topics []string `json:"topics"`
}

func (h *handler) catalogue(c *gin.Context) {
	skills := softskills.Skills()
	out := make([]skillTopics, len(skills))
	for i, s := range skills {
		out[i] = skillTopics{Skill: s, Topics: softskills.Catalogue[s]}
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) listLibrary(c *gin.Context) {
	c.JSON(http.StatusOK, h.library.List())
}

func (h *handler) getLibraryScenario(c *gin.Context) {
	s, err := h.library.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handler) startLibraryScenario(c *gin.Context) {
	s, err := h.library.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	host := h.labs.Host(sessionState(c).User.ID)
	if err := host.StartWith(s); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, host.View())
}

// startRequest names either a free-text description or a catalogue topic.
type startRequest struct {
	Description string `json:"description"`
	Skill       string `json:"skill"`
	Topic       string `json:"topic"`
}

func (r startRequest) text() string {
	if d := strings.TrimSpace(r.Description); d != "" {
		return d
	}
	if r.Topic == "" {
		return ""
	}
	if r.Skill == "" {
		return r.Topic
	}
	return fmt.Sprintf("%s: %s", r.Skill, r.Topic)
}

// startSimulation kicks off generation and answers straight away with the
// loading view. Clients poll the state endpoint until it settles.
func (h *handler) startSimulation(c *gin.Context) {
	var req startRequest
	if !bind(c, &req) {
		return
	}
	host := h.labs.Host(sessionState(c).User.ID)
	if err := host.Start(req.text()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, host.View())
}

func (h *handler) simulationState(c *gin.Context) {
	c.JSON(http.StatusOK, h.labs.Host(sessionState(c).User.ID).View())
}

type chooseRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (h *handler) choose(c *gin.Context) {
	var req chooseRequest
	if !bind(c, &req) {
		return
	}
	v, err := h.labs.Host(sessionState(c).User.ID).Select(*req.Index)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *handler) endSimulation(c *gin.Context) {
	host := h.labs.Host(sessionState(c).User.ID)
	host.End()
	c.JSON(http.StatusOK, host.View())
}
