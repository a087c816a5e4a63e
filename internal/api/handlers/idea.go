package handlers

import (
	"fmt"
	"net/http"

	"continuous-improvement-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IdeaHandler handles HTTP requests for continuous improvement ideas
type IdeaHandler struct {
	ideaService service.IdeaServiceInterface
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService service.IdeaServiceInterface) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// UpdateIdeaResponse is returned after an idea is updated
type UpdateIdeaResponse struct {
	Message string                `json:"message"`
	Idea    *service.IdeaResponse `json:"idea"`
}

// GetIdea retrieves an idea by ID
// @Summary Get idea by ID
// @Description Get a single idea with its status, categories and champions
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} service.IdeaResponse
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Router /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid idea ID"})
		return
	}

	idea, err := h.ideaService.GetIdea(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to get idea")
		return
	}

	c.JSON(http.StatusOK, idea)
}

// ListIdeas lists all ideas
// @Summary List ideas
// @Description List every idea, most recent first, with status name, champion names and category names. Returns an empty array when there are no ideas.
// @Tags ideas
// @Produce json
// @Success 200 {array} service.IdeaSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	ideas, err := h.ideaService.ListIdeas(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to list ideas")
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// RegisterIdea registers a new idea
// @Summary Register an idea
// @Description Register an idea with its categories and optional champions. full_name may be omitted when names is given; it is then the names joined with ", ".
// @Tags ideas
// @Accept json
// @Produce json
// @Param idea body service.RegisterIdeaRequest true "Idea data"
// @Success 201 {object} service.RegisterIdeaResponse
// @Failure 400 {object} ErrorResponse "Invalid request, unknown status, category or champion"
// @Failure 500 {object} ErrorResponse
// @Router /ideas [post]
func (h *IdeaHandler) RegisterIdea(c *gin.Context) {
	var req service.RegisterIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	resp, err := h.ideaService.RegisterIdea(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to register idea")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateIdea updates an idea
// @Summary Update an idea
// @Description Replace the text fields and status of an idea. Category and champion links are not changed.
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path int true "Idea ID"
// @Param idea body service.UpdateIdeaRequest true "Idea data"
// @Success 200 {object} UpdateIdeaResponse
// @Failure 400 {object} ErrorResponse "Invalid request or idea not found"
// @Failure 500 {object} ErrorResponse
// @Router /ideas/{id} [put]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid idea ID"})
		return
	}

	var req service.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	idea, err := h.ideaService.UpdateIdea(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to update idea")
		return
	}

	c.JSON(http.StatusOK, UpdateIdeaResponse{Message: "Idea updated successfully", Idea: idea})
}

// DeleteIdea deletes an idea
// @Summary Delete an idea
// @Description Delete an idea together with its category and champion links
// @Tags ideas
// @Produce json
// @Param id path int true "Idea ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Router /ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid idea ID"})
		return
	}

	if err := h.ideaService.DeleteIdea(c.Request.Context(), id); err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to delete idea")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Idea deleted successfully"})
}

// AssignChampions assigns champions to ideas
// @Summary Assign champions to ideas
// @Description Link champions to ideas and notify each champion by email. Every pair gets its own result; a failed email is reported on the pair and does not stop the batch.
// @Tags ideas
// @Accept json
// @Produce json
// @Param assignments body []service.ChampionAssignment true "Idea/champion pairs"
// @Success 200 {object} service.AssignChampionsResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or empty list"
// @Failure 500 {object} ErrorResponse
// @Router /ideas/champions [post]
func (h *IdeaHandler) AssignChampions(c *gin.Context) {
	var assignments []service.ChampionAssignment
	if err := c.ShouldBindJSON(&assignments); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	resp, err := h.ideaService.AssignChampions(c.Request.Context(), assignments)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "Failed to assign champions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ExportIdeas downloads all ideas as a spreadsheet
// @Summary Export ideas
// @Description Download every idea as an xlsx workbook
// @Tags ideas
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /ideas/export [post]
func (h *IdeaHandler) ExportIdeas(c *gin.Context) {
	file, err := h.ideaService.ExportIdeas(c.Request.Context())
	if err != nil {
		respondError(c, err, http.StatusNotFound, "Failed to export ideas")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
