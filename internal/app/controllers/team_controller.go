package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memitrading/memi/internal/app/models/dto"
	"github.com/memitrading/memi/internal/app/services"
	"github.com/memitrading/memi/internal/middleware"
	"github.com/memitrading/memi/internal/pkg/filestorage"
)

// TeamController handles team members
type TeamController struct {
	teamService services.TeamService
	images      imageUploads
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService, uploader *filestorage.Uploader) *TeamController {
	return &TeamController{
		teamService: teamService,
		images:      imageUploads{uploader: uploader},
	}
}

// List returns all team members by display order
// @Summary List team
// @Tags team
// @Produce json
// @Success 200 {array} models.TeamMember
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /team [get]
func (c *TeamController) List(ctx *gin.Context) {
	items, err := c.teamService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get returns one team member
// @Summary Get team member
// @Tags team
// @Produce json
// @Param id path int true "Team member ID"
// @Success 200 {object} models.TeamMember
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /team/{id} [get]
func (c *TeamController) Get(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	item, err := c.teamService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create adds a team member
// @Summary Create team member
// @Description Accepts JSON or multipart/form-data with an optional "image" file
// @Tags admin-team
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeamMemberRequest true "Team member"
// @Param image formData file false "Team member image (JPEG, PNG or GIF)"
// @Success 200 {object} models.TeamMember
// @Failure 400 {object} dto.ErrorResponse "Invalid team member data or upload"
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Router /admin/team [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if !middleware.Bind(ctx, &req) {
		return
	}
	imageURL, ok := c.images.store(ctx, imageField)
	if !ok {
		return
	}
	if imageURL != "" {
		req.ImageURL = &imageURL
	}

	item, err := c.teamService.Create(ctx.Request.Context(), &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Update changes the fields present in the request
// @Summary Update team member
// @Tags admin-team
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Param request body dto.UpdateTeamMemberRequest true "Fields to change"
// @Param image formData file false "New team member image"
// @Success 200 {object} models.TeamMember
// @Failure 400 {object} dto.ErrorResponse "Invalid team member data or upload"
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /admin/team/{id} [put]
func (c *TeamController) Update(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var req dto.UpdateTeamMemberRequest
	if !middleware.Bind(ctx, &req) {
		return
	}
	imageURL, ok := c.images.store(ctx, imageField)
	if !ok {
		return
	}
	if imageURL != "" {
		req.ImageURL = &imageURL
	}

	item, err := c.teamService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		c.images.discard(ctx, imageURL)
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Delete removes a team member
// @Summary Delete team member
// @Tags admin-team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Team member not found"
// @Router /admin/team/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	if err := c.teamService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	deleted(ctx, "Team member deleted successfully")
}
