package member

import (
	"fmt"

	"studio-admin/internal/common/api"
	"studio-admin/internal/config"

	"github.com/gofiber/fiber/v2"
)

type MemberController struct {
	MemberService MemberService
	config        *config.Config
}

func NewMemberController(memberService MemberService, config *config.Config) *MemberController {
	return &MemberController{
		MemberService: memberService,
		config:        config,
	}
}

type AccessUpdateRequest struct {
	Field string `json:"field"`
	Value *bool  `json:"value"`
}

// ListMembers godoc
// @Summary      List members
// @Description  All members, optionally narrowed by a case-insensitive username search
// @Tags         members
// @Produce      json
// @Param        search query string false "Username substring"
// @Success      200  {array} Member
// @Failure      503  {string} string "Store unavailable"
// @Router       /api/members [get]
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	members, err := ctrl.MemberService.ListMembers(ctx)
	if err != nil {
		return api.Error(c, err)
	}

	return c.JSON(FilterMembers(members, c.Query("search")))
}

// GetMember godoc
// @Summary      Get member by ID
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200  {object} Member
// @Failure      404  {string} string "Member not found"
// @Router       /api/members/{id} [get]
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	member, err := ctrl.MemberService.GetMember(ctx, c.Params("id"))
	if err != nil {
		return api.Error(c, err)
	}

	return c.JSON(member)
}

// CreateMember godoc
// @Summary      Create member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        input body MemberInput true "Create Member Input"
// @Success      201  {object} Member
// @Failure      400  {string} string "Invalid request body"
// @Failure      409  {string} string "Username already exists"
// @Router       /api/members [post]
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req MemberInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	member, err := ctrl.MemberService.CreateMember(ctx, req)
	if err != nil {
		return api.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateMember godoc
// @Summary      Update member
// @Description  Replaces username, password and access of a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path string true "Member ID"
// @Param        input body MemberInput true "Update Member Input"
// @Success      200  {object} Member
// @Failure      404  {string} string "Member not found"
// @Failure      409  {string} string "Username already exists"
// @Router       /api/members/{id} [put]
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	var req MemberInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	member, err := ctrl.MemberService.UpdateMember(ctx, c.Params("id"), req)
	if err != nil {
		return api.Error(c, err)
	}

	return c.JSON(member)
}

// DeleteMember godoc
// @Summary      Delete member
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID"
// @Success      200  {object} map[string]string
// @Failure      404  {string} string "Member not found"
// @Router       /api/members/{id} [delete]
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	if err := ctrl.MemberService.DeleteMember(ctx, c.Params("id")); err != nil {
		return api.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Member deleted successfully",
	})
}

// UpdateAccess godoc
// @Summary      Toggle one access flag
// @Description  Field comes from the body, or from the path on /access/{field}
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id path string true "Member ID"
// @Param        input body AccessUpdateRequest true "Flag and value"
// @Success      200  {object} Member
// @Failure      400  {string} string "Invalid access flag"
// @Failure      404  {string} string "Member not found"
// @Router       /api/members/{id}/access [put]
func (ctrl *MemberController) UpdateAccess(c *fiber.Ctx) error {
	var req AccessUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if field := c.Params("field"); field != "" {
		req.Field = field
	}
	if req.Value == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "value is required",
		})
	}

	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	member, err := ctrl.MemberService.SetAccessFlag(ctx, c.Params("id"), req.Field, *req.Value)
	if err != nil {
		return api.Error(c, err)
	}

	return c.JSON(member)
}

// ExportMembers godoc
// @Summary      Export members
// @Description  Members and their access flags as an Excel workbook
// @Tags         members
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file} file
// @Router       /api/members/export [get]
func (ctrl *MemberController) ExportMembers(c *fiber.Ctx) error {
	ctx, cancel := api.RequestContext(c, ctrl.config.RequestTimeout)
	defer cancel()

	data, err := ctrl.MemberService.ExportMembers(ctx)
	if err != nil {
		return api.Error(c, err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", ExportFilename))
	return c.Send(data)
}
