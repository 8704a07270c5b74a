package member

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/mediatheque-api/internal/shared/context"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	var request MemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.CreateMember(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	response, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	response, err := h.memberService.GetMember(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	memberID, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	var request MemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.UpdateMember(c.Request.Context(), memberID, &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	memberID, ok := sharedContext.RequireUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
