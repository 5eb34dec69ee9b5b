package member

import (
	"net/http"

	sharedContext "github.com/ecomshop/shop-api/internal/shared/context"
	"github.com/ecomshop/shop-api/internal/shared/handler"
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

// GetProfile returns the authenticated adherent
func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	h.respondProfile(c, memberID)
}

// GetByID returns an adherent by path id
func (h *MemberHandler) GetByID(c *gin.Context) {
	memberID, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}

	h.respondProfile(c, memberID)
}

func (h *MemberHandler) respondProfile(c *gin.Context, memberID uint32) {
	response, err := h.memberService.GetProfile(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
