package v1

import (
	"net/http"
	"strconv"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	candidateUC domain.CandidateUsecase
	requestUC   domain.RequestUsecase
	statsUC     domain.StatsUsecase
}

func NewAdminHandler(admin *gin.RouterGroup, candidateUC domain.CandidateUsecase, requestUC domain.RequestUsecase, statsUC domain.StatsUsecase) {
	handler := &AdminHandler{candidateUC: candidateUC, requestUC: requestUC, statsUC: statsUC}

	admin.GET("/statistics", handler.GetStatistics)
	admin.DELETE("/candidates/:id", handler.DeleteCandidate)
	admin.DELETE("/requests/:id", handler.DeleteRequest)
}

// GetStatistics godoc
// @Summary      Get platform statistics
// @Description  Counts, top cities and nationalities, skill frequencies, and monthly request volume
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.StatsSnapshot}
// @Failure      403  {object}  response.Response
// @Router       /admin/statistics [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	snapshot, err := h.statsUC.ComputeStatistics(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Platform statistics", snapshot)
}

// DeleteCandidate godoc
// @Summary      Remove a candidate profile
// @Description  Deletes the profile and, through storage cascade, its requests
// @Tags         admin
// @Produce      json
// @Param        id  path      int  true  "Candidate ID"
// @Success      200 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /admin/candidates/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	if err := h.candidateUC.DeleteCandidate(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", nil)
}

// DeleteRequest godoc
// @Summary      Remove an interview request
// @Description  Frees the candidate-employer pair for a future request
// @Tags         admin
// @Produce      json
// @Param        id  path      int  true  "Request ID"
// @Success      200 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /admin/requests/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid request ID"))
		return
	}

	if err := h.requestUC.DeleteRequest(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Request deleted", nil)
}
