package v1

import (
	"net/http"
	"strconv"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestUC  domain.RequestUsecase
	employerUC domain.EmployerUsecase
}

func NewRequestHandler(protected *gin.RouterGroup, requestUC domain.RequestUsecase, employerUC domain.EmployerUsecase) {
	handler := &RequestHandler{requestUC: requestUC, employerUC: employerUC}

	requests := protected.Group("/employers/requests")
	{
		requests.POST("", handler.CreateRequest)
		requests.PATCH("/:id", handler.UpdateStatus)
	}
}

// CreateRequestBody opens a request for one candidate. The schedule block is
// optional; when present, a meeting start without a link stays a draft and no
// invitation goes out until the link lands.
type CreateRequestBody struct {
	CandidateID int64                 `json:"candidate_id" binding:"required"`
	Notes       string                `json:"notes"`
	Schedule    *domain.ScheduleInput `json:"schedule"`
}

// CreateRequest godoc
// @Summary      Open an interview request for a candidate
// @Description  At most one request per candidate-employer pair
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      CreateRequestBody  true  "Request data"
// @Success      201   {object}  response.Response{data=domain.EmployerRequest}
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /employers/requests [post]
// @Security     BearerAuth
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employer, err := h.resolveEmployer(c)
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.requestUC.CreateRequest(c, employer.ID, req.CandidateID, req.Notes, req.Schedule)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Request created", created)
}

// UpdateStatusBody moves a request to a new status. Notes are omitted to keep
// the existing value, or sent to overwrite it.
type UpdateStatusBody struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// UpdateStatus godoc
// @Summary      Update the status of an interview request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Request ID"
// @Param        body  body      UpdateStatusBody  true  "New status"
// @Success      200   {object}  response.Response{data=domain.EmployerRequest}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/requests/{id} [patch]
// @Security     BearerAuth
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid request ID"))
		return
	}

	var req UpdateStatusBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	employer, err := h.resolveEmployer(c)
	if err != nil {
		c.Error(err)
		return
	}

	updated, err := h.requestUC.UpdateStatus(c, id, employer.ID, req.Status, req.Notes)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Request updated", updated)
}

func (h *RequestHandler) resolveEmployer(c *gin.Context) (*domain.EmployerProfile, error) {
	return h.employerUC.GetEmployerByUserID(c, c.GetString(string(domain.KeyUserID)))
}
