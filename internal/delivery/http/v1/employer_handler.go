package v1

import (
	"net/http"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := protected.Group("/employers")
	{
		employers.POST("", handler.RegisterEmployer)
		employers.GET("/me", handler.GetMe)
	}
}

// RegisterEmployerRequest links the authenticated user to a company profile.
type RegisterEmployerRequest struct {
	CompanyName  string  `json:"company_name" binding:"required"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
	Website      *string `json:"website"`
	Industry     *string `json:"industry"`
}

// RegisterEmployer godoc
// @Summary      Register an employer profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterEmployerRequest  true  "Company data"
// @Success      201   {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400   {object}  response.Response
// @Router       /employers [post]
// @Security     BearerAuth
func (h *EmployerHandler) RegisterEmployer(c *gin.Context) {
	var req RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile := &domain.EmployerProfile{
		UserID:       userID,
		CompanyName:  req.CompanyName,
		ContactEmail: req.ContactEmail,
		Website:      req.Website,
		Industry:     req.Industry,
	}

	if err := h.employerUC.RegisterEmployer(c, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Employer registered", profile)
}

// GetMe godoc
// @Summary      Get the authenticated employer's profile
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404  {object}  response.Response
// @Router       /employers/me [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetMe(c *gin.Context) {
	profile, err := h.employerUC.GetEmployerByUserID(c, c.GetString(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}
