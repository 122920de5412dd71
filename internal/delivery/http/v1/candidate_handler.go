package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

// NewCandidateHandler registers candidate routes. Submission is public
// (candidates apply without an account); reads and availability edits sit
// behind auth.
func NewCandidateHandler(public, protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, submitLimiter gin.HandlerFunc) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	public.POST("/candidates", submitLimiter, handler.SubmitCandidate)

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/:id", handler.GetCandidate)
		candidates.GET("/:id/availability", handler.GetAvailability)
		candidates.PUT("/:id/availability/:day", handler.ReplaceAvailabilityDay)
		candidates.PATCH("/:id/files", handler.UpdateFileReferences)
	}
}

// SubmitCandidateRequest is the public application-form payload.
type SubmitCandidateRequest struct {
	FullName       string   `json:"full_name" binding:"required"`
	Email          *string  `json:"email"`
	Phone          string   `json:"phone" binding:"required"`
	City           string   `json:"city" binding:"required"`
	Nationality    string   `json:"nationality" binding:"required"`
	EducationLevel string   `json:"education_level"`
	Experience     string   `json:"experience"`
	Skills         []string `json:"skills"`
	Availability   string   `json:"availability"`
	ResumeURL      *string  `json:"resume_url"`
	PhotoURL       *string  `json:"photo_url"`
}

// SubmitCandidate godoc
// @Summary      Submit a candidate profile
// @Description  One-time profile submission for a job seeker
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitCandidateRequest  true  "Profile data"
// @Success      201   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) SubmitCandidate(c *gin.Context) {
	var req SubmitCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CandidateProfile{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		City:           req.City,
		Nationality:    req.Nationality,
		EducationLevel: req.EducationLevel,
		Experience:     req.Experience,
		Skills:         joinSkills(req.Skills),
		Availability:   req.Availability,
		ResumeURL:      req.ResumeURL,
		PhotoURL:       req.PhotoURL,
	}

	if err := h.candidateUC.SubmitCandidate(c, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile submitted successfully", profile)
}

// GetCandidate godoc
// @Summary      Get a candidate profile
// @Tags         candidates
// @Produce      json
// @Param        id  path      int  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	profile, err := h.candidateUC.GetCandidate(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate retrieved", profile)
}

// GetAvailability godoc
// @Summary      Get a candidate's weekly availability
// @Description  Returns the decoded availability, Monday to Sunday. Corrupt stored data degrades to an empty set.
// @Tags         candidates
// @Produce      json
// @Param        id  path      int  true  "Candidate ID"
// @Success      200 {object}  response.Response{data=domain.WeeklyAvailability}
// @Failure      404 {object}  response.Response
// @Router       /candidates/{id}/availability [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetAvailability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	av, err := h.candidateUC.Availability(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Availability retrieved", av)
}

// ReplaceDayRequest carries the replacement time set for one weekday. An
// empty list removes the day.
type ReplaceDayRequest struct {
	Times []string `json:"times"`
}

// ReplaceAvailabilityDay godoc
// @Summary      Replace one weekday of a candidate's availability
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Candidate ID"
// @Param        day   path      string             true  "Weekday name (Monday..Sunday)"
// @Param        body  body      ReplaceDayRequest  true  "Times, HH:MM"
// @Success      200   {object}  response.Response{data=domain.WeeklyAvailability}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /candidates/{id}/availability/{day} [put]
// @Security     BearerAuth
func (h *CandidateHandler) ReplaceAvailabilityDay(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	var req ReplaceDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	av, err := h.candidateUC.ReplaceAvailabilityDay(c, id, domain.Weekday(c.Param("day")), req.Times)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Availability updated", av)
}

// UpdateFilesRequest replaces one or both external file references.
type UpdateFilesRequest struct {
	ResumeURL *string `json:"resume_url"`
	PhotoURL  *string `json:"photo_url"`
}

// UpdateFileReferences godoc
// @Summary      Update a candidate's resume and photo references
// @Description  Files live in external storage; only the URIs are stored here
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Candidate ID"
// @Param        body  body      UpdateFilesRequest  true  "File references"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /candidates/{id}/files [patch]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateFileReferences(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate ID"))
		return
	}

	var req UpdateFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.UpdateFileReferences(c, id, req.ResumeURL, req.PhotoURL); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "File references updated", nil)
}

func joinSkills(skills []string) string {
	return domain.ParseSkillSet(strings.Join(skills, ",")).Encode()
}
