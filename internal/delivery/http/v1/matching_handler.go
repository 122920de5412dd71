package v1

import (
	"net/http"
	"strconv"

	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	matchingUC domain.MatchingUsecase
	employerUC domain.EmployerUsecase
}

// NewMatchingHandler registers the two employer-facing browse views:
// candidates not yet requested, and candidates already requested.
func NewMatchingHandler(protected *gin.RouterGroup, matchingUC domain.MatchingUsecase, employerUC domain.EmployerUsecase) {
	handler := &MatchingHandler{matchingUC: matchingUC, employerUC: employerUC}

	employers := protected.Group("/employers")
	{
		employers.GET("/candidates", handler.UnrequestedCandidates)
		employers.GET("/requests", handler.RequestedCandidates)
	}
}

// UnrequestedCandidates godoc
// @Summary      Browse candidates this employer has not requested yet
// @Tags         matching
// @Produce      json
// @Param        city             query     string  false  "City filter"
// @Param        education        query     string  false  "Education filter"
// @Param        experience       query     string  false  "Experience filter"
// @Param        search           query     string  false  "Free-text search"
// @Param        skills           query     []string  false  "Skill tags"  collectionFormat(multi)
// @Param        skill_match_mode query     string  false  "any or all"  default(any)
// @Param        page             query     int     false  "Page number, 1-indexed"  default(1)
// @Success      200  {object}  response.Response{data=domain.CandidatePage}
// @Failure      400  {object}  response.Response
// @Router       /employers/candidates [get]
// @Security     BearerAuth
func (h *MatchingHandler) UnrequestedCandidates(c *gin.Context) {
	employer, err := h.employerUC.GetEmployerByUserID(c, c.GetString(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	filter, page, err := parseFilterQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.matchingUC.UnrequestedCandidates(c, employer.ID, filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates retrieved", result)
}

// RequestedCandidates godoc
// @Summary      Browse candidates this employer has already requested
// @Description  Pending requests sort first, then decided ones, newest first within each tier
// @Tags         matching
// @Produce      json
// @Param        city             query     string  false  "City filter"
// @Param        education        query     string  false  "Education filter"
// @Param        experience       query     string  false  "Experience filter"
// @Param        search           query     string  false  "Free-text search"
// @Param        skills           query     []string  false  "Skill tags"  collectionFormat(multi)
// @Param        skill_match_mode query     string  false  "any or all"  default(any)
// @Param        page             query     int     false  "Page number, 1-indexed"  default(1)
// @Success      200  {object}  response.Response{data=domain.RequestedPage}
// @Failure      400  {object}  response.Response
// @Router       /employers/requests [get]
// @Security     BearerAuth
func (h *MatchingHandler) RequestedCandidates(c *gin.Context) {
	employer, err := h.employerUC.GetEmployerByUserID(c, c.GetString(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	filter, page, err := parseFilterQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.matchingUC.RequestedCandidates(c, employer.ID, filter, page)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Requested candidates retrieved", result)
}

func parseFilterQuery(c *gin.Context) (domain.CandidateFilter, int, error) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return domain.CandidateFilter{}, 0, apperror.BadRequest("Invalid page number")
		}
		page = parsed
	}

	mode := domain.SkillMatchAny
	if raw := c.Query("skill_match_mode"); raw != "" {
		switch domain.SkillMatchMode(raw) {
		case domain.SkillMatchAny, domain.SkillMatchAll:
			mode = domain.SkillMatchMode(raw)
		default:
			return domain.CandidateFilter{}, 0, apperror.BadRequest("skill_match_mode must be 'any' or 'all'")
		}
	}

	filter := domain.CandidateFilter{
		City:       c.Query("city"),
		Education:  c.Query("education"),
		Experience: c.Query("experience"),
		Search:     c.Query("search"),
		Skills:     c.QueryArray("skills"),
		SkillMatch: mode,
	}
	return filter, page, nil
}
