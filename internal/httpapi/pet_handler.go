package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaichu/lineage-calc/internal/game/pet"
)

// PetHandler serves the pet growth evaluation endpoints.
type PetHandler struct {
	Registry *pet.Registry
	Logger   *zap.Logger
}

// EvaluateRequest is the JSON body for POST /api/pets/evaluate.
type EvaluateRequest struct {
	PetID        string              `json:"petId" binding:"required"`
	Level        int                 `json:"level" binding:"required"`
	CurrentStats pet.StatSet         `json:"currentStats"`
	Skills       []pet.SelectedSkill `json:"skills"`
}

// EvaluateResponse wraps an evaluation with its display metadata.
type EvaluateResponse struct {
	pet.Evaluation
	RatingDescription string       `json:"ratingDescription"`
	SkillBonus        *pet.StatSet `json:"skillBonus,omitempty"`
	EffectiveStats    *pet.StatSet `json:"effectiveStats,omitempty"`
}

// List returns every known species.
func (h *PetHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pets": h.Registry.All()})
}

// Get returns one species by id.
func (h *PetHandler) Get(c *gin.Context) {
	p, err := h.Registry.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListSkills returns the training skills unlocked at the given level
// (query parameter "level", default the max level).
func (h *PetHandler) ListSkills(c *gin.Context) {
	level := pet.MaxLevel
	if raw := c.Query("level"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "level must be an integer"})
			return
		}
		level = parsed
	}
	c.JSON(http.StatusOK, gin.H{"level": level, "skills": pet.AvailableSkills(level)})
}

// Evaluate validates the input and runs the growth evaluation. Validation
// failures return 400 with the full message list; an unknown species
// returns 404.
func (h *PetHandler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Registry.Get(req.PetID)
	if err != nil {
		if errors.Is(err, pet.ErrUnknownSpecies) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validationErrs := pet.ValidateInput(p, req.Level, req.CurrentStats)
	validationErrs = append(validationErrs, pet.ValidateSkillSelection(req.Skills, req.Level)...)
	if len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrs})
		return
	}

	evaluation := pet.Evaluate(p, req.Level, req.CurrentStats)
	resp := EvaluateResponse{
		Evaluation:        evaluation,
		RatingDescription: pet.OverallRatingDescription(evaluation.OverallRating),
	}
	if len(req.Skills) > 0 {
		bonus := pet.SkillBonus(req.Skills)
		effective := req.CurrentStats.Add(bonus)
		resp.SkillBonus = &bonus
		resp.EffectiveStats = &effective
	}

	h.Logger.Debug("pet evaluated",
		zap.String("pet", p.ID),
		zap.Int("level", req.Level),
		zap.Float64("overall", evaluation.OverallScore),
	)
	c.JSON(http.StatusOK, resp)
}
