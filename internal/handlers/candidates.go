package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitkit/candidatesdb/internal/services"
)

// CandidateHandler handles candidate routes
type CandidateHandler struct {
	Candidates *services.CandidateService
}

// CreateCandidate handles POST /candidates
// @Summary Register a candidate
// @Description Create a new candidate with an empty document set
// @Tags Candidates
// @Accept json
// @Produce json
// @Param body body services.CreateCandidateInput true "Candidate to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *fiber.Ctx) error {
	var input services.CreateCandidateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	candidate, err := h.Candidates.Create(input)
	if err != nil {
		return err
	}

	restricted, err := h.Candidates.HasRestrictedDocument(candidate.CandidateID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"candidate": candidate,
		"alert":     RestrictedDocumentAlert(restricted),
	})
}

// ListCandidates handles GET /candidates
// @Summary List candidates
// @Description Get all candidates with their documents, newest first
// @Tags Candidates
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /candidates [get]
func (h *CandidateHandler) ListCandidates(c *fiber.Ctx) error {
	candidates, err := h.Candidates.List()
	if err != nil {
		return err
	}

	// The documents are already preloaded, so the alert derives from them
	// instead of issuing one count query per candidate.
	results := make([]fiber.Map, 0, len(candidates))
	for i := range candidates {
		results = append(results, fiber.Map{
			"candidate": candidates[i],
			"alert":     RestrictedDocumentAlert(candidates[i].HoldsResidencyPermit()),
		})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// GetCandidate handles GET /candidates/:id
// @Summary Get a candidate
// @Description Get one candidate with its documents
// @Tags Candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	candidate, err := h.Candidates.GetByID(id)
	if err != nil {
		return err
	}

	restricted, err := h.Candidates.HasRestrictedDocument(id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"candidate": candidate,
		"alert":     RestrictedDocumentAlert(restricted),
	})
}

// UpdateCandidate handles PUT /candidates/:id
// @Summary Update a candidate
// @Description Apply a partial update; omitted fields stay untouched
// @Tags Candidates
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param body body services.UpdateCandidateInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input services.UpdateCandidateInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	candidate, err := h.Candidates.Update(id, input)
	if err != nil {
		return err
	}

	restricted, err := h.Candidates.HasRestrictedDocument(id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"candidate": candidate,
		"alert":     RestrictedDocumentAlert(restricted),
	})
}

// DeleteCandidate handles DELETE /candidates/:id
// @Summary Delete a candidate
// @Description Delete a candidate and, transitively, all its documents
// @Tags Candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	candidate, err := h.Candidates.Remove(id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          fmt.Sprintf("Candidate %q deleted successfully", candidate.FirstName+" "+candidate.LastName),
		"deletedCandidate": candidate,
	})
}
