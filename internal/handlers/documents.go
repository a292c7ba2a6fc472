package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/recruitkit/candidatesdb/internal/services"
)

// DocumentHandler handles document routes
type DocumentHandler struct {
	Documents  *services.DocumentService
	Candidates *services.CandidateService
}

// CreateDocument handles POST /documents/:candidateId
// @Summary Attach a document
// @Description Create a document for an existing candidate; status starts as PENDING
// @Tags Documents
// @Accept json
// @Produce json
// @Param candidateId path int true "Owning candidate ID"
// @Param body body services.CreateDocumentInput true "Document to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{candidateId} [post]
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	candidateID, err := parseIDParam(c, "candidateId")
	if err != nil {
		return err
	}

	var input services.CreateDocumentInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	document, err := h.Documents.Create(candidateID, input)
	if err != nil {
		return err
	}

	restricted, err := h.Candidates.HasRestrictedDocument(candidateID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"document": document,
		"alert":    RestrictedDocumentAlert(restricted),
	})
}

// ListDocumentsByCandidate handles GET /documents/candidate/:candidateId
// @Summary List a candidate's documents
// @Description Get all documents owned by a candidate, newest first
// @Tags Documents
// @Produce json
// @Param candidateId path int true "Owning candidate ID"
// @Success 200 {array} models.Document
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/candidate/{candidateId} [get]
func (h *DocumentHandler) ListDocumentsByCandidate(c *fiber.Ctx) error {
	candidateID, err := parseIDParam(c, "candidateId")
	if err != nil {
		return err
	}

	documents, err := h.Documents.ListByCandidate(candidateID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(documents)
}

// GetDocument handles GET /documents/:id
// @Summary Get a document
// @Description Get one document with its owning candidate
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} models.Document
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	document, err := h.Documents.GetByID(id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(document)
}

// UpdateDocumentStatus handles PUT /documents/:id/status
// @Summary Update a document's status
// @Description Set the validation status, the only mutable document field
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param body body services.UpdateDocumentStatusInput true "New status"
// @Success 200 {object} models.Document
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id}/status [put]
func (h *DocumentHandler) UpdateDocumentStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input services.UpdateDocumentStatusInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	document, err := h.Documents.UpdateStatus(id, input.Status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(document)
}

// DeleteDocument handles DELETE /documents/:id
// @Summary Delete a document
// @Description Delete one document independently of its candidate
// @Tags Documents
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	document, err := h.Documents.Remove(id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         fmt.Sprintf("Document %q deleted successfully", document.FileName),
		"deletedDocument": document,
	})
}
