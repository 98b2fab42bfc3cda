package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/mapper"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/middleware"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/validation"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
	"github.com/DOUGSKEEZ/clio-board-sub001/pkg/apierrors"
)

type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidNotePayload)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		respondBadRequest(c, apierrors.MsgInvalidNotePayload)
		return
	}

	note, err := h.noteService.Create(c.Request.Context(), middleware.GetActor(c), domain.CreateNoteInput{
		Title:     title,
		Body:      req.Body,
		RoutineID: req.RoutineID,
	})
	if err != nil {
		respondServiceError(c, "create note", err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToNote(note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidNoteID)
	if !ok {
		return
	}

	raw := map[string]json.RawMessage{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidNotePayload)
		return
	}
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		respondBadRequest(c, apierrors.MsgInvalidNotePayload)
		return
	}

	input, err := validation.BuildUpdateNoteInput(req, raw)
	if err != nil {
		respondBadRequest(c, apierrors.MsgInvalidNotePayload)
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), middleware.GetActor(c), id, input)
	if err != nil {
		respondServiceError(c, "update note", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNote(note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, ok := pathID(c, "id", apierrors.MsgInvalidNoteID)
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondServiceError(c, "delete note", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	notes, err := h.noteService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list notes", err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotes(notes))
}
