package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Shubhamsh1838/Highway-delite/internals/models"
	"github.com/Shubhamsh1838/Highway-delite/internals/store"

	"github.com/gin-gonic/gin"
)

type NotesController struct {
	Notes *store.NoteStore
}

func NewNotesController(notes *store.NoteStore) *NotesController {
	return &NotesController{Notes: notes}
}

type NoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type NoteResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toNoteResponse(note *models.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// List returns the caller's live notes, newest first.
func (n *NotesController) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	notes, err := n.Notes.ListByOwner(user.ID)
	if err != nil {
		log.Printf("Get notes error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while fetching notes")
		return
	}

	data := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		data = append(data, toNoteResponse(&notes[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(data),
		"data":    data,
	})
}

// Create stamps the new note with the caller's id.
func (n *NotesController) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var body NoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide title and content for the note")
		return
	}

	note := &models.Note{
		Title:   body.Title,
		Content: body.Content,
		UserID:  user.ID,
	}

	if err := n.Notes.Create(note); err != nil {
		log.Printf("Create note error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while creating note")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Note created successfully",
		"data":    toNoteResponse(note),
	})
}

// Update replaces title and content. Only the owner may update.
func (n *NotesController) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	var body NoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Please provide title and content for the note")
		return
	}

	note, ok := n.findNote(c)
	if !ok {
		return
	}

	if note.UserID != user.ID {
		respondError(c, http.StatusUnauthorized, "Not authorized to update this note")
		return
	}

	note.Title = body.Title
	note.Content = body.Content

	if err := n.Notes.Save(note); err != nil {
		log.Printf("Update note error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while updating note")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note updated successfully",
		"data":    toNoteResponse(note),
	})
}

// Delete soft-deletes a note. A second delete of the same note answers
// 410 Gone.
func (n *NotesController) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}

	note, ok := n.findNote(c)
	if !ok {
		return
	}

	if note.UserID != user.ID {
		respondError(c, http.StatusUnauthorized, "Not authorized to delete this note")
		return
	}

	if note.IsDeleted {
		respondError(c, http.StatusGone, "Note is already deleted")
		return
	}

	note.IsDeleted = true
	if err := n.Notes.Save(note); err != nil {
		log.Printf("Delete note error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while deleting note")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Note deleted successfully",
	})
}

// findNote resolves the :id path parameter. A malformed or unknown id is
// reported as not found; the response is already written when ok is false.
func (n *NotesController) findNote(c *gin.Context) (*models.Note, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Note not found")
		return nil, false
	}

	note, err := n.Notes.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Note not found")
			return nil, false
		}
		log.Printf("Find note error: %v", err)
		respondError(c, http.StatusInternalServerError, "Server error while fetching note")
		return nil, false
	}

	return note, true
}
