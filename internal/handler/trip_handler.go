package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skygrouper/tripapi/internal/aggregate"
	"skygrouper/tripapi/internal/model"
	"skygrouper/tripapi/internal/service"
	"skygrouper/tripapi/pkg/response"
)

type TripHandler struct {
	trips service.TripService
}

func NewTripHandler(trips service.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

type CreateGroupRequest struct {
	GroupCode string `json:"groupCode"`
	NumUsers  int    `json:"numUsers"`
}

// PreferencesRequest carries one member's submission. Every field but
// userId is optional; nil slices and pointers mean the client omitted the
// field and the defaults apply.
type PreferencesRequest struct {
	UserID           string           `json:"userId"`
	From             string           `json:"from"`
	DestinationIdeas []string         `json:"destinationIdeas"`
	Dates            *model.DateRange `json:"dates"`
	Interests        []string         `json:"interests"`
	Budget           *model.Budget    `json:"budget"`
	Completed        bool             `json:"completed"`
}

// VotesRequest distinguishes a missing results field (rejected) from an
// empty ballot list (accepted) via the pointer.
type VotesRequest struct {
	Results *[]model.VoteBallot `json:"results"`
}

// CreateGroup handles POST /api/group-trip.
func (h *TripHandler) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	trip, err := h.trips.CreateGroup(c.Request.Context(), req.GroupCode, req.NumUsers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			response.BadRequest(c, "Missing required fields")
		case errors.Is(err, service.ErrGroupAlreadyExists):
			response.Conflict(c, "Group code already exists")
		default:
			response.InternalError(c, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"id":        trip.ID.String(),
		"groupCode": trip.GroupCode,
	})
}

// GetGroup handles GET /api/group-trip/:code.
func (h *TripHandler) GetGroup(c *gin.Context) {
	trip, err := h.trips.GetGroup(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"groupTripId": trip.GroupCode,
		"num_users":   trip.NumUsers,
		"users":       trip.Members,
		"exists":      true,
	})
}

// SubmitPreferences handles POST /api/group-trip/:code/preferences.
func (h *TripHandler) SubmitPreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		response.BadRequest(c, "User ID is required")
		return
	}

	sub := aggregate.Submission{
		From:             req.From,
		DestinationIdeas: req.DestinationIdeas,
		Dates:            req.Dates,
		Interests:        req.Interests,
		Budget:           req.Budget,
		Completed:        req.Completed,
	}
	if err := h.trips.SubmitPreferences(c.Request.Context(), c.Param("code"), req.UserID, sub); err != nil {
		switch {
		case errors.Is(err, service.ErrNoDocumentChanged):
			response.InternalError(c, "Failed to update preferences")
		default:
			h.fail(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStatus handles GET /api/group-trip/:code/status.
func (h *TripHandler) GetStatus(c *gin.Context) {
	status, err := h.trips.GetStatus(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ListSuggestions handles GET /api/group-trip/:code/suggestions.
func (h *TripHandler) ListSuggestions(c *gin.Context) {
	suggestions, err := h.trips.ListSuggestions(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// SubmitVotes handles POST /api/group-trip/:code/votes.
func (h *TripHandler) SubmitVotes(c *gin.Context) {
	var req VotesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Results == nil {
		response.BadRequest(c, "Missing votes data")
		return
	}

	if err := h.trips.SubmitVotes(c.Request.Context(), c.Param("code"), *req.Results); err != nil {
		switch {
		case errors.Is(err, service.ErrNoDocumentChanged):
			response.InternalError(c, "Failed to save votes")
		default:
			h.fail(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetResults handles GET /api/group-trip/:code/results.
func (h *TripHandler) GetResults(c *gin.Context) {
	results, err := h.trips.GetResults(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// fail maps the common service failures; operation-specific cases are
// handled at the call sites.
func (h *TripHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, "Missing required fields")
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, "Group trip not found")
	default:
		response.InternalError(c, "Internal server error")
	}
}
