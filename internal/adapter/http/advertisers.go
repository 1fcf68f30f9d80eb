package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"portal-ads/internal/core/domain"
)

// campaignRequest is the admin form for creating or editing an advertiser.
// Dates are calendar days; empty leaves that side of the window open.
type campaignRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Name        string `json:"name" validate:"required,max=120"`
	Category    string `json:"category" validate:"max=60"`
	Plan        string `json:"plan" validate:"required,oneof=standard premium master"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool  `json:"isActive"`
	ExternalURL string `json:"externalUrl" validate:"omitempty,url,max=2048"`
}

func (req campaignRequest) campaign() domain.Campaign {
	c := domain.Campaign{
		ID:          req.ID,
		Name:        req.Name,
		Category:    req.Category,
		Plan:        domain.PlanTier(req.Plan),
		IsActive:    true,
		ExternalURL: req.ExternalURL,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	// formats were checked by the validator
	c.StartDate, _ = time.Parse(time.DateOnly, req.StartDate)
	c.EndDate, _ = time.Parse(time.DateOnly, req.EndDate)
	return c
}

type validationResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

// handleSaveCampaign validates the campaign form and stores it. The saved
// campaign, id and counters included, is returned.
func (h *Handler) handleSaveCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeValidation(w, err)
		return
	}

	c := req.campaign()
	if err := h.ads.SaveCampaign(r.Context(), &c); err != nil {
		h.fail(w, r, "save campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleSavePopupSet normalizes and stores the popup set of advertiser
// {id}. The response carries the stored set and the corrections applied.
func (h *Handler) handleSavePopupSet(w http.ResponseWriter, r *http.Request) {
	var in domain.PopupSetInput
	if !h.decode(w, r, &in) {
		return
	}
	res, err := h.popups.SavePopupSet(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, r, "save popup set", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) writeValidation(w http.ResponseWriter, err error) {
	resp := validationResponse{Error: "validation failed", Fields: []string{}}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Fields = append(resp.Fields, validationMessage(fe))
		}
	}
	h.writeJSON(w, http.StatusBadRequest, resp)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
