package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/flowershop/internal/models"
	"github.com/rogerio-castellano/flowershop/internal/store"
)

func toTicketResponse(t models.Ticket) TicketResponse {
	resp := TicketResponse{
		Id:    t.ID,
		Date:  t.Date.Format(time.RFC3339),
		Total: t.Total,
	}
	for _, l := range t.Lines {
		resp.Lines = append(resp.Lines, TicketLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Type:      string(l.Type),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return resp
}

// CreateTicketHandler godoc
// @Summary Record a sale
// @Description Commits a multi-line sale against available stock, all-or-nothing
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ticket body TicketRequest true "Ticket lines"
// @Success 201 {object} TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {string} string "Unknown product"
// @Failure 409 {object} map[string]any "Insufficient stock"
// @Router /tickets [post]
func CreateTicketHandler(w http.ResponseWriter, r *http.Request) {
	var req TicketRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	lines := make([]store.LineRequest, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = store.LineRequest{ProductID: l.ProductID, Quantity: l.Quantity}
	}

	ticket, err := tickets.CreateTicket(lines)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	invalidateProductCache()

	writeJSON(w, http.StatusCreated, toTicketResponse(ticket))
}

// GetTicketsHandler godoc
// @Summary List all recorded tickets
// @Tags tickets
// @Produce json
// @Success 200 {array} TicketResponse
// @Failure 404 {string} string "No tickets found"
// @Router /tickets [get]
func GetTicketsHandler(w http.ResponseWriter, r *http.Request) {
	all, err := tickets.Tickets()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	response := make([]TicketResponse, len(all))
	for i, t := range all {
		response[i] = toTicketResponse(t)
	}
	writeJSON(w, http.StatusOK, response)
}

// ShopBenefitsHandler godoc
// @Summary Aggregate revenue over all tickets
// @Tags reports
// @Produce json
// @Success 200 {object} BenefitsResult
// @Failure 404 {string} string "No tickets found"
// @Router /reports/benefits [get]
func ShopBenefitsHandler(w http.ResponseWriter, r *http.Request) {
	benefits, err := tickets.ShopBenefits()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, BenefitsResult{Benefits: benefits})
}
