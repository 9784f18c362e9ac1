package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var in app.CreateReservationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	rv, err := h.Reservations.Create(r.Context(), in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, rv)
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rv, err := h.Reservations.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, rv)
}

func (h *Handlers) updateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in app.UpdateReservationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	rv, err := h.Reservations.Update(r.Context(), id, in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, rv)
}

func (h *Handlers) setReservationStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	rv, err := h.Reservations.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, rv)
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Reservations.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	f := domain.ReservationFilter{
		PropertyID: qInt64(r, "property_id"),
		GuestID:    qInt64(r, "guest_id"),
		Status:     qStr(r, "status"),
		From:       qDate(r, "from"),
		To:         qDate(r, "to"),
	}
	items, meta, err := h.Reservations.List(r.Context(), f, pageQuery(r))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeList(w, items, meta)
}
