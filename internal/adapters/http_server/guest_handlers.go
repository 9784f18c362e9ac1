package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func (h *Handlers) createGuest(w http.ResponseWriter, r *http.Request) {
	var in app.CreateGuestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	g, err := h.Guests.Create(r.Context(), in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, g)
}

func (h *Handlers) getGuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g, err := h.Guests.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, g)
}

func (h *Handlers) updateGuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in app.UpdateGuestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	g, err := h.Guests.Update(r.Context(), id, in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, g)
}

func (h *Handlers) deleteGuest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Guests.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *Handlers) listGuests(w http.ResponseWriter, r *http.Request) {
	f := domain.GuestFilter{
		Q:   qStr(r, "q"),
		VIP: qBool(r, "vip"),
	}
	items, meta, err := h.Guests.List(r.Context(), f, pageQuery(r))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeList(w, items, meta)
}
