package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func (h *Handlers) createStaff(w http.ResponseWriter, r *http.Request) {
	var in app.CreateStaffInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	m, err := h.Staff.Create(r.Context(), in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, m)
}

func (h *Handlers) getStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.Staff.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, m)
}

func (h *Handlers) updateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in app.UpdateStaffInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	m, err := h.Staff.Update(r.Context(), id, in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, m)
}

func (h *Handlers) deleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Staff.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *Handlers) listStaff(w http.ResponseWriter, r *http.Request) {
	f := domain.StaffFilter{
		PropertyID: qInt64(r, "property_id"),
		Role:       qStr(r, "role"),
		Active:     qBool(r, "active"),
	}
	items, meta, err := h.Staff.List(r.Context(), f, pageQuery(r))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeList(w, items, meta)
}
