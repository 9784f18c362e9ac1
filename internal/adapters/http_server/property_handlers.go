package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	var in app.CreatePropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	p, err := h.Properties.Create(r.Context(), in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, p)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.Properties.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *Handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in app.UpdatePropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	p, err := h.Properties.Update(r.Context(), id, in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, p)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Properties.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	f := domain.PropertyFilter{Q: qStr(r, "q")}
	items, meta, err := h.Properties.List(r.Context(), f, pageQuery(r))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeList(w, items, meta)
}
