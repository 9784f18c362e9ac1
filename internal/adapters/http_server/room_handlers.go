package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var in app.CreateRoomInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	rm, err := h.Rooms.Create(r.Context(), in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusCreated, rm)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rm, err := h.Rooms.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, rm)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in app.UpdateRoomInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	rm, err := h.Rooms.Update(r.Context(), id, in)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, rm)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Rooms.Delete(r.Context(), id); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	f := domain.RoomFilter{
		PropertyID: qInt64(r, "property_id"),
		Status:     qStr(r, "status"),
		Floor:      qStr(r, "floor"),
	}
	items, meta, err := h.Rooms.List(r.Context(), f, pageQuery(r))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeList(w, items, meta)
}
