package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/auth"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type Handlers struct {
	Auth         *app.AuthService
	Properties   *app.PropertyService
	Rooms        *app.RoomService
	Guests       *app.GuestService
	Reservations *app.ReservationService
	Staff        *app.StaffService
	Users        *app.UserService
	Transactions *app.TransactionService
	Dashboard    *app.DashboardService
	JWT          *auth.JWT
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/auth/login", h.login)

	s.mux.Group(func(r chi.Router) {
		r.Use(Auth(h.JWT))

		r.Get("/v1/auth/me", h.me)
		r.Get("/v1/dashboard/summary", h.dashboardSummary)

		r.Route("/v1/properties", func(r chi.Router) {
			r.Post("/", h.createProperty)
			r.Get("/", h.listProperties)
			r.Get("/{id}", h.getProperty)
			r.Patch("/{id}", h.updateProperty)
			r.Delete("/{id}", h.deleteProperty)
		})
		r.Route("/v1/rooms", func(r chi.Router) {
			r.Post("/", h.createRoom)
			r.Get("/", h.listRooms)
			r.Get("/{id}", h.getRoom)
			r.Patch("/{id}", h.updateRoom)
			r.Delete("/{id}", h.deleteRoom)
		})
		r.Route("/v1/guests", func(r chi.Router) {
			r.Post("/", h.createGuest)
			r.Get("/", h.listGuests)
			r.Get("/{id}", h.getGuest)
			r.Patch("/{id}", h.updateGuest)
			r.Delete("/{id}", h.deleteGuest)
		})
		r.Route("/v1/reservations", func(r chi.Router) {
			r.Post("/", h.createReservation)
			r.Get("/", h.listReservations)
			r.Get("/{id}", h.getReservation)
			r.Patch("/{id}", h.updateReservation)
			r.Patch("/{id}/status", h.setReservationStatus)
			r.Delete("/{id}", h.deleteReservation)
		})
		r.Route("/v1/staff", func(r chi.Router) {
			r.Post("/", h.createStaff)
			r.Get("/", h.listStaff)
			r.Get("/{id}", h.getStaff)
			r.Patch("/{id}", h.updateStaff)
			r.Delete("/{id}", h.deleteStaff)
		})
		r.Route("/v1/users", func(r chi.Router) {
			r.Post("/", h.createUser)
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
		r.Route("/v1/transactions", func(r chi.Router) {
			r.Post("/", h.createTransaction)
			r.Get("/", h.listTransactions)
			r.Get("/{id}", h.getTransaction)
			r.Delete("/{id}", h.deleteTransaction)
		})
	})
}

// ---- auth ----

// userView strips the password hash from user responses.
type userView struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	PropertyID *int64    `json:"property_id,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toUserView(u domain.User) userView {
	return userView{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		PropertyID: u.PropertyID,
		Active:     u.Active,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var in app.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	sess, err := h.Auth.Login(r.Context(), in)
	if err != nil {
		// credential failures come back as 401, not 400
		writeError(w, http.StatusUnauthorized, "bad credentials")
		return
	}
	writeData(w, http.StatusOK, map[string]any{
		"token":      sess.Token,
		"expires_at": sess.ExpiresAt,
		"user":       toUserView(sess.User),
	})
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing claims")
		return
	}
	u, err := h.Auth.Me(r.Context(), claims.UserID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, toUserView(u))
}

// ---- dashboard ----

func (h *Handlers) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	pid := qInt64(r, "property_id")
	if pid == nil {
		writeError(w, http.StatusBadRequest, "property_id is required")
		return
	}
	out, err := h.Dashboard.Summary(r.Context(), *pid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeData(w, http.StatusOK, out)
}
