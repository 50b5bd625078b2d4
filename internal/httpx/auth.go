package httpx

import (
	"github.com/ariefcatur/go-storefront/internal/auth"
	"net/http"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in auth.RegisterInput
	if !decode(w, r, &in) {
		return
	}
	u, err := h.Store.Auth().Register(r.Context(), in)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u.Public())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"` // email, or username for admin
		Password   string `json:"password"`
		Admin      bool   `json:"admin"`
	}
	if !decode(w, r, &req) {
		return
	}
	res, err := h.Store.Auth().Login(r.Context(), req.Identifier, req.Password, req.Admin)
	if err != nil {
		fail(w, err)
		return
	}
	code := http.StatusOK
	if !res.Success {
		code = http.StatusUnauthorized
	}
	writeJSON(w, code, res)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Auth().Logout(r.Context()); err != nil {
		fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	a := h.Store.Auth()
	out := map[string]any{
		"authenticated": a.IsAuthenticated(),
		"admin":         a.IsAdmin(),
	}
	if u, ok := a.CurrentUser(); ok {
		out["user"] = u.Public()
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var patch auth.ProfilePatch
	if !decode(w, r, &patch) {
		return
	}
	u, err := h.Store.Auth().UpdateProfile(r.Context(), patch)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}
