package wire

import (
	"laundry-hub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// POST /users/ - register a new user (public)
	r.Post("/users/", userHandler.CreateUser)
}
