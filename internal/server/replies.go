package server

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/hogwarts-cloud/sizer/internal/models"
)

type ResultReply struct {
	models.Result
}

func (ResultReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type DefaultsReply struct {
	models.Requirements
}

func (DefaultsReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type HealthReply struct {
	Status string `json:"status"`
}

func (HealthReply) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type ErrorReply struct {
	HTTPStatusCode int    `json:"-"`
	Error          string `json:"error"`
	Field          string `json:"field,omitempty"`
}

func (e ErrorReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}
