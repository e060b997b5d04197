package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/hogwarts-cloud/sizer/internal/models"
	"github.com/hogwarts-cloud/sizer/internal/report"
	"github.com/hogwarts-cloud/sizer/internal/validate"
	"github.com/hogwarts-cloud/sizer/internal/workbook"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type formPageData struct {
	Groups []formGroup
	Values map[string]any
}

type errorPageData struct {
	Error string
	Field string
}

func (s *Server) formPage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, "form.html", formPageData{
		Groups: formGroups,
		Values: s.defaults.Values(),
	})
}

func (s *Server) calculateForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, http.StatusBadRequest, "error.html", errorPageData{Error: err.Error()})
		return
	}

	requirements, err := decodeForm(s.formDecoder, r.PostForm, s.defaults)
	if err != nil {
		s.renderFormError(w, err)
		return
	}

	result, err := s.calculator.Compute(requirements)
	if err != nil {
		s.renderFormError(w, err)
		return
	}

	buf := &bytes.Buffer{}
	if err := report.RenderHTML(buf, report.Build(requirements, result, s.calculator.Baseline())); err != nil {
		s.logger.Errorf("failed to render report: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) calculateJSON(w http.ResponseWriter, r *http.Request) {
	requirements, result, ok := s.computeJSON(w, r)
	if !ok {
		return
	}

	s.logger.Debugw("calculated", "nodes", result.Nodes, "internal_nfs", requirements.InternalNFS)

	_ = render.Render(w, r, ResultReply{Result: result})
}

func (s *Server) calculateXLSX(w http.ResponseWriter, r *http.Request) {
	requirements, result, ok := s.computeJSON(w, r)
	if !ok {
		return
	}

	buf := &bytes.Buffer{}
	if err := workbook.Export(buf, report.Build(requirements, result, s.calculator.Baseline())); err != nil {
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="report.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) getDefaults(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, DefaultsReply{Requirements: s.defaults})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, HealthReply{Status: "ok"})
}

func (s *Server) computeJSON(w http.ResponseWriter, r *http.Request) (models.Requirements, models.Result, bool) {
	requirements, err := decodeJSON(r.Body, s.defaults)
	if err != nil {
		s.renderError(w, r, err)
		return models.Requirements{}, models.Result{}, false
	}

	result, err := s.calculator.Compute(requirements)
	if err != nil {
		s.renderError(w, r, err)
		return models.Requirements{}, models.Result{}, false
	}

	return requirements, result, true
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	reply := ErrorReply{HTTPStatusCode: http.StatusInternalServerError, Error: err.Error()}

	var fieldErr *validate.FieldError
	switch {
	case errors.As(err, &fieldErr):
		reply.HTTPStatusCode = http.StatusBadRequest
		reply.Field = fieldErr.Field
	case errors.Is(err, validate.ErrInvalidInput):
		reply.HTTPStatusCode = http.StatusBadRequest
	default:
		s.logger.Errorf("request failed: %v", err)
		reply.Error = http.StatusText(http.StatusInternalServerError)
	}

	_ = render.Render(w, r, reply)
}

func (s *Server) renderFormError(w http.ResponseWriter, err error) {
	data := errorPageData{Error: err.Error()}

	var fieldErr *validate.FieldError
	if !errors.As(err, &fieldErr) {
		s.logger.Errorf("form submit failed: %v", err)
		s.renderPage(w, http.StatusInternalServerError, "error.html", errorPageData{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	data.Field = fieldErr.Field
	s.renderPage(w, http.StatusBadRequest, "error.html", data)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data any) {
	buf := &bytes.Buffer{}
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		s.logger.Errorf("failed to execute %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
