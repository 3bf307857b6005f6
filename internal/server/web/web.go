// Package web serves the browser UI: plain HTML forms over the same
// services the JSON API uses. Each form submit runs to completion before
// the page re-renders; there is no client-side state.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	logger    log.Logger
	assets    *asset.Service
	refs      *reference.Service
	templates *template.Template
}

func NewHandler(logger log.Logger, assets *asset.Service, refs *reference.Service) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing web templates: %w", err)
	}
	return &Handler{
		logger:    logger,
		assets:    assets,
		refs:      refs,
		templates: templates,
	}, nil
}

type indexData struct {
	Countries     []reference.Entry
	Manufacturers []reference.Entry
	Recent        []asset.Asset
	Stats         asset.Stats
	Generated     []asset.Asset
	Message       string
	Error         string
}

type listsData struct {
	Countries     []reference.Entry
	Manufacturers []reference.Entry
	Message       string
	Error         string
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := h.buildIndexData(r)
	if err != nil {
		h.renderError(w, err)
		return
	}
	data.Message = r.URL.Query().Get("msg")
	data.Error = r.URL.Query().Get("err")
	h.render(w, "index.html", data)
}

// Generate handles the tag generation form and renders the issued tags on
// the same page.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	count := 1
	if parsed, err := strconv.Atoi(r.PostFormValue("count")); err == nil {
		count = parsed
	}

	generated, err := h.assets.GenerateTags(
		r.Context(),
		r.PostFormValue("country_code"),
		r.PostFormValue("manufacturer_code"),
		strings.TrimSpace(r.PostFormValue("name")),
		count,
	)

	data, buildErr := h.buildIndexData(r)
	if buildErr != nil {
		h.renderError(w, buildErr)
		return
	}
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Generated = generated
		data.Message = fmt.Sprintf("Generated %d tags", len(generated))
	}
	h.render(w, "index.html", data)
}

// Import handles the pasted-tags form.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	imported, err := h.assets.Import(r.Context(), r.PostFormValue("tags"))

	data, buildErr := h.buildIndexData(r)
	if buildErr != nil {
		h.renderError(w, buildErr)
		return
	}
	if err != nil {
		if errors.As(err, new(asset.ValidationError)) {
			data.Error = "No tags could be imported. Check the format."
		} else {
			data.Error = err.Error()
		}
	} else {
		data.Message = fmt.Sprintf("Imported %d tags", len(imported))
	}
	h.render(w, "index.html", data)
}

func (h *Handler) Lists(w http.ResponseWriter, r *http.Request) {
	data, err := h.buildListsData(r)
	if err != nil {
		h.renderError(w, err)
		return
	}
	data.Message = r.URL.Query().Get("msg")
	data.Error = r.URL.Query().Get("err")
	h.render(w, "lists.html", data)
}

// AddEntry handles the add-country / add-manufacturer forms.
func (h *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromVars(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	entry := reference.Entry{
		Code: strings.ToUpper(strings.TrimSpace(r.PostFormValue("code"))),
		Name: strings.TrimSpace(r.PostFormValue("name")),
	}
	if err := h.refs.Add(r.Context(), kind, entry); err != nil {
		h.redirectLists(w, r, "", err.Error())
		return
	}
	h.redirectLists(w, r, fmt.Sprintf("Added %s", entry.Code), "")
}

// RemoveEntry handles the per-row remove buttons.
func (h *Handler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindFromVars(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderError(w, err)
		return
	}

	code := r.PostFormValue("code")
	if err := h.refs.Remove(r.Context(), kind, code); err != nil {
		h.redirectLists(w, r, "", err.Error())
		return
	}
	h.redirectLists(w, r, fmt.Sprintf("Removed %s", code), "")
}

func (h *Handler) buildIndexData(r *http.Request) (indexData, error) {
	var data indexData
	var err error

	if data.Countries, err = h.refs.GetAll(r.Context(), reference.KindCountry); err != nil {
		return data, err
	}
	if data.Manufacturers, err = h.refs.GetAll(r.Context(), reference.KindManufacturer); err != nil {
		return data, err
	}
	if data.Recent, err = h.assets.Recent(r.Context(), 10); err != nil {
		return data, err
	}
	if data.Stats, err = h.assets.Stats(r.Context()); err != nil {
		return data, err
	}
	return data, nil
}

func (h *Handler) buildListsData(r *http.Request) (listsData, error) {
	var data listsData
	var err error

	if data.Countries, err = h.refs.GetAll(r.Context(), reference.KindCountry); err != nil {
		return data, err
	}
	if data.Manufacturers, err = h.refs.GetAll(r.Context(), reference.KindManufacturer); err != nil {
		return data, err
	}
	return data, nil
}

func (h *Handler) redirectLists(w http.ResponseWriter, r *http.Request, msg, errMsg string) {
	target := "/lists"
	if errMsg != "" {
		target += "?err=" + template.URLQueryEscaper(errMsg)
	} else if msg != "" {
		target += "?msg=" + template.URLQueryEscaper(msg)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("content-type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("error rendering template", "template", name, "err", err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, err error) {
	h.logger.Error("error serving web page", "err", err)
	http.Error(w, "error processing request", http.StatusInternalServerError)
}

func kindFromVars(r *http.Request) (reference.Kind, bool) {
	switch mux.Vars(r)["kind"] {
	case "countries":
		return reference.KindCountry, true
	case "manufacturers":
		return reference.KindManufacturer, true
	}
	return "", false
}
