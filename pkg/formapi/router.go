package formapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cadastro/pkg/form"
	"github.com/dmitrymomot/cadastro/pkg/logger"
	"github.com/dmitrymomot/cadastro/pkg/mask"
	"github.com/dmitrymomot/cadastro/pkg/requestid"
	"github.com/dmitrymomot/cadastro/pkg/validator"
)

const maxBodyBytes = 64 << 10

type api struct {
	form *form.Form
	log  *slog.Logger
}

type blurRequest struct {
	Value string `json:"value"`
}

type submitRequest struct {
	Values map[string]string `json:"values"`
}

// Router mounts the form endpoints. A nil logger discards records.
func Router(f *form.Form, log *slog.Logger) chi.Router {
	if log == nil {
		log = logger.Discard()
	}
	a := &api{form: f, log: log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Route("/fields/{field}", func(r chi.Router) {
		r.Post("/input", a.input)
		r.Post("/blur", a.blur)
	})
	r.Post("/submit", a.submit)

	return r
}

func (a *api) input(w http.ResponseWriter, r *http.Request) {
	var in mask.Input
	if !a.decode(w, r, &in) {
		return
	}

	out, err := a.form.Input(chi.URLParam(r, "field"), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: out})
}

func (a *api) blur(w http.ResponseWriter, r *http.Request) {
	var req blurRequest
	if !a.decode(w, r, &req) {
		return
	}

	res, err := a.form.BlurContext(r.Context(), chi.URLParam(r, "field"), req.Value)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: res})
}

func (a *api) submit(w http.ResponseWriter, r *http.Request) {
	values, ok := a.submittedValues(w, r)
	if !ok {
		return
	}

	report, err := a.form.SubmitContext(r.Context(), values)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	verrs := validator.ExtractValidationErrors(report.Err())
	if verrs == nil {
		writeJSON(w, http.StatusOK, Response{Data: report})
		return
	}

	details := make(map[string][]string, len(verrs))
	for _, field := range verrs.Fields() {
		details[field] = verrs.Get(field)
	}
	writeJSON(w, http.StatusUnprocessableEntity, Response{
		Data: report,
		Error: &ErrorDetail{
			Code:    codeValidationFailed,
			Message: validator.ErrValidationFailed.Error(),
			Details: details,
		},
	})
}

// submittedValues accepts a JSON body or a plain HTML form post. For repeated
// form keys the first value is used.
func (a *api) submittedValues(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/x-www-form-urlencoded" {
		var req submitRequest
		if !a.decode(w, r, &req) {
			return nil, false
		}
		return req.Values, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		a.log.DebugContext(r.Context(), "invalid form body", logger.Error(err))
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid form body")
		return nil, false
	}

	values := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		values[name] = r.PostForm.Get(name)
	}
	return values, true
}

func (a *api) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		a.log.DebugContext(r.Context(), "invalid request body", logger.Error(err))
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid JSON body")
		return false
	}
	return true
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, form.ErrUnknownField) {
		writeError(w, http.StatusNotFound, codeUnknownField, err.Error())
		return
	}
	a.log.ErrorContext(r.Context(), "form request failed", logger.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError))
}
