package formapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cadastro/pkg/form"
	"github.com/dmitrymomot/cadastro/pkg/formapi"
	"github.com/dmitrymomot/cadastro/pkg/requestid"
)

type envelope struct {
	Data  json.RawMessage      `json:"data"`
	Error *formapi.ErrorDetail `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	f, err := form.New(form.Registration(), form.WithClock(func() time.Time {
		return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	return formapi.Router(f, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealthz(t *testing.T) {
	rec, _ := do(t, newRouter(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}

func TestInput(t *testing.T) {
	h := newRouter(t)

	rec, env := do(t, h, http.MethodPost, "/fields/telefone/input", `{"value":"119","caret":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"value":"(11) 9","caret":6}`, string(env.Data))

	rec, env = do(t, h, http.MethodPost, "/fields/cep/input", `{"value":"1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "unknown_field", env.Error.Code)
}

func TestBlur(t *testing.T) {
	h := newRouter(t)

	rec, env := do(t, h, http.MethodPost, "/fields/cpf/blur", `{"value":"111.111.111-11"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"field":"cpf","valid":false,"rule":"cpf","message":"CPF inválido."}`, string(env.Data))

	rec, env = do(t, h, http.MethodPost, "/fields/nascimento/blur", `{"value":"18/10/2008"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"field":"nascimento","valid":true}`, string(env.Data))
}

func TestSubmit(t *testing.T) {
	h := newRouter(t)

	t.Run("valid", func(t *testing.T) {
		body := `{"values":{"nome":"Ana Souza","email":"ana@example.com","telefone":"(11) 98765-4321","cpf":"529.982.247-25","nascimento":"18/10/2008"}}`
		rec, env := do(t, h, http.MethodPost, "/submit", body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, env.Error)

		var report form.Report
		require.NoError(t, json.Unmarshal(env.Data, &report))
		assert.True(t, report.Valid)
		assert.Equal(t, form.SuccessMessage, report.Message)
	})

	t.Run("invalid", func(t *testing.T) {
		body := `{"values":{"nome":"Al","email":"ana@example.com","telefone":"(11) 98765-4321","cpf":"123.456.789-00","nascimento":"19/10/2008"}}`
		rec, env := do(t, h, http.MethodPost, "/submit", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_failed", env.Error.Code)
		assert.Equal(t, map[string][]string{
			"nome":       {"Informe pelo menos 3 caracteres."},
			"cpf":        {"CPF inválido."},
			"nascimento": {"É necessário ser maior de 18 anos."},
		}, env.Error.Details)
	})

	t.Run("html form post", func(t *testing.T) {
		body := url.Values{
			"nome":       {"Ana Souza"},
			"email":      {"ana@example.com"},
			"telefone":   {"(11) 3456-7890"},
			"cpf":        {"123.456.789-09"},
			"nascimento": {"01/01/1990"},
		}
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":true`)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/submit", `{"values":{"cep":"01310-100"}}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_field", env.Error.Code)
	})
}

func TestBadRequests(t *testing.T) {
	h := newRouter(t)

	for _, body := range []string{"", "{", `{"value":1}`, `{"unexpected":"x"}`} {
		rec, env := do(t, h, http.MethodPost, "/fields/cpf/blur", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		require.NotNil(t, env.Error, "body %q", body)
		assert.Equal(t, "invalid_request", env.Error.Code)
	}

	rec, _ := do(t, h, http.MethodGet, "/submit", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
