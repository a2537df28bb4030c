package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cadastro/pkg/config"
	"github.com/dmitrymomot/cadastro/pkg/form"
	"github.com/dmitrymomot/cadastro/pkg/rules"
)

const registrationYAML = `
fields:
  - name: nome
    rules: obrigatorio, nome
  - name: email
    rules: [obrigatorio, email]
  - name: telefone
    mask: telefone
    rules: "obrigatorio,telefone"
  - name: cpf
    mask: cpf
    rules:
      - obrigatorio
      - cpf
  - name: nascimento
    mask: data
    rules: obrigatorio, maior-de-idade
`

func TestParseFields(t *testing.T) {
	t.Run("both rule notations", func(t *testing.T) {
		fields, err := config.ParseFields([]byte(registrationYAML))
		require.NoError(t, err)
		assert.Equal(t, form.Registration(), fields)
	})

	t.Run("missing rules is an empty list", func(t *testing.T) {
		fields, err := config.ParseFields([]byte("fields:\n  - name: apelido\n"))
		require.NoError(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "apelido", fields[0].Name)
		assert.Empty(t, fields[0].Rules)
	})

	t.Run("unknown rule in string", func(t *testing.T) {
		_, err := config.ParseFields([]byte("fields:\n  - name: doc\n    rules: obrigatorio, cnpj\n"))
		assert.ErrorIs(t, err, config.ErrParsingFields)
		assert.ErrorIs(t, err, rules.ErrUnknownRule)
	})

	t.Run("unknown rule in list", func(t *testing.T) {
		_, err := config.ParseFields([]byte("fields:\n  - name: doc\n    rules: [cnpj]\n"))
		assert.ErrorIs(t, err, rules.ErrUnknownRule)
	})

	t.Run("rules as a map", func(t *testing.T) {
		_, err := config.ParseFields([]byte("fields:\n  - name: doc\n    rules: {a: b}\n"))
		assert.ErrorIs(t, err, config.ErrParsingFields)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.ParseFields([]byte("fields: [\n"))
		assert.ErrorIs(t, err, config.ErrParsingFields)
	})
}

func TestLoadFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(registrationYAML), 0o600))

	fields, err := config.LoadFields(path)
	require.NoError(t, err)

	f, err := form.New(fields)
	require.NoError(t, err)
	assert.Equal(t, []string{"nome", "email", "telefone", "cpf", "nascimento"}, f.Fields())

	_, err = config.LoadFields(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrReadingFields)
}
