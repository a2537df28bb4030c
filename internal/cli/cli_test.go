package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cadastro/pkg/form"
	"github.com/dmitrymomot/cadastro/pkg/mask"
	"github.com/dmitrymomot/cadastro/pkg/rules"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMaskCmd(t *testing.T) {
	out, err := run(t, "mask", "telefone", "11987654321")
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321\n", out)

	out, err = run(t, "mask", "cpf", "52998224725")
	require.NoError(t, err)
	assert.Equal(t, "529.982.247-25\n", out)

	_, err = run(t, "mask", "cep", "01310100")
	assert.ErrorIs(t, err, mask.ErrUnknownKind)

	_, err = run(t, "mask", "cpf")
	assert.Error(t, err)
}

func TestRulesCmd(t *testing.T) {
	out, err := run(t, "rules")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(rules.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "obrigatorio"))
	assert.Contains(t, lines[5], "maior-de-idade")
	assert.Contains(t, lines[5], "É necessário ser maior de 18 anos.")
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "check", "cpf", "111.111.111-11")
	assert.ErrorIs(t, err, errInvalid)
	assert.Equal(t, "cpf: CPF inválido. (cpf)\n", out)

	out, err = run(t, "--today", "2026-10-18", "check", "nascimento", "18/10/2008")
	require.NoError(t, err)
	assert.Equal(t, "nascimento: ok\n", out)

	_, err = run(t, "--today", "2026-10-17", "check", "nascimento", "18/10/2008")
	assert.ErrorIs(t, err, errInvalid)

	_, err = run(t, "check", "cep", "01310-100")
	assert.ErrorIs(t, err, form.ErrUnknownField)

	_, err = run(t, "--today", "18/10/2026", "check", "nome", "Ana")
	assert.ErrorContains(t, err, "invalid --today")
}

func TestSubmitCmd(t *testing.T) {
	args := []string{
		"--today", "2026-10-18", "submit",
		"nome=Ana Souza",
		"email=ana@example.com",
		"telefone=(11) 98765-4321",
		"cpf=529.982.247-25",
		"nascimento=18/10/2008",
	}
	out, err := run(t, args...)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, form.SuccessMessage+"\n"))

	out, err = run(t, "submit", "nome=Al")
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "nome: Informe pelo menos 3 caracteres. (nome)")
	assert.Contains(t, out, "email: Campo obrigatório. (obrigatorio)")

	_, err = run(t, "submit", "nome")
	assert.ErrorContains(t, err, "expected field=value")
}

func TestFieldsFlag(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "fields.yaml")
	require.NoError(t, os.WriteFile(good, []byte("fields:\n  - name: documento\n    mask: cpf\n    rules: obrigatorio, cpf\n"), 0o600))

	out, err := run(t, "--fields", good, "check", "documento", "529.982.247-25")
	require.NoError(t, err)
	assert.Equal(t, "documento: ok\n", out)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fields:\n  - name: documento\n    rules: cnpj\n"), 0o600))

	_, err = run(t, "--fields", bad, "check", "documento", "x")
	assert.ErrorIs(t, err, rules.ErrUnknownRule)

	t.Setenv("FORM_FIELDS_FILE", good)
	out, err = run(t, "check", "documento", "")
	assert.ErrorIs(t, err, errInvalid)
	assert.Equal(t, "documento: Campo obrigatório. (obrigatorio)\n", out)
}
