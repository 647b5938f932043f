package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID                         uint
	FirstName, LastName, Email string
}

func TestTemplates(t *testing.T) {
	t.Parallel()

	tmpl := Templates()

	require.NotNil(t, tmpl.Lookup("users.html"))
	require.NotNil(t, tmpl.Lookup("user.html"))
}

func TestTemplates_EscapeUserInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "users.html", map[string]any{
		"users": []row{{ID: 1, FirstName: "<script>", LastName: "O'Hara", Email: "x@example.com"}},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.NotContains(t, buf.String(), "<script>")
}

func TestTemplates_UserPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, "user.html", map[string]any{
		"user": row{ID: 7, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<h1>Grace Hopper</h1>")
	assert.Contains(t, buf.String(), `action="/users/7"`)
	assert.Contains(t, buf.String(), `name="_METHOD" value="DELETE"`)
}
