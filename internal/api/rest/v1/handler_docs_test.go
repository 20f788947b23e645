//go:build unit
// +build unit

package v1

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerMethods_HaveSwaggerAnnotations(t *testing.T) {
	files, err := filepath.Glob("*_handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()
	methods := 0
	for _, file := range files {
		f, err := parser.ParseFile(fset, file, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || !fn.Name.IsExported() {
				continue
			}
			methods++
			name := file + ":" + fn.Name.Name
			require.NotNil(t, fn.Doc, name)

			doc := fn.Doc.Text()
			for _, tag := range []string{"@Summary", "@Description", "@Tags", "@Produce", "@Success", "@Router"} {
				assert.Contains(t, doc, tag, name)
			}
			if strings.Contains(doc, "{id}") {
				assert.Contains(t, doc, "@Param id path int true", name)
			}
		}
	}
	assert.GreaterOrEqual(t, methods, 45)
}
