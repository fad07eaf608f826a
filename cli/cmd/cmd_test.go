package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/plugin"
)

const notebook = `---
moduleName: Notebook
shape:
  count: int
  label: string
init:
  count: 2
  label: clicks
---

# Counter

~~~elm #total
Html.text (String.fromInt count)
~~~

~~~elm
double : Int -> Int
double n = n * 2
~~~

~~~css
li { color: red; }
~~~

~~~css #wide
ol { width: 100%; }
~~~
`

// run executes fn with stdin holding input and returns what it wrote.
func run(
	t *testing.T,
	input string,
	fn func(context.Context, *plugin.Registry) error,
) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithOutput(WithInput(context.Background(), strings.NewReader(input)), &out)
	err := fn(ctx, plugin.NewRegistry(plugin.Elm))

	return out.String(), err
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nb.md")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o600))

	ctx := WithInput(context.Background(), strings.NewReader("from stdin"))

	for _, src := range []string{"", "-"} {
		data, err := readSource(ctx, src)
		require.NoError(t, err)
		assert.Equal(t, "from stdin", string(data))

		ctx = WithInput(context.Background(), strings.NewReader("from stdin"))
	}

	data, err := readSource(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))

	_, err = readSource(ctx, filepath.Join(t.TempDir(), "missing.md"))
	require.ErrorIs(t, err, pkg.ErrReadInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, os.Stdin, inputFrom(ctx))
	assert.Equal(t, os.Stdout, outputFrom(ctx))
	assert.Nil(t, kongContextFrom(ctx))
}

func TestLoad_ParseError(t *testing.T) {
	_, err := run(t, "---\nshape: [\n---\n", func(ctx context.Context, reg *plugin.Registry) error {
		_, err := load(ctx, reg, "-")

		return err
	})

	require.ErrorIs(t, err, pkg.ErrParseWorkbook)
}
