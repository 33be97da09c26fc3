package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"model-generator/internal/plan"
)

const (
	personXML = `<Model name="Person">
  <Property name="id" type="int" inEntity="true" inDTO="true"/>
  <Property name="address" type="Address" inEntity="true" inDTO="true"/>
</Model>`
	addressXML = `<Model name="Address">
  <Property name="street" type="string" inEntity="true" inDTO="true"/>
  <Property name="zip" type="string" inEntity="true" inDto="true"/>
</Model>`
)

func schemaTree(t *testing.T, docs map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for rel, content := range docs {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := NewApp()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	// Point at an empty config so a file in the working directory is ignored.
	cfgPath := filepath.Join(t.TempDir(), "model-generator.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{}\n"), 0o644))
	root.SetArgs(append(args, "--config", cfgPath))

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGen(t *testing.T) {
	t.Parallel()

	schemas := schemaTree(t, map[string]string{
		"person.model.xml":      personXML,
		"geo/address.model.xml": addressXML,
		"broken.model.xml":      "<Model",
	})
	out := t.TempDir()

	_, logs, err := run(t, "gen", "-s", schemas, "-o", out, "-m", "github.com/acme/shop", "-j", "2")
	require.NoError(t, err)

	for _, rel := range []string{
		"entities/Person.Entity.g.go",
		"dtos/Person.DTO.g.go",
		"entities/Address.Entity.g.go",
		"dtos/Address.DTO.g.go",
	} {
		assert.FileExists(t, filepath.Join(out, filepath.FromSlash(rel)))
	}

	dto, err := os.ReadFile(filepath.Join(out, "dtos", "Person.DTO.g.go"))
	require.NoError(t, err)
	assert.Contains(t, string(dto), `"github.com/acme/shop/entities"`)

	assert.Contains(t, logs, "skipped unit")
	assert.Contains(t, logs, "broken.model.xml")
	assert.Contains(t, logs, "unknown_attribute")
	assert.Contains(t, logs, "skipped=1")
}

func TestGen_DryRun(t *testing.T) {
	t.Parallel()

	schemas := schemaTree(t, map[string]string{"person.model.xml": personXML})
	out := t.TempDir()

	stdout, _, err := run(t, "gen", "--dry-run", "-s", schemas, "-o", out)
	require.NoError(t, err)

	assert.Contains(t, stdout, filepath.Join("entities", "Person.Entity.g.go"))
	assert.Contains(t, stdout, filepath.Join("dtos", "Person.DTO.g.go"))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	clean := schemaTree(t, map[string]string{"person.model.xml": personXML})

	_, _, err := run(t, "check", "--strict", "-s", clean)
	require.NoError(t, err)

	dirty := schemaTree(t, map[string]string{"address.model.xml": addressXML})

	_, _, err = run(t, "check", "-s", dirty)
	require.NoError(t, err)

	_, logs, err := run(t, "check", "--strict", "-s", dirty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 warnings")
	assert.Contains(t, logs, "inDTO")
}

func TestInspect(t *testing.T) {
	t.Parallel()

	schemas := schemaTree(t, map[string]string{"person.model.xml": personXML})

	stdout, _, err := run(t, "inspect", filepath.Join(schemas, "person.model.xml"))
	require.NoError(t, err)

	var got plan.ExportFile
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Models, 1)
	assert.Equal(t, "Person", got.Models[0].Name)
	assert.Len(t, got.Models[0].Fields, 2)

	stdout, _, err = run(t, "inspect", "-s", schemas)
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: Person")

	_, _, err = run(t, "inspect", filepath.Join(schemas, "missing.model.xml"))
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "gen", "--pattern", "[bad", "-s", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern")
}
