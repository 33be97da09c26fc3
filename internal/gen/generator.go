package gen

import (
	"fmt"
	"path/filepath"

	"golang.org/x/tools/imports"

	"model-generator/internal/common"
	"model-generator/internal/plan"
)

// generatedHeader opens every generated file.
const generatedHeader = "Code generated by model-generator. DO NOT EDIT."

// Config holds configuration for code generation.
type Config struct {
	// EntitiesPackagePath is the import path of the entities package.
	EntitiesPackagePath string
	// EntitiesPackageName is the package clause of entity files.
	EntitiesPackageName string
	// EntitiesDir is the directory of entity files, relative to the output root.
	EntitiesDir string
	// DTOPackagePath is the import path of the DTO package.
	DTOPackagePath string
	// DTOPackageName is the package clause of DTO files.
	DTOPackageName string
	// DTODir is the directory of DTO files, relative to the output root.
	DTODir string
	// Extension is appended to "<Model>.Entity." and "<Model>.DTO.".
	Extension string
	// DebugDir receives unformatted sources that failed formatting. Empty
	// disables the sidecar files.
	DebugDir string
}

// Default values of Config.
const (
	DefaultModule      = "example.com/app"
	DefaultEntitiesDir = "entities"
	DefaultDTODir      = "dtos"
	DefaultExtension   = "g.go"
)

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return NewConfig(DefaultModule, DefaultEntitiesDir, DefaultDTODir)
}

// NewConfig derives package paths and names from a module path and the
// entity and DTO directories.
func NewConfig(module, entitiesDir, dtoDir string) Config {
	entitiesPath := common.PkgPath(module, filepath.ToSlash(entitiesDir))
	dtoPath := common.PkgPath(module, filepath.ToSlash(dtoDir))

	return Config{
		EntitiesPackagePath: entitiesPath,
		EntitiesPackageName: common.PkgName(entitiesPath),
		EntitiesDir:         entitiesDir,
		DTOPackagePath:      dtoPath,
		DTOPackageName:      common.PkgName(dtoPath),
		DTODir:              dtoDir,
		Extension:           DefaultExtension,
	}
}

// Generator renders models as Go source. It holds no per-model state and is
// safe for concurrent use.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.config
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the file relative to the output root.
	Dir string
	// Filename is the name of the file (e.g., "Person.Entity.g.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the file path relative to the output root.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders the entity file and the DTO file of one model, in that
// order. Fields without a Go form are left out as Prune does. A model name
// without a Go form fails the whole model and nothing is returned.
func (g *Generator) Generate(m *plan.Model) ([]GeneratedFile, error) {
	if _, err := exportedName(m.Name); err != nil {
		return nil, fmt.Errorf("model name: %w", err)
	}

	m = g.Prune(m)

	entity, err := g.generateEntity(m)
	if err != nil {
		return nil, fmt.Errorf("generating entity %s: %w", m.Name, err)
	}

	dto, err := g.generateDTO(m)
	if err != nil {
		return nil, fmt.Errorf("generating DTO %s: %w", m.Name, err)
	}

	return []GeneratedFile{*entity, *dto}, nil
}

// EntityFilename returns the entity file name of a model.
func (g *Generator) EntityFilename(model string) string {
	return model + ".Entity." + g.config.Extension
}

// DTOFilename returns the DTO file name of a model.
func (g *Generator) DTOFilename(model string) string {
	return model + ".DTO." + g.config.Extension
}

// formatSource tidies imports and formats the code. On failure the raw source
// goes to the debug directory when one is configured.
func (g *Generator) formatSource(filename string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		if g.config.DebugDir != "" {
			_ = writeDebugUnformatted(g.config.DebugDir, filename, src)
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return formatted, nil
}

// checkUniqueNames fails when two schema names share one Go name.
func checkUniqueNames(fields []plan.Field) (map[string]string, error) {
	goNames := make(map[string]string, len(fields))
	seen := make(map[string]string, len(fields))

	for _, f := range fields {
		name, err := exportedName(f.Name)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}

		if other, ok := seen[name]; ok {
			return nil, fmt.Errorf("fields %q and %q both render as %s", other, f.Name, name)
		}

		seen[name] = f.Name
		goNames[f.Name] = name
	}

	return goNames, nil
}
