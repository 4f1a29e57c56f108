package analysis

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var catalogTOML []byte

// Catalog is the suppression vocabulary: the inline marker, the
// distinguished logging facility type, the built-in ignore-set members and
// the parameter annotation names that mark an argument slot as not
// user-facing. The built-in catalog ships embedded in the binary; treat
// returned values as read-only.
type Catalog struct {
	Marker           string   `toml:"marker"`
	LoggerType       string   `toml:"logger_type"`
	IgnoreTypes      []string `toml:"ignore_types"`
	ParamAnnotations []string `toml:"param_annotations"`
}

var builtin Catalog

func init() {
	if err := toml.Unmarshal(catalogTOML, &builtin); err != nil {
		panic(fmt.Sprintf("analysis: embedded catalog is invalid: %v", err))
	}
	if builtin.Marker == "" || builtin.LoggerType == "" {
		panic("analysis: embedded catalog is incomplete")
	}
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	return builtin
}
