package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v2"
)

const (
	typeMenu    = "menu"
	typeRoutine = "routine"
	typeModule  = "module"
)

// manifest is one entry file. The same shape is read from YAML and HCL.
type manifest struct {
	ID          string            `yaml:"id" hcl:"id,optional"`
	ShortName   string            `yaml:"short_name" hcl:"short_name,optional"`
	DisplayName string            `yaml:"display_name" hcl:"display_name,optional"`
	Type        string            `yaml:"type" hcl:"type,optional"`
	SubMenu     string            `yaml:"sub_menu" hcl:"sub_menu,optional"`
	Command     string            `yaml:"command" hcl:"command,optional"`
	Workdir     string            `yaml:"workdir" hcl:"workdir,optional"`
	Environment map[string]string `yaml:"environment" hcl:"environment,optional"`
	Confirm     bool              `yaml:"confirm" hcl:"confirm,optional"`
}

type decoder func(filename string, content []byte) (*manifest, error)

var decoders = map[string]decoder{
	".yaml": decodeYaml,
	".yml":  decodeYaml,
	".hcl":  decodeHcl,
}

func decoderFor(filename string) (decoder, string, bool) {
	extension := filepath.Ext(filename)
	found, ok := decoders[strings.ToLower(extension)]
	return found, extension, ok
}

func decodeYaml(filename string, content []byte) (*manifest, error) {
	result := &manifest{}
	if err := yaml.UnmarshalStrict(content, result); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeHcl(filename string, content []byte) (*manifest, error) {
	result := &manifest{}
	name := filepath.Base(filename)
	if !strings.HasSuffix(name, ".hcl") {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".hcl"
	}
	if err := hclsimple.Decode(name, content, evalContext(filename), result); err != nil {
		return nil, err
	}
	return result, nil
}

// evalContext exposes env.NAME and manifest.dir / manifest.name to HCL
// expressions, e.g. workdir = "${manifest.dir}/scripts".
func evalContext(filename string) *hcl.EvalContext {
	environment := make(map[string]cty.Value)
	for _, pair := range os.Environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || len(name) == 0 {
			continue
		}
		environment[name] = cty.StringVal(value)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(environment),
			"manifest": cty.ObjectVal(map[string]cty.Value{
				"dir":  cty.StringVal(filepath.Dir(filename)),
				"name": cty.StringVal(filepath.Base(filename)),
			}),
		},
	}
}

func (it *manifest) kind() string {
	switch strings.ToLower(strings.TrimSpace(it.Type)) {
	case typeMenu:
		return typeMenu
	case typeRoutine, typeModule:
		return typeRoutine
	}
	return ""
}

// missing lists required fields that are absent, in a stable order.
func (it *manifest) missing() []string {
	result := []string{}
	if len(strings.TrimSpace(it.ShortName)) == 0 {
		result = append(result, "short_name")
	}
	if len(strings.TrimSpace(it.DisplayName)) == 0 {
		result = append(result, "display_name")
	}
	switch it.kind() {
	case typeMenu:
		if len(strings.TrimSpace(it.SubMenu)) == 0 {
			result = append(result, "sub_menu")
		}
	case typeRoutine:
		if len(strings.TrimSpace(it.Command)) == 0 {
			result = append(result, "command")
		}
	default:
		result = append(result, "type")
	}
	return result
}

func (it *manifest) environment() []string {
	result := os.Environ()
	names := make([]string, 0, len(it.Environment))
	for name := range it.Environment {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result = append(result, fmt.Sprintf("%s=%s", name, it.Environment[name]))
	}
	return result
}
