// Package yamlpatch loads patch files written in YAML into the
// format-agnostic config.Patch model.
//
//	nodes:
//	  - kind: oscillator
//	    name: osc
//	    inputs: {enabled: true, freq: 220}
//	wires:
//	  - from: osc.signal
//	    to: out.signal
package yamlpatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/nodesynth/internal/config"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions handled by this loader.
var Extensions = []string{".yaml", ".yml"}

type document struct {
	Nodes []nodeEntry `yaml:"nodes"`
	Wires []wireEntry `yaml:"wires"`
}

type nodeEntry struct {
	Kind   string         `yaml:"kind"`
	Name   string         `yaml:"name"`
	Inputs map[string]any `yaml:"inputs"`
	line   int
}

func (e *nodeEntry) UnmarshalYAML(value *yaml.Node) error {
	type plain nodeEntry
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = value.Line
	return nil
}

type wireEntry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	line int
}

func (e *wireEntry) UnmarshalYAML(value *yaml.Node) error {
	type plain wireEntry
	if err := value.Decode((*plain)(e)); err != nil {
		return err
	}
	e.line = value.Line
	return nil
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML patch loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every file and merges them into one patch.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Patch, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file_count", len(paths))

	patch := &config.Patch{}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}
		filePatch, err := l.LoadSource(src, path)
		if err != nil {
			return nil, err
		}
		if err := patch.Merge(filePatch); err != nil {
			return nil, err
		}
	}

	logger.Debug("YAML loading complete.", "nodes", len(patch.Nodes), "wires", len(patch.Wires))
	return patch, nil
}

// LoadSource decodes a single in-memory document.
func (l *Loader) LoadSource(src []byte, filename string) (*config.Patch, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	patch := &config.Patch{}
	for _, entry := range doc.Nodes {
		src := fmt.Sprintf("%s:%d", filename, entry.line)
		if entry.Kind == "" {
			return nil, fmt.Errorf("%s: node without kind", src)
		}
		decl := &config.NodeDecl{
			Kind:   entry.Kind,
			Name:   entry.Name,
			Inputs: make(map[string]cty.Value, len(entry.Inputs)),
			Source: src,
		}
		for name, raw := range entry.Inputs {
			v, err := toCty(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: input %q: %w", src, name, err)
			}
			decl.Inputs[name] = v
		}
		if err := patch.Merge(&config.Patch{Nodes: []*config.NodeDecl{decl}}); err != nil {
			return nil, err
		}
	}
	for _, entry := range doc.Wires {
		src := fmt.Sprintf("%s:%d", filename, entry.line)
		if entry.From == "" || entry.To == "" {
			return nil, fmt.Errorf("%s: wire needs both from and to", src)
		}
		patch.Wires = append(patch.Wires, &config.WireDecl{From: entry.From, To: entry.To, Source: src})
	}
	return patch, nil
}

// toCty converts the scalar YAML values an input can hold.
func toCty(raw any) (cty.Value, error) {
	switch v := raw.(type) {
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float64:
		return cty.NumberFloatVal(v), nil
	case string:
		return cty.StringVal(v), nil
	case nil:
		return cty.NilVal, fmt.Errorf("value is empty")
	}
	return cty.NilVal, fmt.Errorf("unsupported value of type %T", raw)
}
