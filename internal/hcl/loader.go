package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/nodesynth/internal/config"
	"github.com/specialistvlad/nodesynth/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension handled by this loader.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL patch loader.
func NewLoader() *Loader {
	return &Loader{}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "node", LabelNames: []string{"kind", "name"}},
		{Type: "wire"},
	},
}

// nodeBody is the content of a `node` block.
type nodeBody struct {
	Inputs *inputsBlock `hcl:"inputs,block"`
}

// inputsBlock holds free-form input assignments.
type inputsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// wireBody is the content of a `wire` block.
type wireBody struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Load parses every file and merges them into one patch.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Patch, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file_count", len(paths))

	parser := hclparse.NewParser()
	patch := &config.Patch{}
	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		filePatch, err := l.decodeFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, err)
		}
		if err := patch.Merge(filePatch); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "nodes", len(patch.Nodes), "wires", len(patch.Wires))
	return patch, nil
}

// LoadSource parses a single in-memory document. filename is only used in
// messages.
func (l *Loader) LoadSource(src []byte, filename string) (*config.Patch, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	return l.decodeFile(file)
}

func (l *Loader) decodeFile(file *hcl.File) (*config.Patch, error) {
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	patch := &config.Patch{}
	for _, block := range content.Blocks {
		switch block.Type {
		case "node":
			decl, diags := decodeNode(block)
			if diags.HasErrors() {
				return nil, diags
			}
			if err := patch.Merge(&config.Patch{Nodes: []*config.NodeDecl{decl}}); err != nil {
				return nil, err
			}
		case "wire":
			var body wireBody
			if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
				return nil, diags
			}
			patch.Wires = append(patch.Wires, &config.WireDecl{
				From:   body.From,
				To:     body.To,
				Source: source(block.DefRange),
			})
		}
	}
	return patch, nil
}

func decodeNode(block *hcl.Block) (*config.NodeDecl, hcl.Diagnostics) {
	decl := &config.NodeDecl{
		Kind:   block.Labels[0],
		Name:   block.Labels[1],
		Inputs: make(map[string]cty.Value),
		Source: source(block.DefRange),
	}

	var body nodeBody
	if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
		return nil, diags
	}
	if body.Inputs == nil {
		return decl, nil
	}

	attrs, diags := body.Inputs.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	for name, attr := range attrs {
		v, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		decl.Inputs[name] = v
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return decl, nil
}

func source(r hcl.Range) string {
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}
