package workflow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nao1215/n8nlint/internal/model"
	"gopkg.in/yaml.v3"
)

// stickyNoteType is the canvas annotation node. It never takes part in
// connections.
const stickyNoteType = "n8n-nodes-base.stickyNote"

// checker accumulates findings for one document.
type checker struct {
	file       string
	deprecated map[string]bool
	findings   []model.Finding
}

// add records a finding with the file path attached.
func (c *checker) add(severity, message string, line int, opts ...model.FindingOption) {
	opts = append([]model.FindingOption{model.WithFile(c.file), model.WithLine(line)}, opts...)
	c.findings = append(c.findings, model.NewFinding(severity, message, opts...))
}

// node is the information later rules need about a workflow node.
type node struct {
	name     string
	typ      string
	line     int
	isSticky bool
}

// checkNodes validates the nodes array and returns the named nodes.
func (c *checker) checkNodes(root *yaml.Node) []node {
	nodes := lookup(root, "nodes")
	if nodes == nil {
		c.add("error", "workflow has no nodes", root.Line,
			model.WithPropertyPath("nodes"),
			model.WithExpected("array"),
			model.WithActual("missing"),
		)
		return nil
	}
	if nodes.Kind != yaml.SequenceNode {
		c.add("error", "nodes must be an array", nodes.Line,
			model.WithPropertyPath("nodes"),
			model.WithExpected("array"),
			model.WithActual(kindName(nodes)),
		)
		return nil
	}

	seen := make(map[string]int, len(nodes.Content))
	out := make([]node, 0, len(nodes.Content))
	for i, item := range nodes.Content {
		path := fmt.Sprintf("nodes[%d]", i)
		if item.Kind != yaml.MappingNode {
			c.add("error", "node must be an object", item.Line,
				model.WithPropertyPath(path),
				model.WithExpected("object"),
				model.WithActual(kindName(item)),
			)
			continue
		}

		n := c.checkNode(item, path)
		if n.name == "" {
			continue
		}
		if first, dup := seen[n.name]; dup {
			c.add("error", fmt.Sprintf("duplicate node name %q (first defined on line %d)", n.name, first), n.line,
				model.WithNodeType(n.typ),
				model.WithPropertyPath(path+".name"),
			)
			continue
		}
		seen[n.name] = n.line
		out = append(out, n)
	}
	return out
}

// checkNode validates the fields of a single node.
func (c *checker) checkNode(item *yaml.Node, path string) node {
	n := node{line: item.Line}
	n.typ, _ = scalar(lookup(item, "type"))
	n.isSticky = n.typ == stickyNoteType
	ctx := model.WithNodeType(n.typ)

	name, ok := scalar(lookup(item, "name"))
	if !ok || strings.TrimSpace(name) == "" {
		c.add("error", "node is missing a name", item.Line, ctx, model.WithPropertyPath(path+".name"))
	} else {
		n.name = name
	}

	if n.typ == "" {
		c.add("error", "node is missing a type", item.Line, model.WithPropertyPath(path+".type"))
	} else if c.deprecated[n.typ] {
		c.add("warning", "node type is deprecated", lookup(item, "type").Line, ctx, model.WithPropertyPath(path+".type"))
	}

	switch v := lookup(item, "typeVersion"); {
	case v == nil:
		c.add("warning", "node has no typeVersion", item.Line, ctx, model.WithPropertyPath(path+".typeVersion"))
	case !isNumber(v):
		c.add("warning", "typeVersion must be a number", v.Line, ctx,
			model.WithPropertyPath(path+".typeVersion"),
			model.WithExpected("number"),
			model.WithActual(kindName(v)),
		)
	}

	switch p := lookup(item, "position"); {
	case p == nil:
		c.add("warning", "node has no position", item.Line, ctx, model.WithPropertyPath(path+".position"))
	case p.Kind != yaml.SequenceNode || len(p.Content) != 2 || !isNumber(p.Content[0]) || !isNumber(p.Content[1]):
		c.add("warning", "position must be a pair of numbers", p.Line, ctx,
			model.WithPropertyPath(path+".position"),
			model.WithExpected("[x, y]"),
			model.WithActual(describePosition(p)),
		)
	}

	switch p := lookup(item, "parameters"); {
	case p == nil:
		if !n.isSticky {
			c.add("warning", "node has no parameters", item.Line, ctx, model.WithPropertyPath(path+".parameters"))
		}
	case p.Kind != yaml.MappingNode:
		c.add("error", "parameters must be an object", p.Line, ctx,
			model.WithPropertyPath(path+".parameters"),
			model.WithExpected("object"),
			model.WithActual(kindName(p)),
		)
	}

	if d := lookup(item, "disabled"); isTrue(d) {
		c.add("info", "node is disabled", d.Line, ctx, model.WithPropertyPath(path+".disabled"))
	}

	return n
}

// describePosition summarizes a malformed position value.
func describePosition(p *yaml.Node) string {
	if p.Kind != yaml.SequenceNode {
		return kindName(p)
	}
	kinds := make([]string, len(p.Content))
	for i, e := range p.Content {
		kinds[i] = kindName(e)
	}
	return "[" + strings.Join(kinds, ", ") + "]"
}

// checkConnections validates that every connection refers to a known node
// and reports nodes that take part in no connection.
func (c *checker) checkConnections(root *yaml.Node, nodes []node) {
	byName := make(map[string]node, len(nodes))
	for _, n := range nodes {
		byName[n.name] = n
	}
	connected := make(map[string]bool, len(nodes))

	conns := lookup(root, "connections")
	if conns != nil && conns.Kind != yaml.MappingNode {
		c.add("error", "connections must be an object", conns.Line,
			model.WithPropertyPath("connections"),
			model.WithExpected("object"),
			model.WithActual(kindName(conns)),
		)
		conns = nil
	}

	if conns != nil {
		for i := 0; i+1 < len(conns.Content); i += 2 {
			key, outputs := conns.Content[i], conns.Content[i+1]
			source := key.Value
			path := "connections." + source
			if _, ok := byName[source]; !ok {
				c.add("error", fmt.Sprintf("connection source %q does not match any node", source), key.Line,
					model.WithPropertyPath(path))
			} else {
				connected[source] = true
			}

			for _, target := range connectionTargets(outputs) {
				name, _ := scalar(target)
				if _, ok := byName[name]; !ok {
					c.add("error", fmt.Sprintf("connection target %q does not match any node", name), target.Line,
						model.WithPropertyPath(path))
					continue
				}
				connected[name] = true
			}
		}
	}

	wired := slices.DeleteFunc(slices.Clone(nodes), func(n node) bool { return n.isSticky })
	if len(wired) < 2 {
		return
	}
	for _, n := range wired {
		if !connected[n.name] {
			c.add("info", "node is not connected to any other node", n.line, model.WithNodeType(n.typ))
		}
	}
}

// connectionTargets walks {outputType: [[{node: name}, ...], ...]} and
// returns the "node" value nodes.
func connectionTargets(outputs *yaml.Node) []*yaml.Node {
	if outputs == nil || outputs.Kind != yaml.MappingNode {
		return nil
	}
	var targets []*yaml.Node
	for i := 1; i < len(outputs.Content); i += 2 {
		branches := outputs.Content[i]
		if branches.Kind != yaml.SequenceNode {
			continue
		}
		for _, branch := range branches.Content {
			if branch.Kind != yaml.SequenceNode {
				continue
			}
			for _, link := range branch.Content {
				if target := lookup(link, "node"); target != nil {
					targets = append(targets, target)
				}
			}
		}
	}
	return targets
}
