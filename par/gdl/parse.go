// Package gdl implements a small graph description language for
// writing netlist and device graphs as text instead of Go code. It
// reuses the teacher corpus's approach to pin-spec parsing (line-by-line
// splitting with strings/strconv, bus-range expansion for names like
// "site[0..19]") repurposed from wiring pin names to graph node names.
//
// A graph description is a sequence of statements, one per line:
//
//	graph "name"
//	node <namespec> label=<int>
//	edge <src>.<srcport> -> <dst>.<dstport>
//
// namespec may expand a bus range to declare many identically-labeled
// nodes at once, e.g. "site[0..19]" declares site[0] through site[19].
// Blank lines and lines starting with # are ignored.
package gdl

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/greenpak-par/xbpar/par"
)

// Parse reads a graph description and returns the resulting graph.
func Parse(src string) (*par.Graph, error) {
	g := &par.Graph{}
	nodesByName := make(map[string]*par.Node)

	sc := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "graph":
			name, err := parseQuoted(line, lineNo, fields)
			if err != nil {
				return nil, err
			}
			g.Name = name
		case "node":
			if err := parseNode(g, nodesByName, line, lineNo, fields); err != nil {
				return nil, err
			}
		case "edge":
			if err := parseEdge(g, nodesByName, line, lineNo, fields); err != nil {
				return nil, err
			}
		default:
			return nil, lineError(line, lineNo, "unknown statement %q", fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "gdl: scanning input")
	}
	return g, nil
}

func parseQuoted(line string, lineNo int, fields []string) (string, error) {
	if len(fields) != 2 || !strings.HasPrefix(fields[1], `"`) || !strings.HasSuffix(fields[1], `"`) {
		return "", lineError(line, lineNo, "expected a quoted name after %q", fields[0])
	}
	return strings.Trim(fields[1], `"`), nil
}

func parseNode(g *par.Graph, nodesByName map[string]*par.Node, line string, lineNo int, fields []string) error {
	if len(fields) != 3 {
		return lineError(line, lineNo, "expected \"node <name> label=<int>\"")
	}
	label, err := parseLabelAttr(fields[2])
	if err != nil {
		return lineError(line, lineNo, "%s", err)
	}
	names, err := expandBusName(fields[1])
	if err != nil {
		return lineError(line, lineNo, "%s", err)
	}
	for _, name := range names {
		if _, dup := nodesByName[name]; dup {
			return lineError(line, lineNo, "node %q declared more than once", name)
		}
		nodesByName[name] = g.AddNode(label, name)
	}
	return nil
}

func parseLabelAttr(attr string) (int, error) {
	const prefix = "label="
	if !strings.HasPrefix(attr, prefix) {
		return 0, errors.Errorf("expected %q attribute, got %q", prefix, attr)
	}
	label, err := strconv.Atoi(attr[len(prefix):])
	if err != nil {
		return 0, err
	}
	if label < 0 {
		return 0, errors.Errorf("label must be a non-negative integer, got %d", label)
	}
	return label, nil
}

func parseEdge(g *par.Graph, nodesByName map[string]*par.Node, line string, lineNo int, fields []string) error {
	if len(fields) != 4 || fields[2] != "->" {
		return lineError(line, lineNo, `expected "edge <src>.<port> -> <dst>.<port>"`)
	}
	src, srcPort, err := resolvePort(nodesByName, fields[1])
	if err != nil {
		return lineError(line, lineNo, "%s", err)
	}
	dst, dstPort, err := resolvePort(nodesByName, fields[3])
	if err != nil {
		return lineError(line, lineNo, "%s", err)
	}
	g.AddEdge(src, srcPort, dst, dstPort)
	return nil
}

func resolvePort(nodesByName map[string]*par.Node, spec string) (*par.Node, string, error) {
	i := strings.LastIndexByte(spec, '.')
	if i < 0 {
		return nil, "", errors.Errorf("expected <node>.<port>, got %q", spec)
	}
	name, port := spec[:i], spec[i+1:]
	n, ok := nodesByName[name]
	if !ok {
		return nil, "", errors.Errorf("undeclared node %q", name)
	}
	return n, port, nil
}

// expandBusName expands a bus range like "site[0..19]" into
// ["site[0]", ..., "site[19]"], matching the teacher corpus's bus pin
// expansion. A plain name with no brackets is returned as a
// single-element slice unchanged.
func expandBusName(name string) ([]string, error) {
	i := strings.IndexByte(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	if !strings.HasSuffix(name, "]") {
		return nil, errors.Errorf("missing closing ] in %q", name)
	}
	base := name[:i]
	if base == "" {
		return nil, errors.New("empty bus name")
	}
	rng := name[i+1 : len(name)-1]
	sep := strings.Index(rng, "..")
	if sep < 0 {
		return nil, errors.Errorf("expected start..end inside brackets in %q", name)
	}
	start, err := strconv.Atoi(rng[:sep])
	if err != nil {
		return nil, errors.Wrapf(err, "bus range start in %q", name)
	}
	end, err := strconv.Atoi(rng[sep+2:])
	if err != nil {
		return nil, errors.Wrapf(err, "bus range end in %q", name)
	}
	if end < start {
		return nil, errors.Errorf("bus range end before start in %q", name)
	}
	out := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, base+"["+strconv.Itoa(i)+"]")
	}
	return out, nil
}

func lineError(line string, lineNo int, format string, args ...any) error {
	return errors.Errorf("gdl: line %d: %s: %s", lineNo, errors.Errorf(format, args...), line)
}
