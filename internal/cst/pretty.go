package cst

import (
	"fmt"
	"strings"
)

// PrettyOptions controls the debug tree dump.
type PrettyOptions struct {
	// Compact elides empty and whitespace-only Text slots.
	Compact bool
}

// Pretty renders a node as an indented kind tree for debugging. The output
// is not parseable source; use ToText for that.
func Pretty(n Node, opt PrettyOptions) string {
	var sb strings.Builder
	prettyNode(&sb, n, 0, opt)
	return sb.String()
}

func prettyNode(sb *strings.Builder, n Node, depth int, opt PrettyOptions) {
	indent := strings.Repeat("    ", depth)
	if leaf, ok := n.(*Leaf); ok {
		fmt.Fprintf(sb, "%sLeaf(%q)", indent, leaf.Value)
		return
	}

	children := n.Children()
	flat := true
	for _, ch := range children {
		if _, ok := ch.(*Leaf); ok {
			continue
		}
		if _, ok := ch.(Node); ok {
			flat = false
			break
		}
	}

	if flat {
		parts := make([]string, 0, len(children))
		for _, ch := range children {
			if s, keep := prettyChildInline(ch, opt); keep {
				parts = append(parts, s)
			}
		}
		fmt.Fprintf(sb, "%s%s([%s])", indent, n.Kind(), strings.Join(parts, ", "))
		return
	}

	fmt.Fprintf(sb, "%s%s([\n", indent, n.Kind())
	for _, ch := range children {
		switch v := ch.(type) {
		case Text:
			if opt.Compact && strings.TrimSpace(string(v)) == "" {
				continue
			}
			fmt.Fprintf(sb, "%s    %q,\n", indent, string(v))
		case *Leaf:
			fmt.Fprintf(sb, "%s    Leaf(%q),\n", indent, v.Value)
		case Node:
			prettyNode(sb, v, depth+1, opt)
			sb.WriteString(",\n")
		}
	}
	fmt.Fprintf(sb, "%s])", indent)
}

func prettyChildInline(ch Child, opt PrettyOptions) (string, bool) {
	switch v := ch.(type) {
	case Text:
		if opt.Compact && strings.TrimSpace(string(v)) == "" {
			return "", false
		}
		return fmt.Sprintf("%q", string(v)), true
	case *Leaf:
		return fmt.Sprintf("Leaf(%q)", v.Value), true
	case Node:
		return v.Kind().String() + "(...)", true
	}
	return "", false
}
