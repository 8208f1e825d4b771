package transform

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mholzen/bintree/pkg/bintree"
)

type Transformer func(string) (string, error)

var BuiltinTransformers = map[string]Transformer{
	"lowercase":      Lowercase,
	"uppercase":      Uppercase,
	"capitalize":     Capitalize,
	"title":          TitleCase,
	"trim":           Trim,
	"no-punctuation": RemovePunctuation,
	"no-whitespace":  RemoveWhitespace,
}

func ListBuiltins() []string {
	names := make([]string, 0, len(BuiltinTransformers))
	for name := range BuiltinTransformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result describes one node whose value the transformer changed or failed on.
// Position is the node's index in pre-order.
type Result struct {
	Node       *bintree.Node[string] `json:"-"`
	Position   int                   `json:"position"`
	Original   string                `json:"original"`
	New        string                `json:"new"`
	Applied    bool                  `json:"applied"`
	Skipped    bool                  `json:"skipped,omitempty"`
	SkipReason string                `json:"skip_reason,omitempty"`
}

func (r Result) String() string {
	if r.Skipped {
		return fmt.Sprintf("#%d: \"%s\" (skipped: %s)", r.Position, r.Original, r.SkipReason)
	}
	status := "→"
	if !r.Applied {
		status = "→ (dry-run)"
	}
	return fmt.Sprintf("#%d: \"%s\" %s \"%s\"", r.Position, r.Original, status, r.New)
}

// ApplyTree runs t over every value of the tree in pre-order and stores the
// transformed value unless dryRun is set. Unchanged values produce no result.
func ApplyTree(root *bintree.Node[string], t Transformer, dryRun bool) []Result {
	results := []Result{}
	position := 0
	for node := range root.Seq(bintree.PreOrderTraversal) {
		value := node.Value()
		transformed, err := t(value)
		switch {
		case err != nil:
			results = append(results, Result{
				Node:       node,
				Position:   position,
				Original:   value,
				Skipped:    true,
				SkipReason: err.Error(),
			})
		case transformed != value:
			if !dryRun {
				node.SetValue(transformed)
			}
			results = append(results, Result{
				Node:     node,
				Position: position,
				Original: value,
				New:      transformed,
				Applied:  !dryRun,
			})
		}
		position++
	}
	return results
}

func Lowercase(s string) (string, error) {
	return strings.ToLower(s), nil
}

func Uppercase(s string) (string, error) {
	return strings.ToUpper(s), nil
}

func Trim(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func Capitalize(s string) (string, error) {
	if len(s) == 0 {
		return s, nil
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes), nil
}

func TitleCase(s string) (string, error) {
	caser := cases.Title(language.English)
	return caser.String(s), nil
}

func RemovePunctuation(s string) (string, error) {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s), nil
}

func RemoveWhitespace(s string) (string, error) {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s), nil
}

func ShellTransformer(cmdTemplate string) Transformer {
	return func(s string) (string, error) {
		cmd := strings.ReplaceAll(cmdTemplate, "{}", s)
		out, err := exec.Command("sh", "-c", cmd).Output()
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(out), "\n"), nil
	}
}

func ResolveTransformer(transformName, execCmd string) (Transformer, error) {
	if execCmd != "" && transformName != "" {
		return nil, fmt.Errorf("cannot specify both transform name and exec")
	}

	if execCmd != "" {
		return ShellTransformer(execCmd), nil
	}

	if transformName == "" {
		return nil, fmt.Errorf("transform name or exec is required")
	}

	t, ok := BuiltinTransformers[transformName]
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s (available: %s)",
			transformName, strings.Join(ListBuiltins(), ", "))
	}
	return t, nil
}
