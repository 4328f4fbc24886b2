package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsonlite/internal/models"
)

// Key style names accepted by the formatter and the --key-style flag.
const (
	KeyStyleNone      = "none"
	KeyStyleCamel     = "camel"
	KeyStylePascal    = "pascal"
	KeyStyleSnake     = "snake"
	KeyStyleScreaming = "screaming"
)

// Formatter renders a decoded value tree as an indented, type-annotated
// outline. It never emits JSON text; the output is a human-oriented view
// of the structure.
type Formatter struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// KeyStyle rewrites object keys for display (see the KeyStyle constants).
	KeyStyle string
	// Color enables ANSI color for keys and kind names.
	Color bool
	// MaxDepth elides subtrees nested deeper than this many levels.
	// Zero means no limit.
	MaxDepth int

	keyColor  *color.Color
	kindColor *color.Color
}

// NewFormatter creates a Formatter with default options
func NewFormatter() *Formatter {
	return &Formatter{
		Indent:   2,
		KeyStyle: KeyStyleNone,
	}
}

// Render walks the decoded tree and returns the outline text
func (f *Formatter) Render(ir models.IntermediateRepresentation) (string, error) {
	if err := f.validate(); err != nil {
		return "", err
	}
	f.keyColor = color.New(color.FgCyan)
	f.kindColor = color.New(color.FgYellow)

	var b strings.Builder
	f.renderValue(&b, ir.Root, 0)
	return b.String(), nil
}

func (f *Formatter) validate() error {
	if f.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", f.Indent)
	}
	switch f.KeyStyle {
	case "", KeyStyleNone, KeyStyleCamel, KeyStylePascal, KeyStyleSnake, KeyStyleScreaming:
		return nil
	default:
		return fmt.Errorf("unknown key style %q", f.KeyStyle)
	}
}

// renderValue writes one line for v at the given depth, then recurses into
// containers. Scalar lines carry the kind and the literal; container lines
// carry the kind and a child count.
func (f *Formatter) renderValue(b *strings.Builder, v models.JSONValue, depth int) {
	switch val := v.(type) {
	case models.JSONObject:
		fmt.Fprintf(b, "%s (%s)\n", f.kind("object"), countNoun(len(val), "key"))
		if f.elided(b, len(val) > 0, depth) {
			return
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(f.pad(depth + 1))
			fmt.Fprintf(b, "%s: ", f.key(f.styleKey(k)))
			f.renderValue(b, val[k], depth+1)
		}
	case models.JSONArray:
		fmt.Fprintf(b, "%s (%s)\n", f.kind("array"), countNoun(len(val), "item"))
		if f.elided(b, len(val) > 0, depth) {
			return
		}
		for i, item := range val {
			b.WriteString(f.pad(depth + 1))
			fmt.Fprintf(b, "[%d]: ", i)
			f.renderValue(b, item, depth+1)
		}
	case nil:
		fmt.Fprintf(b, "%s\n", f.kind("null"))
	case bool:
		fmt.Fprintf(b, "%s %t\n", f.kind("bool"), val)
	case int64:
		fmt.Fprintf(b, "%s %s\n", f.kind("int"), strconv.FormatInt(val, 10))
	case float64:
		fmt.Fprintf(b, "%s %s\n", f.kind("float"), strconv.FormatFloat(val, 'g', -1, 64))
	case string:
		fmt.Fprintf(b, "%s %s\n", f.kind("string"), strconv.Quote(val))
	default:
		fmt.Fprintf(b, "%s %v\n", f.kind(models.Kind(v)), val)
	}
}

// elided writes the ellipsis line and reports true when a non-empty
// container at depth has children past the depth limit.
func (f *Formatter) elided(b *strings.Builder, hasChildren bool, depth int) bool {
	if f.MaxDepth > 0 && depth+1 > f.MaxDepth && hasChildren {
		b.WriteString(f.pad(depth + 1))
		b.WriteString("…\n")
		return true
	}
	return false
}

func (f *Formatter) pad(depth int) string {
	return strings.Repeat(" ", f.Indent*depth)
}

func (f *Formatter) styleKey(key string) string {
	switch f.KeyStyle {
	case KeyStyleCamel:
		return strcase.ToLowerCamel(key)
	case KeyStylePascal:
		return strcase.ToCamel(key)
	case KeyStyleSnake:
		return strcase.ToSnake(key)
	case KeyStyleScreaming:
		return strcase.ToScreamingSnake(key)
	default:
		return key
	}
}

func (f *Formatter) key(s string) string {
	if !f.Color {
		return s
	}
	return f.keyColor.Sprint(s)
}

func (f *Formatter) kind(s string) string {
	if !f.Color {
		return s
	}
	return f.kindColor.Sprint(s)
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
