package cli

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// bindings is a repeatable name=value flag.
type bindings map[string]float64

var _ pflag.Value = bindings(nil)

func (b bindings) String() string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + strconv.FormatFloat(b[name], 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (b bindings) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return errors.Errorf("%q is not name=value", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return errors.Wrapf(err, "value for %s", name)
	}
	b[name] = v
	return nil
}

func (b bindings) Type() string { return "name=value" }

// addBindingsFlag registers --var on fs.
func addBindingsFlag(fs *pflag.FlagSet, b bindings) {
	fs.VarP(b, "var", "v", "bind a variable, as name=value (repeatable)")
}
