package app

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/jeemodel/pkg/keyed"
	"github.com/mandelsoft/jeemodel/pkg/utils"
)

// Row is a line of a table output. Its accessors are used
// to sort by column.
type Row interface {
	Fields() []string
}

// SortRows sorts the rows by the column accessor given by
// its name (for example name for GetName).
func SortRows[R Row](rows []R, field string) error {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}
	e, err := keyed.ForProperty[string, R](strings.ToLower(field))
	if err != nil {
		return fmt.Errorf("unknown sort field %q", field)
	}
	keys := make([]string, len(rows))
	for i, r := range rows {
		k, err := e.Extract(r)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return strings.Compare(keys[a], keys[b]) })
	sorted := utils.TransformSlice(idx, func(i int) R { return rows[i] })
	copy(rows, sorted)
	return nil
}

func PrintTable[R Row](w io.Writer, columnList []string, rows []R) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "no entry found\n")
		return
	}
	fieldList := utils.TransformSlice(rows, func(r R) []string { return r.Fields() })

	max := make([]int, len(columnList))
	for i, s := range columnList {
		max[i] = len(s)
	}
	for _, cols := range fieldList {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columnList, f)
	for _, cols := range fieldList {
		printLine(w, cols, f)
	}
}

func printLine(w io.Writer, cols []string, msg string) {
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, utils.TransformSlice(cols, func(s string) any { return s })...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}

// PrintStructured prints data as yaml or json.
func PrintStructured(w io.Writer, format string, data interface{}) error {
	var out []byte
	var err error

	switch format {
	case "json":
		out, err = json.MarshalIndent(data, "", "  ")
	case "yaml":
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid output format %q", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s", string(out))
	if !strings.HasSuffix(string(out), "\n") {
		fmt.Fprintln(w)
	}
	return nil
}

func normalizeFormat(f string) string {
	return strings.ToLower(strings.TrimSpace(f))
}
