package menu

import (
	"io"
	"sort"
	"strconv"
	"strings"
)

// The protocol uses an unescaped "|" to split text from parameters, so
// literal pipes in text are swapped for a broken bar.
var textSanitizer = strings.NewReplacer("|", "¦", "\n", " ")

type writer struct {
	strings.Builder
}

// String renders the menu in the hosts' plugin text format. Every
// non-empty menu ends with a single trailing newline; the empty menu
// renders as the empty string.
func (m Menu) String() string {
	var w writer
	for _, item := range m.Items {
		item.render(&w, false)
	}
	return w.Builder.String()
}

// Render writes the rendered menu to w. Rendering itself cannot fail;
// any error comes from the writer.
func (m Menu) Render(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

func (Separator) render(w *writer, _ bool) {
	w.WriteString("---\n")
}

func (i *ContentItem) render(w *writer, alternate bool) {
	w.WriteString(textSanitizer.Replace(i.text))

	params := map[string]string{}
	if i.href != "" {
		params["href"] = i.href
	}
	if i.color != nil {
		params["color"] = i.color.String()
	}
	if i.font != "" {
		params["font"] = i.font
	}
	if i.size != nil {
		params["size"] = strconv.Itoa(*i.size)
	}
	if i.cmd != nil {
		params["bash"] = i.cmd.Params.Cmd
		for n, arg := range i.cmd.Params.Args {
			params["param"+strconv.Itoa(n+1)] = arg
		}
		// terminal=true is the hosts' implicit default
		if !i.cmd.Terminal {
			params["terminal"] = "false"
		}
	}
	if i.refresh {
		params["refresh"] = "true"
	}
	if alternate {
		params["alternate"] = "true"
	}
	if i.image != nil {
		if i.image.Template {
			params["templateImage"] = i.image.Base64
		} else {
			params["image"] = i.image.Base64
		}
	}
	if i.flavor != nil {
		i.flavor.ContributeParams(params)
	}

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w.WriteString(" |")
		for _, k := range keys {
			v := params[k]
			// no escaping for embedded double quotes; known limitation
			if strings.Contains(v, " ") {
				v = "\"" + v + "\""
			}
			w.WriteString(" " + k + "=" + v)
		}
	}
	w.WriteByte('\n')

	if i.alt != nil {
		i.alt.render(w, true)
	}
	if i.sub != nil {
		// each nesting level adds two leading hyphens
		if sub := i.sub.String(); sub != "" {
			for _, line := range strings.Split(strings.TrimSuffix(sub, "\n"), "\n") {
				w.WriteString("--" + line + "\n")
			}
		}
	}
}
