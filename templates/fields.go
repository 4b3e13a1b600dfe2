package templates

import (
	"strconv"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func formEl(action string, children ...g.Node) g.Node {
	return g.El("form", Method("post"), Action(action), g.Group(children))
}

func multipartForm(action string, children ...g.Node) g.Node {
	return g.El("form", Method("post"), Action(action), g.Attr("enctype", "multipart/form-data"), g.Group(children))
}

func label(forName, text string) g.Node {
	return g.El("label", g.Attr("for", forName), g.Text(text))
}

func textField(text, name, value string, required bool) g.Node {
	return Div(
		label(name, text),
		Input(Type("text"), ID(name), Name(name), Value(value), g.If(required, Required())),
	)
}

func typedField(inputType, text, name, value string, required bool) g.Node {
	return Div(
		label(name, text),
		Input(Type(inputType), ID(name), Name(name), Value(value), g.If(required, Required())),
	)
}

func numberField(text, name string, value, min, max int) g.Node {
	return Div(
		label(name, text),
		Input(Type("number"), ID(name), Name(name), Value(strconv.Itoa(value)),
			g.If(min != max, g.Attr("min", strconv.Itoa(min))),
			g.If(min != max, g.Attr("max", strconv.Itoa(max))),
		),
	)
}

func textArea(text, name, value string, rows int, required bool) g.Node {
	return Div(
		label(name, text),
		Textarea(ID(name), Name(name), g.Attr("rows", strconv.Itoa(rows)), g.If(required, Required()), g.Text(value)),
	)
}

func checkbox(text, name string, checked bool) g.Node {
	return Div(
		g.El("label",
			Input(Type("checkbox"), Name(name), g.If(checked, Checked())),
			g.Text(" "+text),
		),
	)
}

func selectField(text, name, value string, options []string) g.Node {
	opts := make([]g.Node, 0, len(options)+1)
	known := false
	for _, o := range options {
		known = known || o == value
		opts = append(opts, Option(Value(o), g.If(o == value, Selected()), g.Text(o)))
	}
	if !known && value != "" {
		opts = append(opts, Option(Value(value), Selected(), g.Text(value)))
	}
	return Div(
		label(name, text),
		Select(ID(name), Name(name), g.Group(opts)),
	)
}

// tagEditor renders the current tags as hidden inputs with a remove button
// each, plus an input and button to add one. Both buttons post the form
// without saving it.
func tagEditor(text, field, newField string, tags []string, pending string) g.Node {
	chips := make([]g.Node, 0, len(tags))
	for _, t := range tags {
		chips = append(chips,
			g.El("span", Class("tag"),
				Input(Type("hidden"), Name(field), Value(t)),
				g.Text(t+" "),
				Button(Type("submit"), Class("button clear"), Name("op"), Value("remove-tag:"+t),
					g.Attr("formnovalidate", ""), g.Attr("aria-label", "Remove "+t), g.Text("×")),
			),
		)
	}

	return Div(
		label(newField, text),
		Div(g.Group(chips)),
		Div(Class("row"),
			Div(Class("col"), Input(Type("text"), ID(newField), Name(newField), Value(pending))),
			Div(Class("col-2"),
				Button(Type("submit"), Class("button outline"), Name("op"), Value("add-tag"),
					g.Attr("formnovalidate", ""), g.Text("Add")),
			),
		),
	)
}

func saveButtons(cancelHref string) g.Node {
	return P(
		Button(Type("submit"), Class("button primary"), Name("op"), Value("save"), g.Text("Save")),
		g.Text(" "),
		A(Href(cancelHref), Class("button outline"), g.Text("Cancel")),
	)
}

func errorBox(message string) g.Node {
	if message == "" {
		return nil
	}
	return Div(Class("toast toast-error"), g.Attr("role", "alert"), g.Text(message))
}
