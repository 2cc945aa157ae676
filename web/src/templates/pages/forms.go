package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	buttonClass = "inline-block rounded-lg bg-indigo-600 px-5 py-2 font-semibold text-white hover:bg-indigo-700"
	inputClass  = "w-full rounded-lg border px-3 py-2 dark:bg-gray-700"
	cardClass   = "rounded-xl bg-white p-6 shadow dark:bg-gray-800"
)

// field renders a labelled input.
func field(label, name, typ, value string, extra ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		g.Label(g.For(name), g.Class("mb-1 block text-sm font-medium"), cmp.Text(label)),
		g.Input(append([]cmp.Node{g.ID(name), g.Name(name), g.Type(typ), g.Value(value), g.Class(inputClass)}, extra...)...),
	)
}

// textArea renders a labelled textarea.
func textArea(label, name, value string, extra ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class("mb-4"),
		g.Label(g.For(name), g.Class("mb-1 block text-sm font-medium"), cmp.Text(label)),
		g.Textarea(append([]cmp.Node{g.ID(name), g.Name(name), g.Rows("4"), g.Class(inputClass)}, append(extra, cmp.Text(value))...)...),
	)
}

func submit(label string) cmp.Node {
	return g.Button(g.Type("submit"), g.Class(buttonClass), cmp.Text(label))
}
