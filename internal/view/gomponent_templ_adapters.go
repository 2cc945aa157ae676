package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// nodeComponent lets a gomponents tree be rendered anywhere a templ.Component
// is expected, such as the universal renderer's templ path.
type nodeComponent struct {
	node gomponents.Node
}

func (a nodeComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// Component adapts a gomponents node to templ.
func Component(node gomponents.Node) templ.Component {
	return nodeComponent{node: node}
}

// templNode embeds a templ component in a gomponents tree. gomponents has no
// context parameter, so the context is captured when the node is built.
type templNode struct {
	ctx       context.Context
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// Node adapts a templ component to gomponents, rendering it with ctx.
func Node(ctx context.Context, component templ.Component) gomponents.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return templNode{ctx: ctx, component: component}
}
