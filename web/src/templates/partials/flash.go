// Package partials holds small fragments shared by every page layout.
package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FlashID is the element id of the toast container.
const FlashID = "flash"

// Flash renders the toast container with the one-shot messages. The container
// is always present so htmx responses can replace it out of band.
func Flash(success, errs []string) templ.Component {
	return flash(success, errs, false)
}

// FlashOOB is Flash marked for an htmx out-of-band swap.
func FlashOOB(success, errs []string) templ.Component {
	return flash(success, errs, true)
}

func flash(success, errs []string, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<div id="` + FlashID + `" class="fixed top-4 right-4 z-50 space-y-2" role="status"`
		if oob {
			open += ` hx-swap-oob="true"`
		}
		if _, err := io.WriteString(w, open+`>`); err != nil {
			return err
		}
		for _, msg := range success {
			if err := toast(w, "toast toast-success bg-green-600 text-white", msg); err != nil {
				return err
			}
		}
		for _, msg := range errs {
			if err := toast(w, "toast toast-error bg-red-600 text-white", msg); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func toast(w io.Writer, class, msg string) error {
	_, err := io.WriteString(w, `<p class="`+class+` rounded-lg px-4 py-2 shadow">`+templ.EscapeString(msg)+`</p>`)
	return err
}
