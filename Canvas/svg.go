package Canvas

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

// WriteSVG writes the painted shapes of u to w as an SVG document, in paint order.
func (u *Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		u.Width, u.Height, u.Width, u.Height)
	u.Shapes(func(c *Circle, s *Segment) bool {
		if c != nil {
			fmt.Fprintf(bw, `<circle cx="%g" cy="%g" r="%g" fill="none" stroke="black"/>`+"\n", c.At.X, c.At.Y, c.At.R)
			fmt.Fprintf(bw, `<text x="%g" y="%g" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				c.At.X, c.At.Y, html.EscapeString(c.Label))
		} else {
			fmt.Fprintf(bw, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="black"/>`+"\n", s.From.X, s.From.Y, s.To.X, s.To.Y)
		}
		return true
	})
	fmt.Fprint(bw, "</svg>\n")
	return bw.Flush()
}
