// Package rustty provides the in-memory model of a terminal display: a grid
// of cells, each holding a character with a foreground and a background style.
//
// # Quick Start
//
// Create a buffer, write into it and read it back:
//
//	buf := rustty.NewBuffer(80, 24)
//	buf.PutString(0, 0, "Hello", rustty.StyleWithColor(rustty.Red), rustty.DefaultStyle())
//	fmt.Println(buf.LineContent(0)) // "Hello"
//
// # Architecture
//
// The package is organized around these core types, leaves first:
//
//   - [Color] and [Attr]: a terminal color and a single text attribute
//   - [Style]: a (Color, Attr) pair describing one half of a cell
//   - [Cell]: a character plus foreground and background styles
//   - [CellBuffer]: a cols x rows grid of cells addressed by (col, row)
//
// # Colors
//
// A [Color] is one of the eight named colors, a 256-color palette index
// created with [Byte], or [Default], which asks the terminal to use its own
// color. Default has no palette index, so [Color.Encode] returns
// [ErrInvalidOperation] for it:
//
//	idx, err := c.Encode()
//	if errors.Is(err, rustty.ErrInvalidOperation) {
//	    // emit the "default color" sequence instead
//	}
//
// # Buffers
//
// A [CellBuffer] is column-major. [CellBuffer.Column] returns a live view of
// one column and [CellBuffer.Cell] a pointer to one cell; both return
// [ErrIndexOutOfBounds] outside the current shape:
//
//	col, err := buf.Column(1)
//	if err == nil {
//	    col[0].SetChar('x')
//	}
//
// [CellBuffer.Resize] changes the shape while keeping every cell whose
// coordinates exist in both shapes. The fill policy for new buffers is
// chosen with options:
//
//	buf := rustty.NewBuffer(80, 24, rustty.WithFillChar('.'))
//
// # Escape Sequences
//
// Decoded SGR attributes from [go-ansicode] can be applied to a pen cell with
// [Cell.ApplyCharAttribute], then stamped into the buffer.
//
// # Screenshots
//
// [CellBuffer.Screenshot] renders the grid to an [image.RGBA] using
// golang.org/x/image fonts.
//
// # Thread Safety
//
// A CellBuffer has a single owner and no internal locking. Callers that
// share a buffer across goroutines must serialize access themselves.
//
// [go-ansicode]: https://github.com/danielgatis/go-ansicode
package rustty
