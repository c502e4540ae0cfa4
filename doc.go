// Package cellfmt turns raw table values into display-ready cells.
//
// Each cell passes through a fixed pipeline driven by its column's [Style]:
//
//  1. [Coerce] classifies the raw value as empty, number, text, time or array.
//  2. The column type formats it: [FormatTime] for date columns,
//     [FormatNumber] for number columns, plain text otherwise.
//  3. [MapValue] rewrites it through a [ValueMap] or [RangeMap].
//  4. [ColorFor] picks a threshold color from the unmapped number.
//  5. [Escape] makes the text HTML-safe.
//  6. [ComposeLink] attaches a hyperlink built from the row scope.
//
// The result is an [Outcome], a structured value that serializes to a table
// cell with [Outcome.HTML] or to a whole table with [Write].
//
// # Rendering
//
// A [Renderer] holds the collaborators the pipeline consults: the [Theme]
// for named colors, the [Substituter] for link templates and the
// [Sanitizer] for trusted columns. It has no per-cell state:
//
//	r := cellfmt.Renderer{Theme: cellfmt.Theme{Variant: cellfmt.ThemeDark}}
//	out := r.RenderCell(grid, 1, 0, 1230)
//	fmt.Println(out.HTML()) // <td>1.230 s</td>
//
// No stage fails. Values a stage cannot handle pass through unchanged:
// text under a number column, unmatched mappings, unparsable timestamps.
//
// # Formats
//
// [Write] renders a [Grid] as [HTML], a terminal [Table] or [JSON]. Use
// [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Configuration
//
// [Load] reads a YAML [Document] describing columns, styles and rows.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrRowLength]: a row does not have one value per column
//   - [ErrInvalidStyle]: a YAML style is malformed
package cellfmt
