package data

// Icon names an inline SVG icon.
type Icon string

const (
	IconThumbsUp   Icon = "thumbs-up"
	IconThumbsDown Icon = "thumbs-down"
	IconMeh        Icon = "meh"
	IconFire       Icon = "fire"
)

// 16x16 outline paths, drawn with currentColor.
var iconPaths = map[Icon]string{
	IconThumbsUp:   `<path d="M2 7h3v8H2zM5 14h7.2a1.5 1.5 0 0 0 1.5-1.2l1-4.6A1.5 1.5 0 0 0 13.2 6.5H10V3.3A1.8 1.8 0 0 0 8.2 1.5L5 7z"/>`,
	IconThumbsDown: `<path d="M2 1h3v8H2zM5 2h7.2a1.5 1.5 0 0 1 1.5 1.2l1 4.6a1.5 1.5 0 0 1-1.5 1.7H10v3.2a1.8 1.8 0 0 1-1.8 1.8L5 9z"/>`,
	IconMeh:        `<circle cx="8" cy="8" r="6.5" fill="none" stroke="currentColor"/><circle cx="5.5" cy="6" r="1"/><circle cx="10.5" cy="6" r="1"/><path d="M5 10.5h6" stroke="currentColor"/>`,
	IconFire:       `<path d="M8 1s4 3.5 4 8a4 4 0 0 1-8 0c0-2 1-3.5 1-3.5S6 7 7 7c0-2.5 1-6 1-6z"/>`,
}

// SVG returns the icon as an inline <svg> element. Unknown icons render
// as an empty 16x16 box.
func (i Icon) SVG() string {
	return `<svg class="icon icon-` + string(i) + `" viewBox="0 0 16 16" width="16" height="16" fill="currentColor" aria-hidden="true">` +
		iconPaths[i] + `</svg>`
}
