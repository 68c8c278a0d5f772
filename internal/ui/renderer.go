package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasurehunter/internal/world"
)

var (
	plainStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// ToneStyle maps a message tone to its color.
func ToneStyle(t world.Tone) tcell.Style {
	switch t {
	case world.ToneWelcome:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	case world.ToneDanger:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case world.ToneGold:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case world.ToneTreasure:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	default:
		return plainStyle
	}
}

// View is everything one frame shows.
type View struct {
	Title        string
	News         world.Result
	Status       string
	TownPrefix   string // Text before the terrain name
	TerrainName  string
	TerrainColor tcell.Color
	Menu         []string
	Catalogue    []string
	Banner       string // Shown once the hunt is over
	Prompt       string
	Input        string
}

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one screen row.
type Line []Span

// Text returns the line without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

func plain(text string, style tcell.Style) Line {
	return Line{{Text: text, Style: style}}
}

// Layout turns a view into rows, top to bottom. The prompt is always last.
func Layout(v View) []Line {
	var lines []Line

	if v.Title != "" {
		lines = append(lines, plain(v.Title, titleStyle), nil)
	}

	if v.News.Message != "" {
		style := ToneStyle(v.News.Tone)
		for _, text := range strings.Split(v.News.Message, "\n") {
			lines = append(lines, plain(text, style))
		}
		lines = append(lines, plain("***", dimStyle))
	}

	if v.Status != "" {
		lines = append(lines, plain(v.Status, plainStyle))
	}
	if v.TerrainName != "" {
		lines = append(lines, Line{
			{Text: v.TownPrefix, Style: plainStyle},
			{Text: v.TerrainName, Style: tcell.StyleDefault.Foreground(v.TerrainColor).Bold(true)},
			{Text: ".", Style: plainStyle},
		})
	}

	if len(v.Catalogue) > 0 {
		lines = append(lines, nil)
		for _, item := range v.Catalogue {
			lines = append(lines, plain(item, ToneStyle(world.ToneGold)))
		}
	}

	if len(v.Menu) > 0 {
		lines = append(lines, nil)
		for _, entry := range v.Menu {
			lines = append(lines, plain(entry, plainStyle))
		}
	}

	if v.Banner != "" {
		lines = append(lines, nil, plain(v.Banner, bannerStyle))
	}

	lines = append(lines, nil, plain(v.Prompt+v.Input, plainStyle))
	return lines
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the view. Rows past the bottom of the terminal are dropped,
// except the prompt which is pinned to the last row.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	lines := Layout(v)
	_, height := r.screen.Size()
	if height <= 0 {
		return
	}

	prompt := lines[len(lines)-1]
	body := lines[:len(lines)-1]
	if len(body) > height-1 {
		body = body[len(body)-(height-1):]
	}

	for y, line := range body {
		x := 0
		for _, span := range line {
			x = r.screen.DrawText(x, y, span.Text, span.Style)
		}
	}

	promptY := len(body)
	if promptY > height-1 {
		promptY = height - 1
	}
	x := 0
	for _, span := range prompt {
		x = r.screen.DrawText(x, promptY, span.Text, span.Style)
	}
	if v.Prompt != "" {
		r.screen.ShowCursor(x, promptY)
	} else {
		r.screen.ShowCursor(-1, -1)
	}

	r.screen.Show()
}
