package game

import (
	"context"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasurehunter/internal/gamedata"
	"github.com/samdwyer/treasurehunter/internal/random"
	"github.com/samdwyer/treasurehunter/internal/ui"
)

const maxInputLen = 24

// Game holds the terminal front end around a Session.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	data     *gamedata.Data
	rng      *random.Policy
	session  *Session
	state    State
	pending  Command
	input    []rune
	running  bool
	err      error
}

// New creates a game on the real terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an already initialized screen.
func NewWithScreen(cfg Config, screen *ui.Screen) (*Game, error) {
	data, err := gamedata.LoadData()
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}
	if _, err := cfg.ResolveMode(data.Modes); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = random.NewSeed(); err != nil {
			return nil, err
		}
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		cfg:      cfg,
		data:     data,
		rng:      random.New(seed),
		state:    StateName,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	if g.cfg.HunterName != "" {
		if err := g.begin(ctx); err != nil {
			g.fail(err)
		}
	}

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}

	g.screen.Close()
	return g.err
}

// begin starts the session once the hunter has a name.
func (g *Game) begin(ctx context.Context) error {
	s, err := NewSession(g.cfg, g.data, g.rng)
	if err != nil {
		return err
	}
	g.session = s
	s.Start(ctx)
	g.state = StateMenu
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey processes keyboard input for the current state.
func (g *Game) handleKey(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.state {
	case StateName:
		g.editLine(key, r, func(line string) {
			g.cfg.HunterName = line
			if err := g.begin(ctx); err != nil {
				g.fail(err)
			}
		})

	case StateMenu:
		switch key {
		case tcell.KeyEscape:
			g.running = false
		case tcell.KeyRune:
			g.choose(ctx, ParseCommand(string(r)))
		}

	case StateItem:
		if key == tcell.KeyEscape {
			g.input = g.input[:0]
			g.state = StateMenu
			return
		}
		g.editLine(key, r, func(line string) {
			g.state = StateMenu
			g.dispatch(ctx, g.pending, line)
		})

	case StateOver:
		g.running = false
	}
}

// choose handles a menu key. Buy and sell wait for an item name first.
func (g *Game) choose(ctx context.Context, cmd Command) {
	if cmd.NeedsItem() {
		g.pending = cmd
		g.input = g.input[:0]
		g.state = StateItem
		return
	}
	g.dispatch(ctx, cmd, "")
}

func (g *Game) dispatch(ctx context.Context, cmd Command, item string) {
	if _, err := g.session.Dispatch(ctx, cmd, item); err != nil {
		g.fail(err)
		return
	}
	if g.session.Finished() {
		g.state = StateOver
	}
}

// fail stops the loop; Run returns err.
func (g *Game) fail(err error) {
	g.err = err
	g.running = false
}

// editLine applies one key to the input buffer and calls submit on Enter.
func (g *Game) editLine(key tcell.Key, r rune, submit func(string)) {
	switch key {
	case tcell.KeyEnter:
		line := string(g.input)
		g.input = g.input[:0]
		submit(line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(g.input) > 0 {
			g.input = g.input[:len(g.input)-1]
		}
	case tcell.KeyRune:
		if len(g.input) < maxInputLen && unicode.IsPrint(r) {
			g.input = append(g.input, r)
		}
	}
}

// view builds the frame for the current state.
func (g *Game) view() ui.View {
	v := ui.View{Title: "TREASURE HUNTER"}

	if g.session == nil {
		v.News.Message = "Welcome to TREASURE HUNTER!\nGoing hunting for the big treasure, eh?"
		v.Prompt = "What's your name, Hunter? "
		v.Input = string(g.input)
		return v
	}

	s := g.session
	v.News = s.News()
	v.Status = s.Hunter().String()
	terrain := s.Town().Terrain()
	v.TownPrefix = "This nice little town is surrounded by "
	v.TerrainName = terrain.Name()
	v.TerrainColor = terrain.Color()

	switch g.state {
	case StateMenu:
		v.Menu = Menu
		v.Prompt = "What's your next move? "
	case StateItem:
		for _, item := range s.Shop().Catalogue() {
			price := item.Price
			if g.pending == CmdSell {
				price = s.Shop().SellPrice(&item)
			}
			v.Catalogue = append(v.Catalogue, fmt.Sprintf("%-8s %3d gold", item.ID, price))
		}
		v.Prompt = fmt.Sprintf("What do you want to %s? ", g.pending)
		v.Input = string(g.input)
	case StateOver:
		v.Banner = "Press any key to leave."
	}
	return v
}
