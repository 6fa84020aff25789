package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"golang.org/x/image/font"

	"github.com/zucenko/quoridor/layout"
	"github.com/zucenko/quoridor/model"
)

type UiState int

const (
	IDLE UiState = iota + 1
	SELECTED
	ANIMATING
	GAME_OVER
)

func (s UiState) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case SELECTED:
		return "SELECTED"
	case ANIMATING:
		return "ANIMATING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Game is the hot-seat window: both players share the mouse and take turns.
type Game struct {
	State   UiState
	Model   *model.Game
	Layout  layout.Layout
	Tweens  map[*gween.Tween]*Action
	strokes map[*Stroke]struct{}

	pawns map[model.Player]*PawnSprite
	fence *Nine
	panel *Nine
	dot   *ebiten.Image
	face  font.Face

	message     string
	bannerAlpha float64
}

func NewGame(cfg Config) (*Game, error) {
	l := layout.New(cfg.Square)

	dot, err := newDiscImage(32)
	if err != nil {
		return nil, err
	}
	rounded, err := newRoundedImage(16, 6)
	if err != nil {
		return nil, err
	}
	face, err := loadFace(float64(l.Square) * .3)
	if err != nil {
		return nil, err
	}

	fence := NewNine(rounded, 6, COLOR_FENCE)
	fence.Scale = float64(l.FenceWidth) / 12
	panel := NewNine(rounded, 6, COLOR_BASE)

	g := &Game{
		Layout:  l,
		Tweens:  make(map[*gween.Tween]*Action),
		strokes: map[*Stroke]struct{}{},
		pawns:   make(map[model.Player]*PawnSprite),
		fence:   fence,
		panel:   panel,
		dot:     dot,
		face:    face,
	}
	for _, p := range []model.Player{model.PlayerA, model.PlayerB} {
		g.pawns[p] = &PawnSprite{
			image:  dot,
			player: p,
			color:  PLAYER_COLORS[p],
			radius: float64(l.PawnRadius),
		}
	}
	g.reset()
	return g, nil
}

func (g *Game) reset() {
	g.Model = model.NewGame()
	g.Tweens = make(map[*gween.Tween]*Action)
	g.State = IDLE
	g.message = ""
	g.bannerAlpha = 0
	for p, s := range g.pawns {
		c, _ := g.Model.PawnPosition(p)
		s.x, s.y = g.Layout.CellCenter(c)
		s.selected = false
		s.moving = false
	}
	log.Info("New game")
}

func (g *Game) deselect() {
	for _, s := range g.pawns {
		s.selected = false
	}
	if g.State == SELECTED {
		g.State = IDLE
	}
}

// tap handles a finished click: the mover's pawn toggles selection, a
// highlighted cell moves there, a grid line between posts places a fence.
func (g *Game) tap(x, y int) {
	if g.State != IDLE && g.State != SELECTED {
		return
	}
	turn := g.Model.Turn()
	at, _ := g.Model.PawnPosition(turn)

	if g.Layout.PawnHit(x, y, at) {
		if g.State == SELECTED {
			g.deselect()
		} else {
			g.pawns[turn].selected = true
			g.State = SELECTED
		}
		return
	}

	if o, v, ok := g.Layout.FenceAt(x, y); ok {
		g.deselect()
		g.command(turn, model.FenceAt(o, v))
		return
	}

	if g.State != SELECTED {
		return
	}
	c, ok := g.Layout.CellAt(x, y)
	if !ok {
		return
	}
	for _, d := range g.Model.LegalDestinations(turn) {
		if d != c {
			continue
		}
		g.deselect()
		if g.command(turn, model.MoveTo(c)) {
			tx, ty := g.Layout.CellCenter(c)
			slide := g.slide(g.pawns[turn], tx, ty)
			if g.Model.Status() == model.WON {
				g.fadeInBanner(slide)
			}
			g.State = ANIMATING
		}
		return
	}
	g.deselect()
}

// command applies cmd and keeps the last rejection for the status line.
func (g *Game) command(p model.Player, cmd model.Command) bool {
	ok, reason := g.Model.Apply(p, cmd)
	if ok {
		g.message = ""
		return true
	}
	g.message = fmt.Sprintf("%s: %s", cmd, reason.Name())
	log.WithFields(log.Fields{
		"player": p.Name(),
		"cmd":    cmd.String(),
	}).Infof("Rejected %s", reason.Name())
	return false
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens()
	if g.State == ANIMATING && len(g.Tweens) == 0 {
		if g.Model.Status() == model.WON {
			g.State = GAME_OVER
		} else {
			g.State = IDLE
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.deselect()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range g.strokes {
		s.Update(g.Layout.Square / 3)
		if !s.IsReleased() {
			continue
		}
		if x, y, ok := s.Tap(); ok {
			g.tap(x, y)
		}
		delete(g.strokes, s)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	l := g.Layout
	snap := g.Model.Snapshot()
	s := float64(l.Square)
	board := float64(l.Width())

	_ = screen.Fill(COLOR_TILE.RGBA(1))
	// goal rows
	ebitenutil.DrawRect(screen, 0, 0, board, s, COLOR_BASE.RGBA(1))
	ebitenutil.DrawRect(screen, 0, board-s, board, s, COLOR_BASE.RGBA(1))
	for i := 1; i < model.Size; i++ {
		p := float64(i) * s
		ebitenutil.DrawLine(screen, p, 0, p, board, COLOR_DIVIDER.RGBA(1))
		ebitenutil.DrawLine(screen, 0, p, board, p, COLOR_DIVIDER.RGBA(1))
	}

	if g.State == SELECTED {
		r := float64(l.PawnRadius) / 3
		w, _ := g.dot.Size()
		for _, d := range snap.Destinations {
			x, y := l.CellCenter(d)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(2*r/float64(w), 2*r/float64(w))
			op.GeoM.Translate(x-r, y-r)
			op.ColorM.Scale(COLOR_DEST.r, COLOR_DEST.g, COLOR_DEST.b, 1)
			_ = screen.DrawImage(g.dot, op)
		}
	}

	// border segments are drawn flat, placed walls as rounded bars
	for _, seg := range snap.Segments {
		v := seg.Vertex
		border := (seg.Orientation == model.Horizontal && (v.Row == 0 || v.Row == model.Size)) ||
			(seg.Orientation == model.Vertical && (v.Col == 0 || v.Col == model.Size))
		if border {
			r := l.SegmentRect(seg)
			ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, COLOR_FENCE.RGBA(1))
		}
	}
	g.fence.SetColor(COLOR_FENCE, 1)
	for _, w := range g.Model.Walls() {
		g.fence.Draw(screen, l.FenceRect(w))
	}
	g.drawFencePreview(screen)

	for _, p := range []model.Player{model.PlayerA, model.PlayerB} {
		g.pawns[p].Draw(screen)
	}

	g.drawStatus(screen, snap)
	ebitenutil.DebugPrintAt(screen, g.State.Name(), 2, l.Height()-16)
}

func (g *Game) drawFencePreview(screen *ebiten.Image) {
	if g.State != IDLE && g.State != SELECTED {
		return
	}
	turn := g.Model.Turn()
	if g.Model.FencesRemaining(turn) == 0 {
		return
	}
	o, v, ok := g.Layout.FenceAt(ebiten.CursorPosition())
	if !ok || !g.Model.CanPlaceFence(o, v) {
		return
	}
	g.fence.SetColor(PLAYER_COLORS[turn], .5)
	g.fence.Draw(screen, g.Layout.FenceRect(model.Wall{Orientation: o, Anchor: v}))
}

func (g *Game) drawStatus(screen *ebiten.Image, snap model.Snapshot) {
	l := g.Layout
	s := float64(l.Square)
	y := float64(l.StatusY())
	g.panel.SetColor(COLOR_BASE, 1)
	g.panel.Draw(screen, layout.Rect{X: 2, Y: y + 2, W: float64(l.Width()) - 4, H: s - 4})

	baseline := l.StatusY() + l.Square/2 + l.Square/10
	x := l.Square / 4
	for _, p := range []model.Player{model.PlayerA, model.PlayerB} {
		label := fmt.Sprintf("%s fences %d", p.Name(), snap.Player(p).Fences)
		if n, ok := g.Model.PathLength(p); ok {
			label += fmt.Sprintf(" path %d", n)
		}
		clr := COLOR_TEXT.RGBA(1)
		if p == snap.Turn && snap.Status == model.IN_PROGRESS {
			clr = PLAYER_COLORS[p].RGBA(1)
		}
		text.Draw(screen, label, g.face, x, baseline, clr)
		x += font.MeasureString(g.face, label).Ceil() + l.Square/2
	}
	if g.message != "" {
		text.Draw(screen, g.message, g.face, x, baseline, COLOR_TEXT.RGBA(1))
	}

	if snap.Status == model.WON && g.bannerAlpha > 0 {
		banner := fmt.Sprintf("%s wins, R to restart", snap.Winner.Name())
		w := font.MeasureString(g.face, banner).Ceil()
		bx := (l.Width() - w) / 2
		by := l.Width() / 2
		pad := float64(l.Square) / 4
		g.panel.SetColor(COLOR_WHITE, g.bannerAlpha*.9)
		g.panel.Draw(screen, layout.Rect{
			X: float64(bx) - pad,
			Y: float64(by) - s/2,
			W: float64(w) + 2*pad,
			H: s * .75,
		})
		winner := PLAYER_COLORS[snap.Winner]
		text.Draw(screen, banner, g.face, bx, by, winner.RGBA(g.bannerAlpha))
	}
}

func main() {
	cfg := LoadConfig()
	log.SetLevel(cfg.LogLevel)

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(g.update, g.Layout.Width(), g.Layout.Height(), cfg.Scale, "Quoridor"); err != nil {
		log.Fatal(err)
	}
}
