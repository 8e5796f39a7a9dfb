package colorcatch

import (
	"fmt"

	"github.com/vovakirdan/color-catch/internal/core"
)

const (
	tileW     = 8 // Tile width including its border column
	tileH     = 3 // Tile height including its border rows
	gapX      = 2
	gapY      = 1
	hudHeight = 3
	footerH   = 2
)

// layout holds the screen geometry of the board.
type layout struct {
	board core.Rect
	tiles []core.Rect
}

func boardExtent(n int) (w, h int) {
	return n*tileW + (n-1)*gapX, n*tileH + (n-1)*gapY
}

// computeLayout centers the board below the HUD.
func (g *Game) computeLayout() layout {
	n := g.state.GridSize()
	w, h := boardExtent(n)
	x := (g.screenW - w) / 2
	y := hudHeight + core.Max(0, (g.screenH-hudHeight-footerH-h)/2)

	l := layout{board: core.NewRect(x, y, w, h), tiles: make([]core.Rect, n*n)}
	for i := range l.tiles {
		row, col := i/n, i%n
		l.tiles[i] = core.NewRect(x+col*(tileW+gapX), y+row*(tileH+gapY), tileW, tileH)
	}
	return l
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	w, h := boardExtent(g.preset.GridSize())
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight+footerH
}

// Resize adapts the layout to a new screen size without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// HitTest maps a screen position to the tile under it.
func (g *Game) HitTest(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	for i, r := range g.computeLayout().tiles {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the game state to the screen. It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.computeLayout()
	g.renderHUD(dst, l.board)
	g.renderTiles(dst, l)
	g.renderFooter(dst, l.board)

	switch {
	case g.state.GameOver():
		g.renderGameOver(dst, l.board)
	case g.paused:
		g.renderBanner(dst, l.board, "PAUSED", "P: Resume   B: Main Menu")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, countdown, stage and score.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextCenteredColored(0, "C O L O R   C A T C H", core.ColorBrightWhite)

	timeColor := core.ColorDefault
	if g.state.TimerRunning() && g.state.Countdown() <= 5 {
		timeColor = core.ColorBrightRed
	}
	timeStr := "Time: " + FormatTime(g.state.Countdown())
	dst.DrawTextColored(board.X, 1, timeStr, timeColor)

	stageStr := fmt.Sprintf("Stage %d", g.state.Stage())
	dst.DrawText(board.X+(board.W-len(stageStr))/2, 1, stageStr)

	scoreStr := fmt.Sprintf("Score: %d", g.state.Score())
	dst.DrawText(board.Right()-len(scoreStr), 1, scoreStr)
}

// renderTiles draws every tile: dimmed when matched, boxed when selected or
// under the cursor.
func (g *Game) renderTiles(dst *core.Screen, l layout) {
	showCursor := !g.state.GameOver()
	for i, r := range l.tiles {
		if g.state.IsDisabled(i) {
			dst.FillRect(r, core.Cell{Rune: '░', Color: core.ColorDim})
		} else {
			dst.FillRect(r, core.Cell{Rune: '█', Color: g.state.TileColor(i)})
		}

		selected := g.state.IsSelected(i)
		atCursor := showCursor && i == g.cursor
		switch {
		case selected && atCursor:
			dst.DrawBoxStyled(r, core.BoxDouble, core.ColorBrightWhite)
		case selected:
			dst.DrawBoxStyled(r, core.BoxHeavy, core.ColorBrightWhite)
		case atCursor:
			dst.DrawBoxStyled(r, core.BoxSingle, core.ColorBrightWhite)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	y := board.Bottom()
	switch g.state.Phase() {
	case PhaseIdle:
		dst.DrawTextCentered(y, "Tap a tile to start the clock")
	case PhaseResolved:
		if res, ok := g.state.Pending(); ok {
			switch {
			case res.AdvanceStage:
				dst.DrawTextCenteredColored(y, "Stage clear!", core.ColorBrightGreen)
			case res.Matched:
				dst.DrawTextCenteredColored(y, "Match!", core.ColorBrightGreen)
			default:
				dst.DrawTextCenteredColored(y, "No match", core.ColorGray)
			}
		}
	}

	help := "Arrows/Click: Move  Space: Tap  R: Restart  P: Pause  Q: Quit"
	dst.DrawTextCenteredColored(g.screenH-1, help, core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen, board core.Rect) {
	g.renderBanner(dst, board,
		"GAME OVER",
		fmt.Sprintf("Your score is %d.", g.state.Score()),
		fmt.Sprintf("Stage reached: %d", g.state.Stage()),
		"",
		"R: Play Again   B: Main Menu",
	)
}

// renderBanner draws a boxed message centered over the board.
func (g *Game) renderBanner(dst *core.Screen, board core.Rect, lines ...string) {
	w := 0
	for _, line := range lines {
		w = core.Max(w, len([]rune(line)))
	}
	w += 4
	h := len(lines) + 2

	r := core.NewRect((g.screenW-w)/2, board.Y+(board.H-h)/2, w, h)
	dst.FillRect(r, core.Cell{Rune: ' '})
	dst.DrawBoxStyled(r, core.BoxDouble, core.ColorBrightWhite)

	for i, line := range lines {
		x := r.X + (w-len([]rune(line)))/2
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, r.Y+1+i, line, c)
	}
}
