package data

// Title is shown on the menu and in the window bar.
const Title = "BOGGER"

// MenuLabels are the main menu buttons, top to bottom.
var MenuLabels = []string{"Play", "Stats", "Instructions", "Credits"}

// Instructions is the body of the instructions screen.
var Instructions = []string{
	"Get the frog as far up the",
	"screen as you can.",
	"",
	"Tap above the frog to hop up,",
	"below it to hop back, or to",
	"either side to hop sideways.",
	"",
	"Cars squash. Open water drowns.",
	"Logs and turtles carry you.",
	"",
	"Each row earns points, but the",
	"score drains while you wait.",
}

// TerminalHelp is the terminal frontend's footer.
const TerminalHelp = "arrows/click hop, q quits"

// Credits is the body of the credits screen.
var Credits = []string{
	"Bogger",
	"",
	"Built with ebiten, tcell",
	"and bitmapfont.",
	"",
	"Sprites and sounds are",
	"generated at startup.",
}

// GameOver is shown while waiting for the restart tap.
const GameOver = "GAME OVER"

// RestartHint sits under GameOver.
const RestartHint = "Tap to play again"
