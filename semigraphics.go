package spinwheel

import "github.com/gdamore/tcell/v3"

// Semigraphics used by the primitives of this package. Strings use \u escapes
// to keep the source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal            = "\u2500" // ─
	BoxDrawingsHeavyHorizontal            = "\u2501" // ━
	BoxDrawingsLightVertical              = "\u2502" // │
	BoxDrawingsHeavyVertical              = "\u2503" // ┃
	BoxDrawingsLightDownAndRight          = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight          = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft           = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft           = "\u2513" // ┓
	BoxDrawingsLightUpAndRight            = "\u2514" // └
	BoxDrawingsHeavyUpAndRight            = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft             = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft             = "\u251b" // ┛
	BoxDrawingsLightVerticalAndRight      = "\u251c" // ├
	BoxDrawingsLightVerticalAndLeft       = "\u2524" // ┤
	BoxDrawingsLightDownAndHorizontal     = "\u252c" // ┬
	BoxDrawingsLightUpAndHorizontal       = "\u2534" // ┴
	BoxDrawingsLightVerticalAndHorizontal = "\u253c" // ┼
	BoxDrawingsDoubleHorizontal           = "\u2550" // ═
	BoxDrawingsDoubleVertical             = "\u2551" // ║
	BoxDrawingsDoubleDownAndRight         = "\u2554" // ╔
	BoxDrawingsDoubleDownAndLeft          = "\u2557" // ╗
	BoxDrawingsDoubleUpAndRight           = "\u255a" // ╚
	BoxDrawingsDoubleUpAndLeft            = "\u255d" // ╝
	BoxDrawingsLightArcDownAndRight       = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft        = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft          = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight         = "\u2570" // ╰

	SemigraphicsLeftPointingTriangle  = "\u25c2" // ◂
	SemigraphicsRightPointingTriangle = "\u25b8" // ▸
	SemigraphicsUpPointingTriangle    = "\u25b4" // ▴
	SemigraphicsDownPointingTriangle  = "\u25be" // ▾
)

// SemigraphicJoints maps two light box drawing glyphs, sorted and concatenated,
// to the glyph drawn where they cross. Wheel dividers meet row separators here.
var SemigraphicJoints = map[string]string{
	// ─ + │ = ┼
	BoxDrawingsLightHorizontal + BoxDrawingsLightVertical: BoxDrawingsLightVerticalAndHorizontal,
	// ─ + ├ = ┼
	BoxDrawingsLightHorizontal + BoxDrawingsLightVerticalAndRight: BoxDrawingsLightVerticalAndHorizontal,
	// ─ + ┤ = ┼
	BoxDrawingsLightHorizontal + BoxDrawingsLightVerticalAndLeft: BoxDrawingsLightVerticalAndHorizontal,
	// ─ + ┬ = ┬
	BoxDrawingsLightHorizontal + BoxDrawingsLightDownAndHorizontal: BoxDrawingsLightDownAndHorizontal,
	// ─ + ┴ = ┴
	BoxDrawingsLightHorizontal + BoxDrawingsLightUpAndHorizontal: BoxDrawingsLightUpAndHorizontal,
	// ─ + ┼ = ┼
	BoxDrawingsLightHorizontal + BoxDrawingsLightVerticalAndHorizontal: BoxDrawingsLightVerticalAndHorizontal,
	// │ + ┬ = ┼
	BoxDrawingsLightVertical + BoxDrawingsLightDownAndHorizontal: BoxDrawingsLightVerticalAndHorizontal,
	// │ + ┴ = ┼
	BoxDrawingsLightVertical + BoxDrawingsLightUpAndHorizontal: BoxDrawingsLightVerticalAndHorizontal,
	// │ + ┌ = ├
	BoxDrawingsLightVertical + BoxDrawingsLightDownAndRight: BoxDrawingsLightVerticalAndRight,
	// │ + ┐ = ┤
	BoxDrawingsLightVertical + BoxDrawingsLightDownAndLeft: BoxDrawingsLightVerticalAndLeft,
	// │ + └ = ├
	BoxDrawingsLightVertical + BoxDrawingsLightUpAndRight: BoxDrawingsLightVerticalAndRight,
	// │ + ┘ = ┤
	BoxDrawingsLightVertical + BoxDrawingsLightUpAndLeft: BoxDrawingsLightVerticalAndLeft,
}

// PrintJoinedSemigraphics prints a semigraphics string into the screen at the given
// position with the given style, joining it with any existing semigraphics.
func PrintJoinedSemigraphics(screen tcell.Screen, x, y int, str string, style tcell.Style) {
	previous, _, _ := screen.Get(x, y)

	result := str
	if str != previous {
		a, b := previous, str
		if b < a {
			a, b = b, a
		}
		if joint, ok := SemigraphicJoints[a+b]; ok {
			result = joint
		}
	}
	screen.Put(x, y, result, style)
}
