package rangeslider

// Semigraphics used by borders and sliders.
const (
	SemigraphicsHorizontalEllipsis = "\u2026" // …

	BoxDrawingsLightHorizontal      = "\u2500" // ─
	BoxDrawingsHeavyHorizontal      = "\u2501" // ━
	BoxDrawingsLightVertical        = "\u2502" // │
	BoxDrawingsHeavyVertical        = "\u2503" // ┃
	BoxDrawingsLightDownAndRight    = "\u250c" // ┌
	BoxDrawingsHeavyDownAndRight    = "\u250f" // ┏
	BoxDrawingsLightDownAndLeft     = "\u2510" // ┐
	BoxDrawingsHeavyDownAndLeft     = "\u2513" // ┓
	BoxDrawingsLightUpAndRight      = "\u2514" // └
	BoxDrawingsHeavyUpAndRight      = "\u2517" // ┗
	BoxDrawingsLightUpAndLeft       = "\u2518" // ┘
	BoxDrawingsHeavyUpAndLeft       = "\u251b" // ┛
	BoxDrawingsDoubleHorizontal     = "\u2550" // ═
	BoxDrawingsDoubleVertical       = "\u2551" // ║
	BoxDrawingsDoubleDownAndRight   = "\u2554" // ╔
	BoxDrawingsDoubleDownAndLeft    = "\u2557" // ╗
	BoxDrawingsDoubleUpAndRight     = "\u255a" // ╚
	BoxDrawingsDoubleUpAndLeft      = "\u255d" // ╝
	BoxDrawingsLightArcDownAndRight = "\u256d" // ╭
	BoxDrawingsLightArcDownAndLeft  = "\u256e" // ╮
	BoxDrawingsLightArcUpAndLeft    = "\u256f" // ╯
	BoxDrawingsLightArcUpAndRight   = "\u2570" // ╰

	BlockFull                 = "\u2588" // █
	BlockLeftSevenEighths     = "\u2589" // ▉
	BlockLeftThreeQuarters    = "\u258a" // ▊
	BlockLeftFiveEighths      = "\u258b" // ▋
	BlockLeftHalf             = "\u258c" // ▌
	BlockLeftThreeEighths     = "\u258d" // ▍
	BlockLeftOneQuarter       = "\u258e" // ▎
	BlockLeftOneEighth        = "\u258f" // ▏
	BlockRightHalf            = "\u2590" // ▐
	BlockRightOneEighth       = "\u2595" // ▕
	BlockLowerHalf            = "\u2584" // ▄
	BlackDownPointingTriangle = "\u25bc" // ▼
	BlackCircle               = "\u25cf" // ●

	// Legacy computing right blocks. Not every font has them.
	BlockRightOneQuarter    = "\U0001fb87" // 🮇
	BlockRightThreeEighths  = "\U0001fb88" // 🮈
	BlockRightFiveEighths   = "\U0001fb89" // 🮉
	BlockRightThreeQuarters = "\U0001fb8a" // 🮊
	BlockRightSevenEighths  = "\U0001fb8b" // 🮋
)
