package core

// Color is a semantic palette entry for a screen cell.
// The platform layer decides how each entry is displayed.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorHill
	ColorGround
	ColorGrass
	ColorStar
	ColorStarGlow
	ColorEnemy
	ColorEnemyEye
	ColorPlayer
	ColorPlayerEye
	ColorBackpack
	ColorShadow
	ColorOverlay
	ColorText
	ColorButton
	ColorButtonActive
)

// String returns the palette name, used in screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorSky:
		return "sky"
	case ColorCloud:
		return "cloud"
	case ColorHill:
		return "hill"
	case ColorGround:
		return "ground"
	case ColorGrass:
		return "grass"
	case ColorStar:
		return "star"
	case ColorStarGlow:
		return "star-glow"
	case ColorEnemy:
		return "enemy"
	case ColorEnemyEye:
		return "enemy-eye"
	case ColorPlayer:
		return "player"
	case ColorPlayerEye:
		return "player-eye"
	case ColorBackpack:
		return "backpack"
	case ColorShadow:
		return "shadow"
	case ColorOverlay:
		return "overlay"
	case ColorText:
		return "text"
	case ColorButton:
		return "button"
	case ColorButtonActive:
		return "button-active"
	default:
		return "unknown"
	}
}
