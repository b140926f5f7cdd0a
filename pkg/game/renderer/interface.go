package renderer

// Translator looks up user-facing strings by key.
// *gotext.Po satisfies it; missing keys come back unchanged.
type Translator interface {
	Get(str string, vars ...interface{}) string
}

// Translation keys
const (
	KeyHUDRotation = "HUD_ROTATION"
	KeyHUDFPS      = "HUD_FPS"
	KeyHUDHelp     = "HUD_HELP"
	KeyPausedTitle = "PAUSED_TITLE"
	KeyPausedHint  = "PAUSED_HINT"
)

// identity returns keys untranslated
type identity struct{}

func (identity) Get(str string, _ ...interface{}) string {
	return str
}
