package priority

// Color is a palette swatch. Values are the css classes the web front end
// renders directly.
type Color string

const (
	ColorBlue        Color = "bg-blue-500"
	ColorGreen       Color = "bg-green-500"
	ColorOrange      Color = "bg-orange-500"
	ColorPurple      Color = "bg-purple-500"
	ColorPink        Color = "bg-pink-500"
	ColorRed         Color = "bg-red-500"
	ColorYellow      Color = "bg-yellow-500"
	ColorCyan        Color = "bg-cyan-500"
	ColorIndigo      Color = "bg-indigo-500"
	ColorViolet      Color = "bg-violet-500"
	ColorSky         Color = "bg-sky-500"
	ColorEmerald     Color = "bg-emerald-500"
	ColorAmber       Color = "bg-amber-500"
	ColorRose        Color = "bg-rose-500"
	ColorDarkBlue    Color = "bg-blue-700"
	ColorDarkGreen   Color = "bg-green-700"
	DefaultColor           = ColorBlue
)

type Swatch struct {
	Name  string `json:"name"`
	Value Color  `json:"value"`
}

// Palette is the fixed, ordered set of colors a priority may use.
var Palette = []Swatch{
	{Name: "Azul", Value: ColorBlue},
	{Name: "Verde", Value: ColorGreen},
	{Name: "Laranja", Value: ColorOrange},
	{Name: "Roxo", Value: ColorPurple},
	{Name: "Rosa", Value: ColorPink},
	{Name: "Vermelho", Value: ColorRed},
	{Name: "Amarelo", Value: ColorYellow},
	{Name: "Ciano", Value: ColorCyan},
	{Name: "Índigo", Value: ColorIndigo},
	{Name: "Violeta", Value: ColorViolet},
	{Name: "Azul Claro", Value: ColorSky},
	{Name: "Verde Claro", Value: ColorEmerald},
	{Name: "Laranja Claro", Value: ColorAmber},
	{Name: "Rosa Claro", Value: ColorRose},
	{Name: "Azul Escuro", Value: ColorDarkBlue},
	{Name: "Verde Escuro", Value: ColorDarkGreen},
}

func (c Color) Valid() bool {
	for _, s := range Palette {
		if s.Value == c {
			return true
		}
	}
	return false
}

// Name returns the display name, or the raw value for colors outside the
// palette (possible in imported data).
func (c Color) Name() string {
	for _, s := range Palette {
		if s.Value == c {
			return s.Name
		}
	}
	return string(c)
}
