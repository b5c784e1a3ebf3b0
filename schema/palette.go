package schema

// Palette is a fixed list of colors indexed cyclically by position.
type Palette []Color

// At returns palette[index mod len]. An empty palette yields the zero color.
func (p Palette) At(index int) Color { return cycle(p, index) }

// Brand colors shared by selection highlights and single-series charts.
var (
	BrandBlue      = RGB(3, 49, 128)
	BrandBlueMuted = RGB(77, 111, 168)
	BarDefault     = RGBA(59, 130, 246, 0.8)
	RadarAccent    = RGB(99, 102, 241)
	GridLine       = RGBA(0, 0, 0, 0.05)
	RadarGridLine  = RGBA(0, 0, 0, 0.1)
	White          = RGB(255, 255, 255)
)

// ComparisonPalette assigns legend colors to selected items by column position.
var ComparisonPalette = Palette{
	RGBA(3, 49, 128, 0.8),   // blue
	RGBA(236, 72, 153, 0.8), // pink
	RGBA(34, 197, 94, 0.8),  // green
	RGBA(249, 115, 22, 0.8), // orange
	RGBA(139, 92, 246, 0.8), // purple
	RGBA(255, 41, 12, 0.8),  // red
}

// DoughnutPalette colors doughnut slices.
var DoughnutPalette = Palette{
	RGBA(3, 49, 128, 0.8),
	RGBA(99, 102, 241, 0.8),
	RGBA(139, 92, 246, 0.8),
	RGBA(168, 85, 247, 0.8),
	RGBA(217, 70, 239, 0.8),
	RGBA(236, 72, 153, 0.8),
	RGBA(244, 63, 94, 0.8),
	RGBA(251, 146, 60, 0.8),
}

// FunnelPalette colors funnel steps top to bottom.
var FunnelPalette = Palette{
	RGBA(59, 130, 246, 0.8),
	RGBA(99, 102, 241, 0.8),
	RGBA(139, 92, 246, 0.8),
	RGBA(168, 85, 247, 0.8),
	RGBA(217, 70, 239, 0.8),
	RGBA(236, 72, 153, 0.8),
}

// JourneyPalette colors the user journey legend rows.
var JourneyPalette = Palette{
	RGB(3, 49, 128),
	RGB(245, 158, 11),
	RGB(34, 197, 94),
	RGB(139, 92, 246),
	RGB(236, 72, 153),
	RGB(239, 68, 68),
	RGB(6, 182, 212),
	RGB(249, 115, 22),
}
