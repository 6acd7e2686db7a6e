// Package share genera los artefactos de compartir de un perfil: la
// imagen SVG del mosaico y los textos/URLs de intent para redes.
// Todo es formateo puro y determinístico sobre un perfil ya armado;
// las acciones de navegador (clipboard, descarga) quedan del lado del
// cliente.
package share

import (
	"fmt"
	"math"
	"strings"

	"mosaic-mind/internal/domain"
)

const (
	cardWidth  = 1200
	cardHeight = 800
	chartSize  = 300
	siteHost   = "mosaicmind.vercel.app"
)

// RenderCard produce la tarjeta SVG 1200x800 del perfil: encabezado,
// gráfico radial centrado y la complejidad del patrón al pie.
func RenderCard(profile domain.MosaicProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, cardWidth, cardHeight)
	b.WriteString(`<defs>
<linearGradient id="gradient" x1="0%" y1="0%" x2="100%" y2="0%">
<stop offset="0%" stop-color="#ef4444"/>
<stop offset="50%" stop-color="#3b82f6"/>
<stop offset="100%" stop-color="#10b981"/>
</linearGradient>
<style>
.text { font-family: Arial, sans-serif; }
.title { font-size: 64px; font-weight: bold; }
.subtitle { font-size: 32px; }
.label { font-size: 28px; font-weight: 500; fill: #374151; }
.complexity { font-size: 36px; font-weight: bold; fill: #1f2937; }
.url { font-size: 24px; fill: #6b7280; }
</style>
</defs>
<rect width="100%" height="100%" fill="white"/>
<rect width="100%" height="150" fill="#615FFF"/>
<text x="600" y="80" text-anchor="middle" class="text title" fill="white">MosaicMind</text>
<text x="600" y="130" text-anchor="middle" class="text subtitle" fill="white">Personality Assessment Results</text>
`)

	b.WriteString(`<g transform="translate(600, 450)">`)
	b.WriteString(renderRadialChart(profile.Scores, chartSize))
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<text x="600" y="720" text-anchor="middle" class="text complexity">Pattern Complexity: %d/100</text>`, profile.Visualization.Complexity)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<text x="600" y="770" text-anchor="middle" class="text url">%s</text>`, siteHost)
	b.WriteString("\n</svg>")

	return b.String()
}

// renderRadialChart dibuja el gráfico radial: anillos de grilla,
// polígono con gradiente, puntos por categoría coloreados por tier y
// etiquetas en mayúsculas.
func renderRadialChart(scores []domain.PersonalityScore, size int) string {
	scale := float64(size) / 60.0
	var b strings.Builder

	for _, r := range []float64{40, 30, 20, 10} {
		fmt.Fprintf(&b, `<circle cx="0" cy="0" r="%s" fill="none" stroke="#e5e7eb" stroke-width="1"/>`, fmtCoord(r*scale))
		b.WriteString("\n")
	}

	if len(scores) > 0 {
		var points []string
		for i, s := range scores {
			x, y := pointAt(i, len(scores), s.Score, scale)
			points = append(points, fmtCoord(x)+","+fmtCoord(y))
		}
		fmt.Fprintf(&b, `<polygon points="%s" fill="rgba(59, 130, 246, 0.1)" stroke="url(#gradient)" stroke-width="%s"/>`,
			strings.Join(points, " "), fmtCoord(2*scale))
		b.WriteString("\n")
	}

	for i, s := range scores {
		x, y := pointAt(i, len(scores), s.Score, scale)
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="white" stroke-width="%s"/>`,
			fmtCoord(x), fmtCoord(y), fmtCoord(4*scale), tierColor(s.Score), fmtCoord(1.5*scale))
		b.WriteString("\n")
	}

	for i, s := range scores {
		angle := angleAt(i, len(scores))
		labelRadius := 46 * scale
		x := labelRadius * math.Cos(angle)
		y := labelRadius * math.Sin(angle)
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="%s" dominant-baseline="middle" class="text label">%s</text>`,
			fmtCoord(x), fmtCoord(y), labelAnchor(angle), strings.ToUpper(string(s.Category)))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `<circle cx="0" cy="0" r="%s" fill="#6b7280" opacity="0.5"/>`, fmtCoord(2*scale))
	return b.String()
}

func angleAt(index, total int) float64 {
	return float64(index) * 2 * math.Pi / float64(total)
}

// pointAt ubica el punto de una categoría: radio 10 más hasta 30
// unidades según el puntaje, escalado al tamaño del gráfico.
func pointAt(index, total, score int, scale float64) (x, y float64) {
	angle := angleAt(index, total)
	radius := (10 + float64(score)/100*30) * scale
	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// tierColor usa los mismos cortes que el enriquecimiento: verde alto,
// azul moderado, rojo bajo.
func tierColor(score int) string {
	switch {
	case score >= 70:
		return "#10b981"
	case score >= 30:
		return "#3b82f6"
	default:
		return "#ef4444"
	}
}

func labelAnchor(angle float64) string {
	if math.Abs(angle) < math.Pi/6 || math.Abs(angle) > 5*math.Pi/6 {
		return "middle"
	}
	if angle > 0 && angle < math.Pi {
		return "start"
	}
	return "end"
}

func fmtCoord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
