package tui

import (
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/breaker/internal/aim"
	"github.com/verte-zerg/breaker/internal/model"
	"github.com/verte-zerg/breaker/internal/session"
)

const (
	defaultFOV = 45.0
	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2.0
	nearPlane  = 0.5
	bobHeight  = 0.15
	bobSpeed   = 2.0
)

// Palette slots used by the scene canvas.
const (
	styleSky = iota
	styleFloor
	styleDecor
	styleTarget
	styleHit
	styleCrosshair
	styleHUD
	styleHUDAlert
)

// environment holds the colors of one background.
type environment struct {
	sky       string
	floor     string
	decor     string
	target    string
	hit       string
	hud       string
	floorRune rune
	decorRune rune
}

var environments = map[session.Background]environment{
	session.White: {
		sky: "#F8FAFC", floor: "#E2E8F0", decor: "#CBD5E1",
		target: "#DC2626", hit: "#2563EB", hud: "#1F2937",
		floorRune: '·', decorRune: ' ',
	},
	session.Space: {
		sky: "#05060A", floor: "#222222", decor: "#F0F0F0",
		target: "#FF4D4F", hit: "#60A5FA", hud: "#F0F0F0",
		floorRune: '+', decorRune: '.',
	},
	session.School: {
		sky: "#E0F2FE", floor: "#D4A373", decor: "#FEFAE0",
		target: "#B91C1C", hit: "#1D4ED8", hud: "#3F2D1C",
		floorRune: '=', decorRune: ' ',
	},
}

func paletteFor(bg session.Background) []lipgloss.Style {
	env, ok := environments[bg]
	if !ok {
		env = environments[session.White]
	}
	base := lipgloss.NewStyle().Background(lipgloss.Color(env.sky))
	floor := lipgloss.NewStyle().Background(lipgloss.Color(env.floor))
	return []lipgloss.Style{
		styleSky:       base.Foreground(lipgloss.Color(env.decor)),
		styleFloor:     floor.Foreground(lipgloss.Color(env.decor)),
		styleDecor:     base.Foreground(lipgloss.Color(env.decor)),
		styleTarget:    base.Foreground(lipgloss.Color(env.target)).Bold(true),
		styleHit:       base.Foreground(lipgloss.Color(env.hit)).Bold(true),
		styleCrosshair: base.Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
		styleHUD:       base.Foreground(lipgloss.Color(env.hud)).Bold(true),
		styleHUDAlert:  base.Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	}
}

// projector maps world points onto a width x height cell grid.
type projector struct {
	cam    aim.Camera
	width  int
	height int
	focal  float64
}

func newProjector(cam aim.Camera, width, height int, fovDeg float64) projector {
	if fovDeg <= 0 || fovDeg >= 180 {
		fovDeg = defaultFOV
	}
	half := fovDeg * math.Pi / 360
	return projector{
		cam:    cam,
		width:  width,
		height: height,
		focal:  (float64(height) / 2) / math.Tan(half),
	}
}

// project returns the cell for p and its depth along the view axis. Points
// behind the near plane are not visible.
func (p projector) project(pt model.Vec3) (x, y int, depth float64, ok bool) {
	d := pt.Sub(p.cam.Position)
	depth = d.Dot(p.cam.Forward())
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	sx := d.Dot(p.cam.Right()) / depth
	sy := d.Dot(p.cam.Up()) / depth
	x = int(math.Round(float64(p.width)/2 + sx*p.focal*cellAspect))
	y = int(math.Round(float64(p.height)/2 - sy*p.focal))
	return x, y, depth, true
}

// horizon returns the row where the floor plane meets the sky.
func (p projector) horizon() int {
	return int(math.Round(float64(p.height)/2 + math.Tan(p.cam.Pitch)*p.focal))
}

// bobOffset is the cosmetic float applied to a target at animation time t.
func bobOffset(t float64) func(model.TargetView) model.Vec3 {
	return func(v model.TargetView) model.Vec3 {
		return model.Vec3{Y: bobHeight * math.Sin(t*bobSpeed+v.Phase)}
	}
}

// drawScene paints environment, targets far to near, and the crosshair.
func drawScene(c *canvas, p projector, bg session.Background, targets []model.TargetView, offset func(model.TargetView) model.Vec3) {
	env, ok := environments[bg]
	if !ok {
		env = environments[session.White]
	}
	horizon := p.horizon()
	yawShift := int(math.Round(p.cam.Yaw * p.focal * cellAspect))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if y > horizon {
				if (x+y-yawShift)%6 == 0 {
					c.set(x, y, env.floorRune, styleFloor)
				} else {
					c.set(x, y, ' ', styleFloor)
				}
				continue
			}
			if env.decorRune != ' ' && starAt(x-yawShift, y) {
				c.set(x, y, env.decorRune, styleDecor)
			}
		}
	}

	type placed struct {
		view  model.TargetView
		x, y  int
		depth float64
	}
	var visible []placed
	for _, v := range targets {
		pos := v.Position
		if offset != nil {
			pos = pos.Add(offset(v))
		}
		x, y, depth, ok := p.project(pos)
		if !ok {
			continue
		}
		visible = append(visible, placed{view: v, x: x, y: y, depth: depth})
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})
	for _, v := range visible {
		style := styleTarget
		if v.view.IsHit {
			style = styleHit
		}
		c.centered(v.x, v.y, "["+v.view.Word+"]", style)
	}

	cx, cy := c.width/2, c.height/2
	c.set(cx, cy, '+', styleCrosshair)
}

// starAt scatters stars deterministically so they stay put between frames.
func starAt(x, y int) bool {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	return h%53 == 0
}
