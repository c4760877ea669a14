package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Particle Field - wheel/arrows: scroll, Esc/Q: quit"

	// CanvasID is the lookup key of the hero drawing surface.
	CanvasID = "particleCanvas"

	// Page is this many viewports tall; the canvas fills the first one.
	PageScreens = 4

	// Particle population
	MaxParticles     = 80
	WidthPerParticle = 20

	// Particle ranges, as base + rand*span; each max is exclusive
	SizeBase     = 0.5
	SizeSpan     = 2.0
	SpeedSpan    = 0.3
	OpacityBase  = 0.1
	OpacitySpan  = 0.5
	SizeMax      = SizeBase + SizeSpan
	SpeedMax     = SpeedSpan / 2
	OpacityMax   = OpacityBase + OpacitySpan
	LinkDistance = 150.0
	LinkAlpha    = 0.1
	LinkWidth    = 0.5

	// Tint is rgb(6, 182, 212) in HSV.
	TintHue        = 188.74
	TintSaturation = 0.9717
	TintValue      = 0.8314

	// Cursor followers
	GlowRate   = 0.08
	DotRate    = 0.2
	GlowRadius = 180
	DotRadius  = 4

	// Scrolling
	WheelStep = 48
	KeyStep   = 24

	// Terminal
	CellWidth     = 8
	CellHeight    = 16
	FrameInterval = 16 * time.Millisecond

	// HUD
	PassRingSize   = 120
	SparkBars      = 60
	SparkHeight    = 24
	SparkBarStride = 2
)

// Background is the page colour behind the canvas.
var Background = color.RGBA{R: 10, G: 14, B: 26, A: 255}

// SectionTitles label the viewport-tall bands of the page; the first is
// the particle hero.
var SectionTitles = [PageScreens]string{"", "About", "Projects", "Contact"}
