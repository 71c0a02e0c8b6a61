package draw

// shape is a polygon in unit coordinates (0..1 on both axes).
type shape struct {
	points []Point
	filled bool
}

// sprite is a vector drawing stretched into the target rectangle.
type sprite struct {
	shapes []shape
	lines  [][2]Point
	label  string
	framed bool // outline the whole rectangle
}

func (s sprite) draw(c *Canvas, r Rect) {
	if s.framed {
		c.DrawRect(r)
	}
	for _, sh := range s.shapes {
		points := c.BorrowPoints(len(sh.points))
		for i, p := range sh.points {
			points[i] = r.At(p.X, p.Y)
		}
		c.DrawPolygon(points, sh.filled)
	}
	for _, l := range s.lines {
		c.DrawLine(r.At(l[0].X, l[0].Y), r.At(l[1].X, l[1].Y))
	}
	if s.label != "" {
		center := r.Center()
		c.DrawText(center.X, center.Y, s.label)
	}
}

// runner builds one running frame from arm and leg end points.
// The hips sit at (0.5, 0.6) and the shoulders at (0.5, 0.35).
func runner(leftArm, rightArm, leftFoot, rightFoot Point) sprite {
	hip := Point{0.5, 0.6}
	shoulder := Point{0.5, 0.35}
	return sprite{
		shapes: []shape{{
			points: []Point{{0.4, 0}, {0.6, 0}, {0.6, 0.2}, {0.4, 0.2}},
			filled: true,
		}},
		lines: [][2]Point{
			{{0.5, 0.2}, hip},
			{shoulder, leftArm},
			{shoulder, rightArm},
			{hip, leftFoot},
			{hip, rightFoot},
		},
	}
}

func key(letter string) sprite {
	return sprite{framed: true, label: letter}
}

var sprites = map[Asset]sprite{
	AssetRun1: runner(Point{0.25, 0.5}, Point{0.8, 0.3}, Point{0.25, 1}, Point{0.75, 1}),
	AssetRun2: runner(Point{0.35, 0.5}, Point{0.7, 0.4}, Point{0.4, 1}, Point{0.65, 0.95}),
	AssetRun3: runner(Point{0.5, 0.55}, Point{0.55, 0.5}, Point{0.5, 1}, Point{0.55, 0.85}),
	AssetRun4: runner(Point{0.7, 0.5}, Point{0.25, 0.35}, Point{0.65, 1}, Point{0.35, 0.95}),

	AssetObstacle: {
		shapes: []shape{{points: []Point{{0, 1}, {0.5, 0}, {1, 1}}, filled: true}},
	},
	AssetEnemy1: {
		shapes: []shape{{
			points: []Point{{0, 1}, {0.1, 0.4}, {0.5, 0}, {0.9, 0.4}, {1, 1}},
			filled: true,
		}},
	},
	AssetEnemy2: {
		shapes: []shape{{
			points: []Point{{0, 0.2}, {0.3, 0.5}, {0.5, 0.3}, {0.7, 0.5}, {1, 0.2}, {0.8, 0.9}, {0.5, 0.7}, {0.2, 0.9}},
			filled: true,
		}},
	},
	AssetEnemyDie: {
		shapes: []shape{{
			points: []Point{{0.3, 0}, {0.7, 0}, {1, 0.3}, {1, 0.7}, {0.7, 1}, {0.3, 1}, {0, 0.7}, {0, 0.3}},
		}},
		lines: [][2]Point{
			{{0.2, 0.2}, {0.8, 0.8}},
			{{0.8, 0.2}, {0.2, 0.8}},
		},
	},
	AssetKeyW: key("W"),
	AssetKeyA: key("A"),
	AssetKeyS: key("S"),
	AssetKeyD: key("D"),

	AssetSpark: {
		shapes: []shape{{points: []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, filled: true}},
	},
}
