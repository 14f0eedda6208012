package cyberstrike

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
)

const (
	gridSize = 12
	tileSize = 16 // Collision space units per grid cell

	startX, startY = 2, 2
	exitX, exitY   = gridSize - 1, gridSize - 1

	tagWall   = "wall"
	tagData   = "data"
	tagExit   = "exit"
	tagPlayer = "player"
)

//go:embed sectors/*.tmx
var sectorFS embed.FS

type cellKind int

const (
	cellEmpty cellKind = iota
	cellWall
	cellData
	cellExit
)

// sentinelSpawn is the initial placement of a patrolling sentinel.
type sentinelSpawn struct {
	X, Y       float64
	Horizontal bool
}

// layout is the static content of one sector.
type layout struct {
	cells     [gridSize][gridSize]cellKind // [y][x]
	sentinels []sentinelSpawn
	authored  bool
}

// loadSector reads an authored sector map. It returns fs.ErrNotExist when
// the sector has no map.
func loadSector(fsys fs.FS, n int) (*layout, error) {
	path := fmt.Sprintf("sectors/sector%d.tmx", n)
	if _, err := fs.Stat(fsys, path); err != nil {
		return nil, err
	}
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("cyberstrike: load %s: %w", path, err)
	}
	if m.Width != gridSize || m.Height != gridSize {
		return nil, fmt.Errorf("cyberstrike: %s is %dx%d, want %dx%d", path, m.Width, m.Height, gridSize, gridSize)
	}

	l := &layout{authored: true}
	for _, layer := range m.Layers {
		if layer.Name != "grid" {
			continue
		}
		for y := 0; y < gridSize; y++ {
			for x := 0; x < gridSize; x++ {
				tile := layer.Tiles[y*gridSize+x]
				if tile.IsNil() {
					continue
				}
				// Local tile IDs: 0 wall, 1 data, 2 exit.
				switch tile.ID {
				case 0:
					l.cells[y][x] = cellWall
				case 1:
					l.cells[y][x] = cellData
				case 2:
					l.cells[y][x] = cellExit
				}
			}
		}
		break
	}

	for _, og := range m.ObjectGroups {
		if og.Name != "sentinels" {
			continue
		}
		for _, o := range og.Objects {
			l.sentinels = append(l.sentinels, sentinelSpawn{
				X:          o.X / float64(m.TileWidth),
				Y:          o.Y / float64(m.TileHeight),
				Horizontal: o.Properties.GetString("dir") != "v",
			})
		}
	}
	l.cells[startY][startX] = cellEmpty
	l.cells[exitY][exitX] = cellExit
	return l, nil
}

// generateSector builds a random sector. Walls stay clear of the start
// corner, and layouts whose exit is unreachable are rerolled a few times.
func generateSector(rng *rand.Rand, wallChance, dataChance float64) *layout {
	var l *layout
	for try := 0; try < 20; try++ {
		l = &layout{}
		for y := 0; y < gridSize; y++ {
			for x := 0; x < gridSize; x++ {
				switch {
				case rng.Float64() < wallChance && x > startX && y > startY:
					l.cells[y][x] = cellWall
				case rng.Float64() < dataChance:
					l.cells[y][x] = cellData
				}
			}
		}
		l.cells[exitY][exitX] = cellExit
		l.cells[startY][startX] = cellEmpty
		if l.reachable() {
			break
		}
	}
	return l
}

// reachable reports whether the exit can be walked to from the start.
func (l *layout) reachable() bool {
	var seen [gridSize][gridSize]bool
	queue := [][2]int{{startX, startY}}
	seen[startY][startX] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p[0] == exitX && p[1] == exitY {
			return true
		}
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			x, y := p[0]+d[0], p[1]+d[1]
			if x < 0 || y < 0 || x >= gridSize || y >= gridSize || seen[y][x] || l.cells[y][x] == cellWall {
				continue
			}
			seen[y][x] = true
			queue = append(queue, [2]int{x, y})
		}
	}
	return false
}

// sector is a layout loaded into a collision space. Every non-empty cell is
// an object inset inside its own space cell, so broadphase cell queries
// resolve to exactly one grid cell.
type sector struct {
	*layout
	space *resolv.Space
	scout *resolv.Object
}

func newSector(l *layout) *sector {
	s := &sector{
		layout: l,
		space:  resolv.NewSpace(gridSize*tileSize, gridSize*tileSize, tileSize, tileSize),
	}
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			var tag string
			switch l.cells[y][x] {
			case cellWall:
				tag = tagWall
			case cellData:
				tag = tagData
			case cellExit:
				tag = tagExit
			default:
				continue
			}
			s.space.Add(resolv.NewObject(float64(x*tileSize+1), float64(y*tileSize+1), tileSize-2, tileSize-2, tag))
		}
	}
	s.scout = resolv.NewObject(0, 0, tileSize/2, tileSize/2, tagPlayer)
	s.space.Add(s.scout)
	s.place(startX, startY)
	return s
}

// place moves the scout into grid cell (x, y).
func (s *sector) place(x, y int) {
	s.scout.X = float64(x*tileSize + tileSize/4)
	s.scout.Y = float64(y*tileSize + tileSize/4)
	s.scout.Update()
}

// blocked reports whether stepping from (x, y) by (dx, dy) leaves the grid
// or enters a wall.
func (s *sector) blocked(x, y, dx, dy int) bool {
	nx, ny := x+dx, y+dy
	if nx < 0 || ny < 0 || nx >= gridSize || ny >= gridSize {
		return true
	}
	s.place(x, y)
	return s.scout.Check(float64(dx*tileSize), float64(dy*tileSize), tagWall) != nil
}

// collect removes the data node in cell (x, y), if any.
func (s *sector) collect(x, y int) bool {
	s.place(x, y)
	c := s.scout.Check(0, 0, tagData)
	if c == nil {
		return false
	}
	for _, o := range c.ObjectsByTags(tagData) {
		s.space.Remove(o)
	}
	s.cells[y][x] = cellEmpty
	return true
}

// onExit reports whether cell (x, y) holds the exit.
func (s *sector) onExit(x, y int) bool {
	s.place(x, y)
	return s.scout.Check(0, 0, tagExit) != nil
}

// sectorLayout returns the authored map for sector n, or a generated one.
func sectorLayout(n int, rng *rand.Rand, wallChance, dataChance float64) (*layout, error) {
	l, err := loadSector(sectorFS, n)
	if errors.Is(err, fs.ErrNotExist) {
		return generateSector(rng, wallChance, dataChance), nil
	}
	return l, err
}
