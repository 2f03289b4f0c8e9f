// Package levels provides level-file loading for the breakout game.
// It only produces tile grids; turning tiles into bricks is the game's job.
package levels

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Tile codes used in level files.
const (
	TileEmpty = 0 // No brick
	TileSolid = 1 // Indestructible brick
	TileMax   = 5 // Highest colored brick code (2..5 are destructible)
)

// Extension is the file extension of level files.
const Extension = ".lvl"

//go:embed builtin/*.lvl
var builtinFS embed.FS

// Level is a parsed level file.
type Level struct {
	ID       string
	Name     string
	Tiles    [][]int // [row][col] tile codes
	FilePath string
}

// Rows returns the number of tile rows.
func (l *Level) Rows() int {
	return len(l.Tiles)
}

// Cols returns the number of tile columns.
func (l *Level) Cols() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// CountBreakable returns the number of destructible bricks.
func (l *Level) CountBreakable() int {
	count := 0
	for _, row := range l.Tiles {
		for _, t := range row {
			if t > TileSolid {
				count++
			}
		}
	}
	return count
}

// Parse reads a level from r. Each non-empty line is one row of
// space-separated tile codes; lines starting with '#' are comments, and a
// "# name: ..." comment sets the display name.
func Parse(id string, r io.Reader) (Level, error) {
	lvl := Level{ID: id, Name: id}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if name, ok := strings.CutPrefix(strings.TrimSpace(line[1:]), "name:"); ok {
				lvl.Name = strings.TrimSpace(name)
			}
			continue
		}

		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Level{}, fmt.Errorf("levels: %s line %d: bad tile %q: %w", id, lineNo, f, err)
			}
			if v < TileEmpty || v > TileMax {
				return Level{}, fmt.Errorf("levels: %s line %d: tile %d out of range 0..%d", id, lineNo, v, TileMax)
			}
			row[i] = v
		}
		if len(lvl.Tiles) > 0 && len(row) != len(lvl.Tiles[0]) {
			return Level{}, fmt.Errorf("levels: %s line %d: row has %d tiles, expected %d", id, lineNo, len(row), len(lvl.Tiles[0]))
		}
		lvl.Tiles = append(lvl.Tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", id, err)
	}
	if len(lvl.Tiles) == 0 {
		return Level{}, fmt.Errorf("levels: %s: no tiles", id)
	}

	return lvl, nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader for level files under root on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: root}
}

// Builtin returns a loader over the levels shipped with the game.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: builtin levels missing: %v", err))
	}
	return &Loader{fsys: sub, root: "builtin"}
}

// LoadAll scans for level files and loads them.
// Invalid files are skipped; levels are sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), Extension) {
			return nil
		}

		lvl, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: scanning %s: %w", l.root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadByID loads the level whose file name (without extension) is id.
func (l *Loader) LoadByID(id string) (Level, error) {
	return l.LoadFile(id + Extension)
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return Level{}, fmt.Errorf("levels: open %s: %w", name, err)
	}
	defer f.Close()

	id := strings.TrimSuffix(path.Base(name), path.Ext(name))
	lvl, err := Parse(id, f)
	if err != nil {
		return Level{}, err
	}
	lvl.FilePath = path.Join(l.root, name)
	return lvl, nil
}

// LoadPlaylist loads the given IDs in order. IDs are looked up in the
// loaders in turn, so a user directory can override built-in levels.
func LoadPlaylist(ids []string, loaders ...*Loader) ([]Level, error) {
	out := make([]Level, 0, len(ids))
	for _, id := range ids {
		var (
			lvl     Level
			lastErr error
			found   bool
		)
		for _, l := range loaders {
			if l == nil {
				continue
			}
			var err error
			lvl, err = l.LoadByID(id)
			if err == nil {
				found = true
				break
			}
			lastErr = err
		}
		if !found {
			if lastErr == nil {
				lastErr = fmt.Errorf("levels: no loader for %q", id)
			}
			return nil, lastErr
		}
		out = append(out, lvl)
	}
	return out, nil
}
