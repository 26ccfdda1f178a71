package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/Kuadribal/touchblob/internal/anim"
	"github.com/pelletier/go-toml/v2"
)

type spritesFile struct {
	Animations map[string]spriteAnimation `toml:"animations"`
}

type spriteAnimation struct {
	Loop       *bool                      `toml:"loop"`
	Speed      float64                    `toml:"speed"`
	Directions map[string]spriteDirection `toml:"directions"`
}

type spriteDirection struct {
	Frames []string `toml:"frames"`
}

// LoadSprites reads a sprite set. The result only holds what the file
// provides: blank frames, empty or unknown directions and animations with
// no frames are dropped. Merge it over anim.DefaultLibrary before use.
func LoadSprites(path string) (anim.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprites file: %w", err)
	}
	return ParseSprites(data)
}

func ParseSprites(data []byte) (anim.Library, error) {
	var file spritesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sprites file: %w", err)
	}

	defaults := anim.DefaultLibrary()
	lib := make(anim.Library)

	for name, a := range file.Animations {
		def := anim.Definition{
			Loop:       defaults[name].Loop,
			SpeedScale: a.Speed,
			Directions: make(map[anim.Direction][]anim.Frame),
		}
		if a.Loop != nil {
			def.Loop = *a.Loop
		}

		for dirName, d := range a.Directions {
			dir := anim.Direction(dirName)
			if !dir.Valid() {
				continue
			}
			var frames []anim.Frame
			for _, art := range d.Frames {
				if strings.TrimSpace(art) == "" {
					continue
				}
				frames = append(frames, anim.Frame{Art: strings.TrimRight(art, "\n")})
			}
			if len(frames) > 0 {
				def.Directions[dir] = frames
			}
		}

		if len(def.Directions) > 0 {
			lib[name] = def
		}
	}

	return lib, nil
}

// DefaultSprites is written next to a new blob.toml.
const DefaultSprites = `# Frames are plain text, one string per frame.
# Directions: south, east, north, west. Missing directions fall back to south.

[animations.idle]
loop = true

[animations.idle.directions.south]
frames = [
'''
 .---.
( o o )
 '---'
''',
'''
 .---.
( o o )
 '---'
''',
'''
 .---.
( - - )
 '---'
''',
]

[animations.idle.directions.east]
frames = [
'''
 .---.
(  o o)
 '---'
''',
]

[animations.idle.directions.west]
frames = [
'''
 .---.
(o o  )
 '---'
''',
]

[animations.jump.directions.south]
frames = [
'''
 .---.
( ^ ^ )
 '---'
''',
'''
 .-^-.
( ^o^ )
 '---'
''',
'''
 .---.
( ^ ^ )
 '---'
''',
]

[animations.splat.directions.south]
frames = [
'''

.-----.
(_x_x_)
''',
'''

.-----.
(_>_<_)
''',
]

[animations.slide.directions.east]
frames = [
'''
  .---.
 (  o o)
~ '---'
''',
'''
  .---.
 (  o o)
~~'---'
''',
]

[animations.slide.directions.west]
frames = [
'''
 .---.
(o o  )
 '---' ~
''',
'''
 .---.
(o o  )
 '---'~~
''',
]

[animations.squish.directions.south]
frames = [
'''

 .---.
(>_<)
''',
'''

 .---.
( >_< )
''',
]

[animations.poke.directions.south]
frames = [
'''
 .---.
( O O )
 '-o-'
''',
]
`
