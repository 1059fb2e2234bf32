// Package track loads course track descriptions and turns them into slide
// packages.
//
// A track file lists modules, their units and the sections of each unit:
//
//	name: Intro to Systems
//	modules:
//	  - name: Basics
//	    units:
//	      - name: Overview
//	        sections:
//	          - content: basics/overview.md
//	            objectives: [Understand X]
//
// Module and unit indexes are their 1-based positions in the file. Relative
// paths resolve against the directory of the track file.
package track

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
	"git.home.luguber.info/inful/trackdeck/internal/slides"
)

// Track is a parsed track file.
type Track struct {
	Name    string   `yaml:"name"`
	Modules []Module `yaml:"modules"`

	path string
}

// Module is a numbered group of units.
type Module struct {
	Name  string `yaml:"name"`
	Units []Unit `yaml:"units"`
}

// Unit becomes one slide deck.
type Unit struct {
	Name     string    `yaml:"name"`
	Template string    `yaml:"template,omitempty"`
	Sections []Section `yaml:"sections"`
}

// Section references one content document and its bullet lists.
type Section struct {
	Content        string   `yaml:"content"`
	Objectives     []string `yaml:"objectives,omitempty"`
	Summary        []string `yaml:"summary,omitempty"`
	FurtherReading []string `yaml:"further_reading,omitempty"`
	Images         []string `yaml:"images,omitempty"`
}

// Load reads and validates the track file at path. All file references in
// the returned Track are resolved against the track file's directory.
func Load(path string) (*Track, error) {
	// #nosec G304 -- the track path is chosen by the user.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, derrors.NewError(derrors.CategoryNotFound, "track file not found").
				WithContext("path", path).
				UserAction().
				Build()
		}
		return nil, derrors.FileSystemError("failed to read track file").WithCause(err).Build()
	}

	var t Track
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, derrors.TrackError("failed to parse track file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	t.path = path

	if err := t.validate(); err != nil {
		return nil, derrors.TrackError("invalid track file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	t.resolve(filepath.Dir(path))
	return &t, nil
}

// Path returns the file the track was loaded from.
func (t *Track) Path() string {
	return t.path
}

func (t *Track) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("track name is required")
	}
	for mi, m := range t.Modules {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("module %d: name is required", mi+1)
		}
		for ui, u := range m.Units {
			if strings.TrimSpace(u.Name) == "" {
				return fmt.Errorf("unit %d.%d: name is required", mi+1, ui+1)
			}
			for si, s := range u.Sections {
				if strings.TrimSpace(s.Content) == "" {
					return fmt.Errorf("unit %d.%d section %d: content is required", mi+1, ui+1, si+1)
				}
			}
		}
	}
	return nil
}

func (t *Track) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for mi := range t.Modules {
		for ui := range t.Modules[mi].Units {
			u := &t.Modules[mi].Units[ui]
			u.Template = abs(u.Template)
			for si := range u.Sections {
				s := &u.Sections[si]
				s.Content = abs(s.Content)
				for i := range s.Images {
					s.Images[i] = abs(s.Images[i])
				}
			}
		}
	}
}

// Package feeds every unit of the track through a slides.PackageBuilder.
func (t *Track) Package() (*slides.Package, error) {
	b := slides.NewPackageBuilder(t.Name)
	for mi, m := range t.Modules {
		for ui, u := range m.Units {
			deck := b.Deck(u.Name, m.Name, uint(mi+1), uint(ui+1), u.Template) // #nosec G115 -- indexes are positive
			for _, s := range u.Sections {
				sb := deck.Section(s.Content)
				for _, o := range s.Objectives {
					sb.Objective(o)
				}
				for _, item := range s.Summary {
					sb.Summary(item)
				}
				for _, r := range s.FurtherReading {
					sb.FurtherReading(r)
				}
				for _, img := range s.Images {
					sb.Image(img)
				}
				sb.Add()
			}
			deck.Add()
		}
	}
	return b.Build()
}

// Files lists every file the track depends on: the track file itself, then
// content documents, templates and images in track order. Duplicates are
// reported once.
func (t *Track) Files() []string {
	seen := make(map[string]struct{})
	files := make([]string, 0)
	add := func(p string) {
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	add(t.path)
	for _, m := range t.Modules {
		for _, u := range m.Units {
			add(u.Template)
			for _, s := range u.Sections {
				add(s.Content)
				for _, img := range s.Images {
					add(img)
				}
			}
		}
	}
	return files
}
