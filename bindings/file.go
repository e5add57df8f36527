// This file is part of sdlport.
//
// sdlport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlport.  If not, see <https://www.gnu.org/licenses/>.

package bindings

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/abuse-go/sdlport/curated"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/logger"
)

// Format of a bindings file.
type Format string

// List of supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromFilename returns the format implied by the file extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", curated.Errorf(UnknownFormat, filename)
}

// the representation of a bindings file. keys are named using the names in
// the keys package.
type file struct {
	Names   map[string]string     `toml:"names" yaml:"names"`
	Buttons map[string]buttonFile `toml:"buttons" yaml:"buttons"`
}

type buttonFile struct {
	Key string `toml:"key" yaml:"key"`
	Alt string `toml:"alt,omitempty" yaml:"alt,omitempty"`
}

// Load bindings from a file. Bindings not in the file keep their default
// value.
func Load(filename string) (*Bindings, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	b, err := Decode(f, format)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "bindings", "loaded %d names and %d buttons from %s", len(b.names), len(b.buttons), filename)

	return b, nil
}

// Decode bindings from an io.Reader. Bindings not in the data keep their
// default value.
func Decode(r io.Reader, format Format) (*Bindings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	var fl file
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &fl)
	case YAML:
		err = yaml.Unmarshal(data, &fl)
	default:
		return nil, curated.Errorf(UnknownFormat, format)
	}
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	b := Default()

	for name, v := range fl.Names {
		k, err := keys.Parse(v)
		if err != nil {
			return nil, curated.Errorf(BadBinding, name, err)
		}
		b.names[name] = k
	}

	for name, v := range fl.Buttons {
		var btn Button
		btn.Key, err = keys.Parse(v.Key)
		if err != nil {
			return nil, curated.Errorf(BadBinding, name, err)
		}
		if v.Alt != "" {
			btn.Alt, err = keys.Parse(v.Alt)
			if err != nil {
				return nil, curated.Errorf(BadBinding, name, err)
			}
		}
		b.buttons[name] = btn
	}

	return b, nil
}

// Encode bindings to an io.Writer in the specified format.
func (b *Bindings) Encode(w io.Writer, format Format) error {
	fl := file{
		Names:   make(map[string]string, len(b.names)),
		Buttons: make(map[string]buttonFile, len(b.buttons)),
	}
	for name, k := range b.names {
		fl.Names[name] = k.String()
	}
	for name, btn := range b.buttons {
		bf := buttonFile{Key: btn.Key.String()}
		if btn.Alt != keys.None {
			bf.Alt = btn.Alt.String()
		}
		fl.Buttons[name] = bf
	}

	var data []byte
	var err error
	switch format {
	case TOML:
		data, err = toml.Marshal(fl)
	case YAML:
		data, err = yaml.Marshal(fl)
	default:
		return curated.Errorf(UnknownFormat, format)
	}
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	_, err = io.Copy(w, bytes.NewReader(data))
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	return nil
}
