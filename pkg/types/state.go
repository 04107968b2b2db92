package types

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/paths"
	"gopkg.in/yaml.v3"
)

// Declaration tags the kind of desired state
type Declaration string

const (
	// DeclarationFiles places a source file or tree at a destination
	DeclarationFiles Declaration = "files"

	// DeclarationDirectories ensures a bare directory exists
	DeclarationDirectories Declaration = "directories"
)

// InputFormat selects the encoding of the desired-state list
type InputFormat string

const (
	InputJSON InputFormat = "json"
	InputYAML InputFormat = "yaml"
)

// FileState places Source, found under one of the source roots, at
// Destination. Destination is absolute and tilde-expanded once decoded.
type FileState struct {
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
	LinkFiles   bool   `json:"link_files" yaml:"link_files"`
}

// State is one desired-state entry. Exactly one of File or Directory is set,
// matching Declaration.
type State struct {
	Declaration Declaration
	File        *FileState
	Directory   string
}

// NewFileState builds a files declaration, resolving its destination
func NewFileState(source, destination string, linkFiles bool) (State, error) {
	var s State
	err := s.setFile(FileState{Source: source, Destination: destination, LinkFiles: linkFiles})
	return s, err
}

// NewDirectoryState builds a directories declaration, resolving its destination
func NewDirectoryState(destination string) (State, error) {
	var s State
	err := s.setDirectory(destination)
	return s, err
}

// Destination returns the resolved destination of either variant
func (s State) Destination() string {
	if s.File != nil {
		return s.File.Destination
	}
	return s.Directory
}

func (s *State) setFile(fs FileState) error {
	if fs.Source == "" {
		return errors.New(errors.ErrDeserialize, "files state: missing field `source`")
	}
	dest, err := paths.ResolveDestination(fs.Destination)
	if err != nil {
		return errors.Wrap(err, errors.ErrDeserialize, "files state: invalid `destination`")
	}
	fs.Destination = dest

	s.Declaration = DeclarationFiles
	s.File = &fs
	s.Directory = ""
	return nil
}

func (s *State) setDirectory(destination string) error {
	dest, err := paths.ResolveDestination(destination)
	if err != nil {
		return errors.Wrap(err, errors.ErrDeserialize, "directories state: invalid destination")
	}

	s.Declaration = DeclarationDirectories
	s.File = nil
	s.Directory = dest
	return nil
}

// UnmarshalJSON decodes {"declaration": ..., "state": ...}
func (s *State) UnmarshalJSON(data []byte) error {
	var raw struct {
		Declaration Declaration     `json:"declaration"`
		State       json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.State) == 0 {
		return errors.Newf(errors.ErrDeserialize, "missing field `state` for declaration %q", raw.Declaration)
	}

	switch raw.Declaration {
	case DeclarationFiles:
		var fs FileState
		if err := json.Unmarshal(raw.State, &fs); err != nil {
			return err
		}
		return s.setFile(fs)
	case DeclarationDirectories:
		var dest string
		if err := json.Unmarshal(raw.State, &dest); err != nil {
			return err
		}
		return s.setDirectory(dest)
	default:
		return unknownDeclaration(raw.Declaration)
	}
}

// UnmarshalYAML decodes the same shape as UnmarshalJSON from YAML
func (s *State) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Declaration Declaration `yaml:"declaration"`
		State       yaml.Node   `yaml:"state"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.State.Kind == 0 {
		return errors.Newf(errors.ErrDeserialize, "missing field `state` for declaration %q", raw.Declaration)
	}

	switch raw.Declaration {
	case DeclarationFiles:
		var fs FileState
		if err := raw.State.Decode(&fs); err != nil {
			return err
		}
		return s.setFile(fs)
	case DeclarationDirectories:
		var dest string
		if err := raw.State.Decode(&dest); err != nil {
			return err
		}
		return s.setDirectory(dest)
	default:
		return unknownDeclaration(raw.Declaration)
	}
}

func unknownDeclaration(d Declaration) error {
	return errors.Newf(errors.ErrDeserialize, "unknown declaration %q, expected %q or %q",
		d, DeclarationFiles, DeclarationDirectories)
}

// DecodeStates reads the whole desired-state list from r
func DecodeStates(r io.Reader, format InputFormat) ([]State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDeserialize, "failed reading input")
	}

	var states []State
	switch format {
	case InputJSON, "":
		err = json.Unmarshal(data, &states)
	case InputYAML:
		err = yaml.Unmarshal(data, &states)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown input format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDeserialize, "failed decoding desired states")
	}

	return states, nil
}

// ParseInputFormat validates a user supplied input format name
func ParseInputFormat(name string) (InputFormat, error) {
	switch InputFormat(name) {
	case InputJSON, InputYAML:
		return InputFormat(name), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown input format %q (want %s or %s)", name, InputJSON, InputYAML)
	}
}

func (s State) String() string {
	if s.File != nil {
		return fmt.Sprintf("files(%s -> %s, link=%t)", s.File.Source, s.File.Destination, s.File.LinkFiles)
	}
	return fmt.Sprintf("directories(%s)", s.Directory)
}
