package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
)

// CommandOp is an editor operation.
type CommandOp int

// Editor operations.
const (
	CommandShow CommandOp = iota
	CommandAdd
	CommandRemove
	CommandClear
	CommandScheme
	CommandType
	CommandNote
	CommandCreator
	CommandSwitch
	CommandEmpty
	CommandIdentifier
	CommandSave
)

var commandNames = map[string]CommandOp{
	"show":       CommandShow,
	"add":        CommandAdd,
	"remove":     CommandRemove,
	"clear":      CommandClear,
	"scheme":     CommandScheme,
	"type":       CommandType,
	"note":       CommandNote,
	"creator":    CommandCreator,
	"switch":     CommandSwitch,
	"empty":      CommandEmpty,
	"identifier": CommandIdentifier,
	"save":       CommandSave,
}

// String returns the command name.
func (op CommandOp) String() string {
	for name, known := range commandNames {
		if known == op {
			return name
		}
	}
	return fmt.Sprintf("CommandOp(%d)", int(op))
}

// CommandUsage lists the editor commands with their arguments.
const CommandUsage = `show
add <left|right> <concept-uri> [scheme-uri]
remove <left|right> <concept-uri>
clear <left|right>
scheme <left|right> <scheme-uri>
type <uri|mapping|exact|close|broad|narrow|related>
note <lang> [text]
creator [name]
switch
empty
identifier
save [registry-uri]`

// Command is a parsed editor command. Fields not used by Op are empty.
type Command struct {
	Op        CommandOp
	IsLeft    bool
	URI       string
	SchemeURI string
	Lang      string
	Text      string
	Registry  string
}

// ParseCommand parses one editor command line.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty command", domain.ErrInvalidInput)
	}

	name := strings.ToLower(fields[0])
	op, ok := commandNames[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	cmd := Command{Op: op}

	switch op {
	case CommandAdd, CommandRemove, CommandScheme:
		if len(args) < 2 {
			return Command{}, fmt.Errorf("%w: %s needs a side and a URI", domain.ErrInvalidInput, name)
		}
		isLeft, err := parseSide(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.IsLeft, cmd.URI = isLeft, args[1]
		if op == CommandAdd && len(args) > 2 {
			cmd.SchemeURI = args[2]
		}
	case CommandClear:
		if len(args) < 1 {
			return Command{}, fmt.Errorf("%w: clear needs a side", domain.ErrInvalidInput)
		}
		isLeft, err := parseSide(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.IsLeft = isLeft
	case CommandType:
		if len(args) < 1 {
			return Command{}, fmt.Errorf("%w: type needs a URI or name", domain.ErrInvalidInput)
		}
		uri, err := parseType(args[0])
		if err != nil {
			return Command{}, err
		}
		cmd.URI = uri
	case CommandNote:
		if len(args) < 1 {
			return Command{}, fmt.Errorf("%w: note needs a language", domain.ErrInvalidInput)
		}
		cmd.Lang = args[0]
		cmd.Text = strings.Join(args[1:], " ")
	case CommandCreator:
		cmd.Text = strings.Join(args, " ")
	case CommandSave:
		if len(args) > 0 {
			cmd.Registry = args[0]
		}
	}
	return cmd, nil
}

func parseSide(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "left", "from", "l":
		return true, nil
	case "right", "to", "r":
		return false, nil
	default:
		return false, fmt.Errorf("%w: side must be left or right, got %q", domain.ErrInvalidInput, arg)
	}
}

func sideName(isLeft bool) string {
	if isLeft {
		return "left"
	}
	return "right"
}

func parseType(arg string) (string, error) {
	if uri, ok := domain.MappingTypes()[strings.ToLower(arg)]; ok {
		return uri, nil
	}
	if !strings.Contains(arg, ":") {
		return "", fmt.Errorf("%w: unknown mapping type %q", domain.ErrInvalidInput, arg)
	}
	return arg, nil
}

// Apply executes a command against the working mapping.
func (s *MappingService) Apply(ctx context.Context, cmd Command) error {
	switch cmd.Op {
	case CommandShow:
	case CommandAdd:
		scheme := s.Scheme(cmd.IsLeft)
		if cmd.SchemeURI != "" {
			scheme = domain.NewScheme(cmd.SchemeURI)
		}
		if scheme == nil {
			return fmt.Errorf("%w: the %s side has no scheme, give a scheme URI after the concept", domain.ErrInvalidInput, sideName(cmd.IsLeft))
		}
		s.Add(domain.NewConcept(cmd.URI, scheme), scheme, cmd.IsLeft)
	case CommandRemove:
		s.Remove(domain.NewConcept(cmd.URI, nil), cmd.IsLeft)
	case CommandClear:
		s.RemoveAll(cmd.IsLeft)
	case CommandScheme:
		s.SetScheme(cmd.IsLeft, domain.NewScheme(cmd.URI))
	case CommandType:
		s.SetType(cmd.URI)
	case CommandNote:
		note := s.Mapping().Note
		if note == nil {
			note = domain.LanguageMapList{}
		}
		if cmd.Text == "" {
			delete(note, cmd.Lang)
		} else {
			note[cmd.Lang] = []string{cmd.Text}
		}
		s.SetNote(note)
	case CommandCreator:
		if cmd.Text == "" {
			s.SetCreator(nil)
			return nil
		}
		s.SetCreator([]domain.Agent{{PrefLabel: domain.LanguageMap{s.labelLanguage(): cmd.Text}}})
	case CommandSwitch:
		s.Switch()
	case CommandEmpty:
		s.Empty()
	case CommandIdentifier:
		s.SetIdentifier()
	case CommandSave:
		if _, err := s.SaveCurrent(ctx, cmd.Registry); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, cmd.Op)
	}
	return nil
}

// Ensure MappingService implements the interface.
var _ driving.CommandRunner = (*MappingService)(nil)

// Run parses and applies one command line.
func (s *MappingService) Run(ctx context.Context, line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	return s.Apply(ctx, cmd)
}

// Usage lists the accepted commands.
func (s *MappingService) Usage() string {
	return CommandUsage
}
