package editor

import "errors"

var (
	ErrUnknownTool         = errors.New("unknown tool")
	ErrUnknownEnvironment  = errors.New("unknown environment")
	ErrInvalidColor        = errors.New("invalid color")
	ErrNoExportFormat      = errors.New("no export format selected")
	ErrUnknownExportFormat = errors.New("unknown export format")
	ErrInvalidQuality      = errors.New("invalid export quality")
	ErrExportScale         = errors.New("export scale out of range")
	ErrNoExporter          = errors.New("no exporter configured")
)
