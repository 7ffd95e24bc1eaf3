package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Edit files in place and fail when nothing changes"
	MsgReplaceShort    = "Replace text in files"
	MsgPairsShort      = "Apply several replacements to one file"
	MsgGetShort        = "Print the value of a make variable"
	MsgSetShort        = "Set make variables"
	MsgUnsetShort      = "Remove make variables"
	MsgGenConfigShort  = "Print the default configuration"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice    = "DRY RUN MODE - No changes were made"
	MsgVersionFormat   = "inreplace version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten   = "Wrote %s\n"
	MsgNoCommand       = "no command specified"
	MsgOddPairs        = "pairs take OLD NEW arguments in pairs, got %d after the file"
	MsgBadAssignment   = "expected NAME=VALUE, got %q"
	MsgVariableMissing = "%s is not assigned in %s"
	MsgConfigExists    = "%s already exists"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without writing any file"
	MsgFlagWarn       = "Warn instead of failing when a file is unchanged"
	MsgFlagFormat     = "Output format: text, json or yaml"
	MsgFlagDiff       = "Show a unified diff of every changed file"
	MsgFlagColor      = "Color output: auto, always or never"
	MsgFlagConfig     = "Config file to use instead of ./.inreplace.toml"
	MsgFlagOld        = "Text or pattern to replace (required)"
	MsgFlagNew        = "Replacement text, may use \\0 to \\9"
	MsgFlagRegex      = "Treat OLD as a regular expression"
	MsgFlagIgnoreCase = "Match case-insensitively"
	MsgFlagEngine     = "Regular expression engine: regexp2 or re2 (default from config)"
	MsgFlagWrite      = "Write .inreplace.toml instead of printing"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/replace-long.txt
	msgReplaceLongRaw string
	MsgReplaceLong    = strings.TrimSpace(msgReplaceLongRaw)

	//go:embed msgs/replace-example.txt
	msgReplaceExampleRaw string
	MsgReplaceExample    = strings.TrimRight(msgReplaceExampleRaw, "\n")

	//go:embed msgs/pairs-long.txt
	msgPairsLongRaw string
	MsgPairsLong    = strings.TrimSpace(msgPairsLongRaw)

	//go:embed msgs/pairs-example.txt
	msgPairsExampleRaw string
	MsgPairsExample    = strings.TrimRight(msgPairsExampleRaw, "\n")

	//go:embed msgs/get-long.txt
	msgGetLongRaw string
	MsgGetLong    = strings.TrimSpace(msgGetLongRaw)

	//go:embed msgs/set-long.txt
	msgSetLongRaw string
	MsgSetLong    = strings.TrimSpace(msgSetLongRaw)

	//go:embed msgs/set-example.txt
	msgSetExampleRaw string
	MsgSetExample    = strings.TrimRight(msgSetExampleRaw, "\n")

	//go:embed msgs/unset-long.txt
	msgUnsetLongRaw string
	MsgUnsetLong    = strings.TrimSpace(msgUnsetLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
