package main

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Map case fields to enumerated roles"
	MsgBindShort       = "Run the setup phase of a case and show the role table"
	MsgLookupShort     = "Show the field bound to a role"
	MsgRolesShort      = "List the role enumeration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "fieldptr version %s\n  commit: %s\n  built:  %s\n"
	MsgLookupLine    = "[role]{{slot}}[/role] -> {{field}}"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format (auto, term, text, json, yaml, toml)"
	MsgFlagExplain = "Render the full role reference"
	MsgFlagOverlay = "Case file merged on top of CASE (repeatable)"
	MsgFlagStrict  = "Fail when no field is bound to the slot"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/bind-long.txt
	msgBindLongRaw string
	MsgBindLong    = strings.TrimSpace(msgBindLongRaw)

	//go:embed msgs/bind-example.txt
	msgBindExampleRaw string
	MsgBindExample    = strings.TrimRight(msgBindExampleRaw, "\n")

	//go:embed msgs/lookup-long.txt
	msgLookupLongRaw string
	MsgLookupLong    = strings.TrimSpace(msgLookupLongRaw)

	//go:embed msgs/lookup-example.txt
	msgLookupExampleRaw string
	MsgLookupExample    = strings.TrimRight(msgLookupExampleRaw, "\n")

	//go:embed msgs/roles-long.txt
	msgRolesLongRaw string
	MsgRolesLong    = strings.TrimSpace(msgRolesLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
