package dotprov

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Declarative file provisioning"
	MsgProvisionShort  = "Reconcile destinations with their declared sources"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagInput       = "Read desired states from FILE instead of stdin"
	MsgFlagInputFormat = "Format of the desired states (json, yaml)"
	MsgFlagFormat      = "Output format (json, text)"
	MsgFlagFailOnError = "Exit with status 1 when any entry failed"
	MsgFlagNoColor     = "Disable colors in text output"

	// Error messages
	MsgErrNoSources     = "no source roots: pass provisioning info or set provision.sources"
	MsgErrOpenInput     = "failed to open input %s"
	MsgErrEntriesFailed = "%d of %d entries failed"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/provision-long.txt
	msgProvisionLongRaw string
	MsgProvisionLong    = strings.TrimSpace(msgProvisionLongRaw)

	//go:embed msgs/provision-example.txt
	msgProvisionExampleRaw string
	MsgProvisionExample    = strings.TrimRight(msgProvisionExampleRaw, "\n")

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(dotprov completion bash)

Zsh:
  $ dotprov completion zsh > "${fpath[1]}/_dotprov"

Fish:
  $ dotprov completion fish | source

PowerShell:
  PS> dotprov completion powershell | Out-String | Invoke-Expression
`
)
