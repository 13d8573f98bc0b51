package jeopardy

// Mode is the phase a game is in.
type Mode string

const (
	ModeConfig  Mode = "config"
	ModePlaying Mode = "playing"
)

func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeConfig || m == ModePlaying
}

// Command names a mode-gated mutation.
type Command string

const (
	CmdResizeBoard         Command = "resize_board"
	CmdSetCategory         Command = "set_category"
	CmdSetCellContent      Command = "set_cell_content"
	CmdSelectCell          Command = "select_cell"
	CmdRevealAnswer        Command = "reveal_answer"
	CmdChangeScore         Command = "change_score"
	CmdMarkAttempted       Command = "mark_attempted"
	CmdSwitchTeam          Command = "switch_team"
	CmdSwitchAvailableTeam Command = "switch_available_team"
	CmdCompleteQuestion    Command = "complete_question"
	CmdAnswer              Command = "answer"
)

// commandModes maps every gated command to the only mode it may run in.
// Commands missing from the table are allowed in any mode.
var commandModes = map[Command]Mode{
	CmdResizeBoard:    ModeConfig,
	CmdSetCategory:    ModeConfig,
	CmdSetCellContent: ModeConfig,

	CmdSelectCell:          ModePlaying,
	CmdRevealAnswer:        ModePlaying,
	CmdChangeScore:         ModePlaying,
	CmdMarkAttempted:       ModePlaying,
	CmdSwitchTeam:          ModePlaying,
	CmdSwitchAvailableTeam: ModePlaying,
	CmdCompleteQuestion:    ModePlaying,
	CmdAnswer:              ModePlaying,
}

// Allows reports whether cmd may run while in mode m.
func (m Mode) Allows(cmd Command) bool {
	want, gated := commandModes[cmd]
	return !gated || want == m
}
