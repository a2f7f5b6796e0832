package pkg

type Action string

const (
	ActionSearch Action = "Search"
	ActionPlay   Action = "Play"
	ActionFlip   Action = "Flip"
	ActionReset  Action = "Reset"
	ActionExit   Action = "Exit"
)
