package session

// Screen is one mutually-exclusive mode of the navigation state machine.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenTimerSetup
	ScreenTimerRunning
	ScreenGame
	ScreenShop
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenTimerSetup:
		return "TimerSetup"
	case ScreenTimerRunning:
		return "TimerRunning"
	case ScreenGame:
		return "Game"
	case ScreenShop:
		return "Shop"
	default:
		return "Unknown"
	}
}

// Intent is a discrete navigation request. Mutating operations
// (BeginStudy, SubmitReward, PlayRound, Purchase, EquipItem) carry
// payloads and have their own methods on Session.
type Intent int

const (
	IntentStartTimerSetup Intent = iota
	IntentOpenGames
	IntentOpenShop
	IntentCancel
	IntentReturnHome
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentStartTimerSetup:
		return "StartTimerSetup"
	case IntentOpenGames:
		return "OpenGames"
	case IntentOpenShop:
		return "OpenShop"
	case IntentCancel:
		return "Cancel"
	case IntentReturnHome:
		return "ReturnHome"
	default:
		return "Unknown"
	}
}

// transitions is the closed navigation table. An intent absent for the
// current screen is ignored; no other transitions exist. Leaving
// TimerSetup and TimerRunning happens through Cancel and SubmitReward.
var transitions = map[Screen]map[Intent]Screen{
	ScreenHome: {
		IntentStartTimerSetup: ScreenTimerSetup,
		IntentOpenGames:       ScreenGame,
		IntentOpenShop:        ScreenShop,
	},
	ScreenTimerSetup: {
		IntentCancel: ScreenHome,
	},
	ScreenGame: {
		IntentReturnHome: ScreenHome,
	},
	ScreenShop: {
		IntentReturnHome: ScreenHome,
	},
}
