package game

// Rules toggles the optional move kinds. They are fixed for a game.
type Rules struct {
	EnableFight    bool
	EnableSurprise bool
}

func NewRules(enableFight, enableSurprise bool) Rules {
	return Rules{EnableFight: enableFight, EnableSurprise: enableSurprise}
}

func DefaultRules() Rules {
	return NewRules(true, true)
}
