package main

func SetupCommandRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Fun
	r.Register("flip", &FlipCmd{})
	r.Register("coin", &CoinCmd{})
	r.Register("roll", &RollCmd{})
	r.Register("8ball", &EightBallCmd{})
	r.Alias("eightball", "8ball")

	// Games
	r.Register("gamedump", &GameDumpCmd{})
	r.Register("gameshow", &GameShowCmd{})
	r.Register("randomgame", &RandomGameCmd{})

	// Time
	r.Register("now", &NowCmd{})
	r.Register("countdown", &CountdownCmd{})
	r.Register("timeuntil", &TimeUntilCmd{})

	// Meta
	r.Register("help", &HelpCmd{Registry: r})
	r.Register("stats", &StatsCmd{})
	r.Register("uptime", &UptimeCmd{})

	return r
}
