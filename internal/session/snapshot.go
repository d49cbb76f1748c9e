package session

type Snapshot struct {
	GameID    string `json:"game_id"`
	Grid      Grid   `json:"grid"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	Status    string `json:"status"`
	Moves     int    `json:"moves"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		GameID:    s.ID.String(),
		Grid:      s.View(),
		Width:     s.Params.Width,
		Height:    s.Params.Height,
		MineCount: s.Params.MineCount,
		Status:    s.Outcome(),
		Moves:     s.Moves,
	}
}
